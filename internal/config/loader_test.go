package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadChaseEmbeddedDefault(t *testing.T) {
	// With no custom path and no user/local config files present in the
	// test environment, the embedded default must load and validate.
	cfg, err := LoadChase("")
	if err != nil {
		t.Fatalf("LoadChase(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default config is invalid: %v", err)
	}
	if cfg.Enemy.Health != 3 {
		t.Errorf("default enemy health = %d, expected 3", cfg.Enemy.Health)
	}
	if cfg.Scoring.Initial != 10 {
		t.Errorf("default initial score = %d, expected 10", cfg.Scoring.Initial)
	}
}

func TestLoadChaseCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
player: {radius: 2.0, smoothing: 4.0, fire_cooldown: 0.5}
projectile: {radius: 0.5, speed: 20.0, lifetime: 1.5}
enemy: {radius: 3.0, speed: 5.0, health: 5, invulnerability: 0.4}
scoring: {initial: 20, hit_reward: 3, collision_penalty: 5, damage_cooldown: 1.0}
respawn: {margin: 4.0, safe_distance: 10.0, radii: [2.0]}
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadChase(path)
	if err != nil {
		t.Fatalf("LoadChase(custom) failed: %v", err)
	}
	if cfg.Enemy.Health != 5 {
		t.Errorf("custom enemy health = %d, expected 5", cfg.Enemy.Health)
	}
	if cfg.Scoring.CollisionPenalty != 5 {
		t.Errorf("custom penalty = %d, expected 5", cfg.Scoring.CollisionPenalty)
	}
}

func TestLoadChaseMissingCustomPath(t *testing.T) {
	_, err := LoadChase(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadChase with a missing explicit path should fail")
	}
}

func TestLoadChaseInvalidCustomConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")

	// Zero radius violates the entity invariant.
	yaml := `
player: {radius: 0, smoothing: 4.0, fire_cooldown: 0.5}
projectile: {radius: 0.5, speed: 20.0, lifetime: 1.5}
enemy: {radius: 3.0, speed: 5.0, health: 5, invulnerability: 0.4}
scoring: {initial: 20, hit_reward: 3, collision_penalty: 5, damage_cooldown: 1.0}
respawn: {margin: 4.0, safe_distance: 10.0, radii: [2.0]}
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := LoadChase(path); err == nil {
		t.Error("LoadChase should reject a config with a non-positive radius")
	}
}

func TestApplyDifficultyPreset(t *testing.T) {
	base := DefaultChaseConfig()

	easy := base
	ApplyDifficultyPreset(&easy, DifficultyEasy)
	if easy.Enemy.Speed >= base.Enemy.Speed {
		t.Error("easy preset should slow the enemy")
	}
	if easy.Enemy.Health != base.Enemy.Health-1 {
		t.Errorf("easy preset health = %d, expected %d", easy.Enemy.Health, base.Enemy.Health-1)
	}

	hard := base
	ApplyDifficultyPreset(&hard, DifficultyHard)
	if hard.Enemy.Speed <= base.Enemy.Speed {
		t.Error("hard preset should speed up the enemy")
	}
	if hard.Enemy.Health != base.Enemy.Health+2 {
		t.Errorf("hard preset health = %d, expected %d", hard.Enemy.Health, base.Enemy.Health+2)
	}

	normal := base
	ApplyDifficultyPreset(&normal, DifficultyNormal)
	if normal.Enemy != base.Enemy {
		t.Error("normal preset should leave the enemy untouched")
	}
}
