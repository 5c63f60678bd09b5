// Package config provides YAML-based game configuration loading and
// difficulty presets for the chase platform.
package config

import "fmt"

// ChaseConfig contains all tuning for the Circle Chase game.
// Distances are in playfield units (terminal columns), times in seconds,
// speeds in units per second.
type ChaseConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Respawn    RespawnConfig    `yaml:"respawn"`
}

// PlayerConfig defines the player avatar.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`
	Smoothing    float64 `yaml:"smoothing"`     // Pointer-follow rate; higher = snappier
	FireCooldown float64 `yaml:"fire_cooldown"` // Minimum seconds between shots
}

// ProjectileConfig defines player projectiles.
type ProjectileConfig struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"` // Seconds before an airborne projectile expires
}

// EnemyConfig defines the chasing enemy.
type EnemyConfig struct {
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`
	Health          int     `yaml:"health"`
	Invulnerability float64 `yaml:"invulnerability"` // Post-hit damage-suppression window
}

// ScoringConfig defines the score state machine.
type ScoringConfig struct {
	Initial          int     `yaml:"initial"`
	HitReward        int     `yaml:"hit_reward"`
	CollisionPenalty int     `yaml:"collision_penalty"`
	DamageCooldown   float64 `yaml:"damage_cooldown"` // Minimum seconds between contact penalties
}

// RespawnConfig defines where a replacement enemy may appear.
type RespawnConfig struct {
	Margin       float64   `yaml:"margin"`        // Minimum distance from playfield edges
	SafeDistance float64   `yaml:"safe_distance"` // Minimum distance from the player
	Radii        []float64 `yaml:"radii"`         // Candidate radii for respawned enemies
}

// Validate checks the invariants the simulation relies on.
func (c ChaseConfig) Validate() error {
	if c.Player.Radius <= 0 || c.Projectile.Radius <= 0 || c.Enemy.Radius <= 0 {
		return fmt.Errorf("config: all radii must be positive")
	}
	if c.Projectile.Speed <= 0 {
		return fmt.Errorf("config: projectile speed must be positive")
	}
	if c.Projectile.Lifetime <= 0 {
		return fmt.Errorf("config: projectile lifetime must be positive")
	}
	if c.Enemy.Health <= 0 {
		return fmt.Errorf("config: enemy health must be positive")
	}
	if c.Player.FireCooldown < 0 || c.Scoring.DamageCooldown < 0 || c.Enemy.Invulnerability < 0 {
		return fmt.Errorf("config: cooldown windows must not be negative")
	}
	for _, r := range c.Respawn.Radii {
		if r <= 0 {
			return fmt.Errorf("config: respawn radii must be positive")
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyDifficultyPreset adjusts the enemy for a named preset.
// Unknown or empty presets leave the config untouched.
func ApplyDifficultyPreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Speed *= 0.7
		if cfg.Enemy.Health > 1 {
			cfg.Enemy.Health--
		}
	case DifficultyHard:
		cfg.Enemy.Speed *= 1.35
		cfg.Enemy.Health += 2
	}
}
