package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default Circle Chase configuration.
// Values mirror defaults/chase.yaml and are tuned for an 80x24 playfield
// at 60 ticks per second.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Player: PlayerConfig{
			Radius:       1.6,
			Smoothing:    6.0,
			FireCooldown: 0.3,
		},
		Projectile: ProjectileConfig{
			Radius:   0.6,
			Speed:    28.0,
			Lifetime: 2.0,
		},
		Enemy: EnemyConfig{
			Radius:          2.0,
			Speed:           7.0,
			Health:          3,
			Invulnerability: 0.5,
		},
		Scoring: ScoringConfig{
			Initial:          10,
			HitReward:        2,
			CollisionPenalty: 2,
			DamageCooldown:   1.0,
		},
		Respawn: RespawnConfig{
			Margin:       5.0,
			SafeDistance: 14.0,
			Radii:        []float64{1.2, 1.6, 2.0, 2.4, 2.8},
		},
	}
}
