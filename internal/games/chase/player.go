package chase

import (
	"math"

	"github.com/mgarrido/tui-chase/internal/config"
	"github.com/mgarrido/tui-chase/internal/core"
)

const playerChar = '█'

// Player is the avatar. It eases toward an externally supplied pointer
// target each tick and owns the projectiles it fires.
type Player struct {
	circle
	target        core.Vec2 // pointer target, updated by the platform each tick
	smoothing     float64   // follow rate per second
	fireCooldown  float64
	sinceLastShot float64
	projCfg       config.ProjectileConfig
	projectiles   []*Projectile // spawn order
}

// NewPlayer creates the player avatar at pos, initially targeting its own
// position (idle until the pointer reports).
func NewPlayer(pos core.Vec2, cfg config.PlayerConfig, projCfg config.ProjectileConfig, bounds core.Vec2) *Player {
	return &Player{
		circle:        newCircle(pos, cfg.Radius, core.ColorBrightGreen, bounds),
		target:        pos,
		smoothing:     cfg.Smoothing,
		fireCooldown:  cfg.FireCooldown,
		sinceLastShot: cfg.FireCooldown, // ready to fire immediately
		projCfg:       projCfg,
	}
}

// SetTarget updates the pointer target the player eases toward.
func (pl *Player) SetTarget(t core.Vec2) {
	pl.target = t
}

// Update eases the player toward the pointer target, advances the fire
// cooldown, updates owned projectiles and compacts out the inactive ones.
//
// The easing factor is derived from dt (1 - exp(-smoothing*dt)) so the
// effective follow speed is independent of the tick rate: the position
// after a given elapsed time is the same however that time is sliced.
func (pl *Player) Update(dt float64) {
	if !pl.active {
		return
	}

	factor := core.ClampF(1-math.Exp(-pl.smoothing*dt), 0, 1)
	pl.pos = pl.pos.Add(pl.target.Sub(pl.pos).Scale(factor))
	pl.clampToBounds()

	pl.sinceLastShot += dt

	for _, p := range pl.projectiles {
		p.Update(dt)
	}
	pl.compactProjectiles()
}

// compactProjectiles retains only active projectiles, preserving spawn
// order. Removal is a separate pass rather than deletion mid-iteration.
func (pl *Player) compactProjectiles() {
	live := pl.projectiles[:0]
	for _, p := range pl.projectiles {
		if p.Active() {
			live = append(live, p)
		}
	}
	// Drop references past the new length so expired projectiles can be
	// collected.
	for i := len(live); i < len(pl.projectiles); i++ {
		pl.projectiles[i] = nil
	}
	pl.projectiles = live
}

// Fire spawns a projectile at the player's position heading along dir.
// Returns false (and spawns nothing) while the fire cooldown is running;
// firing on cooldown is not an error.
func (pl *Player) Fire(dir core.Vec2) bool {
	if pl.sinceLastShot < pl.fireCooldown {
		return false
	}

	pl.projectiles = append(pl.projectiles, NewProjectile(pl.pos, dir, pl.projCfg, pl.bounds))
	pl.sinceLastShot = 0
	return true
}

// CanFire reports whether the fire cooldown has elapsed.
func (pl *Player) CanFire() bool {
	return pl.sinceLastShot >= pl.fireCooldown
}

// Projectiles returns the live projectiles in spawn order.
func (pl *Player) Projectiles() []*Projectile {
	return pl.projectiles
}

// Render draws the projectiles first, then the avatar on top.
func (pl *Player) Render(dst *core.Screen) {
	if !pl.active {
		return
	}
	for _, p := range pl.projectiles {
		p.Render(dst)
	}
	pl.render(dst, playerChar)
}
