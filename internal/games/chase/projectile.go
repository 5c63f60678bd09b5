package chase

import (
	"github.com/mgarrido/tui-chase/internal/config"
	"github.com/mgarrido/tui-chase/internal/core"
)

const projectileChar = '•'

// Projectile travels in a fixed direction at fixed speed and expires after
// a lifetime. Projectiles are culled, never clamped: leaving the playfield
// deactivates them.
type Projectile struct {
	circle
	dir      core.Vec2 // unit direction (or zero: a stationary shot)
	speed    float64
	lifetime float64 // remaining seconds
}

// NewProjectile creates a projectile at origin heading along dir.
// dir is normalized here, so callers may pass any aim vector; the zero
// vector yields a projectile that stays put until its lifetime expires.
func NewProjectile(origin, dir core.Vec2, cfg config.ProjectileConfig, bounds core.Vec2) *Projectile {
	return &Projectile{
		circle:   newCircle(origin, cfg.Radius, core.ColorBrightYellow, bounds),
		dir:      dir.Normalize(),
		speed:    cfg.Speed,
		lifetime: cfg.Lifetime,
	}
}

// Update integrates motion and lifetime by dt, deactivating the projectile
// once it expires or leaves the playfield.
func (p *Projectile) Update(dt float64) {
	if !p.active {
		return
	}

	p.pos = p.pos.Add(p.dir.Scale(p.speed * dt))
	p.lifetime -= dt

	if p.lifetime <= 0 {
		p.lifetime = 0
		p.deactivate()
		return
	}
	if p.outOfBounds() {
		p.deactivate()
	}
}

// Render draws the projectile.
func (p *Projectile) Render(dst *core.Screen) {
	p.render(dst, projectileChar)
}
