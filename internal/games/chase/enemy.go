package chase

import (
	"github.com/mgarrido/tui-chase/internal/config"
	"github.com/mgarrido/tui-chase/internal/core"
)

const enemyChar = '▓'

// Enemy chases a target entity. It carries health and, after each hit, an
// invulnerability window during which further hits are suppressed.
//
// The target reference is non-owning: the enemy holds position when the
// target is absent or inactive (idle policy, not an error).
type Enemy struct {
	circle
	speed        float64
	health       int
	maxHealth    int
	invulnWindow float64 // suppression window applied on each hit
	invulnerable float64 // remaining suppression time, floored at 0
	target       Entity
}

// NewEnemy creates a fresh enemy at pos with full health and no
// invulnerability.
func NewEnemy(pos core.Vec2, cfg config.EnemyConfig, bounds core.Vec2) *Enemy {
	return &Enemy{
		circle:       newCircle(pos, cfg.Radius, core.ColorBrightRed, bounds),
		speed:        cfg.Speed,
		health:       cfg.Health,
		maxHealth:    cfg.Health,
		invulnWindow: cfg.Invulnerability,
	}
}

// SetTarget sets the entity the enemy chases. A nil target makes it idle.
func (e *Enemy) SetTarget(t Entity) {
	e.target = t
}

// Health returns the remaining hit points.
func (e *Enemy) Health() int {
	return e.health
}

// Invulnerable reports whether the damage-suppression window is running.
func (e *Enemy) Invulnerable() bool {
	return e.invulnerable > 0
}

// Update advances the invulnerability timer and chases the target.
func (e *Enemy) Update(dt float64) {
	if !e.active {
		return
	}

	e.invulnerable -= dt
	if e.invulnerable < 0 {
		e.invulnerable = 0
	}

	if e.target != nil && e.target.Active() {
		dir := e.target.Position().Sub(e.pos).Normalize()
		e.pos = e.pos.Add(dir.Scale(e.speed * dt))
	}
	e.clampToBounds()
}

// ReceiveDamage applies one unit of damage unless the enemy is inside its
// invulnerability window.
//
//	applied  - the hit decremented health (false: suppressed, no effect)
//	defeated - this hit brought health to zero; the enemy deactivates
func (e *Enemy) ReceiveDamage() (applied, defeated bool) {
	if e.invulnerable > 0 {
		return false, false
	}

	e.health--
	e.invulnerable = e.invulnWindow

	if e.health <= 0 {
		e.health = 0
		e.deactivate()
		return true, true
	}
	return true, false
}

// Render draws the enemy. While invulnerable it blinks between its base
// color and white at 10 Hz; otherwise the color dims as health drops.
func (e *Enemy) Render(dst *core.Screen) {
	if !e.active {
		return
	}
	dst.DrawCircle(e.pos.X, e.pos.Y, e.radius, enemyChar, e.renderColor())
}

func (e *Enemy) renderColor() core.Color {
	if e.invulnerable > 0 {
		if int(e.invulnerable*10)%2 == 0 {
			return core.ColorBrightWhite
		}
		return e.color
	}

	// Health feedback: full strength is bright, worn down is dull.
	switch {
	case e.health*3 > e.maxHealth*2: // above two thirds
		return e.color
	case e.health*3 > e.maxHealth: // above one third
		return core.ColorRed
	default:
		return core.ColorMagenta
	}
}
