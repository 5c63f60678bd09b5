// Package chase implements Circle Chase: a mouse-controlled avatar pursued
// by a chasing enemy. Left-click fires projectiles; hits earn points,
// contact with the enemy costs them, and the session ends at zero.
package chase

import "github.com/mgarrido/tui-chase/internal/core"

// Entity is the shared contract for everything that moves on the playfield.
// Update is the sole per-tick mutation entry point; Render draws into the
// platform-provided screen buffer and mutates nothing.
type Entity interface {
	Update(dt float64)
	Render(dst *core.Screen)
	Active() bool
	Position() core.Vec2
	Radius() float64
}

// circle is the common state embedded by all entity variants: a colored
// circle with a position, an active flag, and the playfield it lives on.
type circle struct {
	pos    core.Vec2
	radius float64
	color  core.Color
	active bool
	bounds core.Vec2 // playfield extent: x in [0, bounds.X], y in [0, bounds.Y]
}

func newCircle(pos core.Vec2, radius float64, color core.Color, bounds core.Vec2) circle {
	return circle{
		pos:    pos,
		radius: radius,
		color:  color,
		active: true,
		bounds: bounds,
	}
}

// Active reports whether the entity participates in update, collision,
// and render passes.
func (c *circle) Active() bool {
	return c.active
}

// Position returns the center of the entity.
func (c *circle) Position() core.Vec2 {
	return c.pos
}

// Radius returns the collision radius.
func (c *circle) Radius() float64 {
	return c.radius
}

func (c *circle) deactivate() {
	c.active = false
}

// clampToBounds moves the center so the circle stays fully inside the
// playfield.
func (c *circle) clampToBounds() {
	c.pos.X = core.ClampF(c.pos.X, c.radius, c.bounds.X-c.radius)
	c.pos.Y = core.ClampF(c.pos.Y, c.radius, c.bounds.Y-c.radius)
}

// outOfBounds reports whether the circle has left the playfield entirely.
func (c *circle) outOfBounds() bool {
	return c.pos.X < -c.radius || c.pos.X > c.bounds.X+c.radius ||
		c.pos.Y < -c.radius || c.pos.Y > c.bounds.Y+c.radius
}

func (c *circle) render(dst *core.Screen, fill rune) {
	if !c.active {
		return
	}
	dst.DrawCircle(c.pos.X, c.pos.Y, c.radius, fill, c.color)
}

// Collides reports whether two entities overlap. The test is circle overlap
// on the Euclidean distance between centers, closed interval: touching
// counts as a collision. Inactive entities never collide. Symmetric by
// construction.
func Collides(a, b Entity) bool {
	if !a.Active() || !b.Active() {
		return false
	}
	return core.Dist(a.Position(), b.Position()) <= a.Radius()+b.Radius()
}
