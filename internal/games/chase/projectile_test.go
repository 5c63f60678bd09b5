package chase

import (
	"math"
	"testing"

	"github.com/mgarrido/tui-chase/internal/config"
	"github.com/mgarrido/tui-chase/internal/core"
)

func TestProjectileMotion(t *testing.T) {
	p := NewProjectile(core.V(10, 12), core.V(1, 0), testProjectileConfig(), testBounds)

	p.Update(0.5)

	// speed 10 for 0.5s along +x
	if math.Abs(p.Position().X-15) > 1e-9 || p.Position().Y != 12 {
		t.Errorf("position after update = %v, expected (15, 12)", p.Position())
	}
}

func TestProjectileNormalizesDirection(t *testing.T) {
	// Aim vectors of any length produce the same velocity.
	a := NewProjectile(core.V(10, 12), core.V(100, 0), testProjectileConfig(), testBounds)
	b := NewProjectile(core.V(10, 12), core.V(0.001, 0), testProjectileConfig(), testBounds)

	a.Update(0.1)
	b.Update(0.1)

	if math.Abs(a.Position().X-b.Position().X) > 1e-9 {
		t.Error("direction magnitude should not affect projectile speed")
	}
}

func TestProjectileZeroDirection(t *testing.T) {
	// A zero aim vector is policy, not a fault: the projectile stays put
	// until its lifetime expires.
	p := NewProjectile(core.V(10, 12), core.V(0, 0), testProjectileConfig(), testBounds)

	p.Update(0.5)

	if p.Position() != core.V(10, 12) {
		t.Errorf("zero-direction projectile moved to %v", p.Position())
	}
	if !p.Active() {
		t.Error("zero-direction projectile should stay active until expiry")
	}
}

func TestProjectileLifetimeExpiry(t *testing.T) {
	// Lifetime 2.0s: inactive once cumulative updates reach it.
	p := NewProjectile(core.V(40, 12), core.V(0, 0), testProjectileConfig(), testBounds)

	for i := 0; i < 19; i++ {
		p.Update(0.1)
	}
	if !p.Active() {
		t.Fatal("projectile expired before its lifetime elapsed")
	}

	p.Update(0.1) // cumulative 2.0
	if p.Active() {
		t.Error("projectile should be inactive after its lifetime elapsed")
	}
}

func TestProjectileCulledOutOfBounds(t *testing.T) {
	cfg := config.ProjectileConfig{Radius: 0.5, Speed: 100, Lifetime: 10}
	p := NewProjectile(core.V(79, 12), core.V(1, 0), cfg, testBounds)

	p.Update(0.1) // moves 10 units, well past the right edge

	if p.Active() {
		t.Error("projectile leaving the playfield should be culled")
	}
}

func TestProjectileInactiveIsInert(t *testing.T) {
	p := NewProjectile(core.V(40, 12), core.V(1, 0), testProjectileConfig(), testBounds)
	p.deactivate()

	before := p.Position()
	p.Update(1.0)

	if p.Position() != before {
		t.Error("inactive projectile must not move")
	}
}
