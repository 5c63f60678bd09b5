package chase

import (
	"testing"

	"github.com/mgarrido/tui-chase/internal/config"
	"github.com/mgarrido/tui-chase/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// scenarioConfig pins the tuning exactly so the scoring arithmetic in the
// tests below is readable. The enemy does not move, which lets tests place
// it and keep it there.
func scenarioConfig() config.ChaseConfig {
	return config.ChaseConfig{
		Player:     config.PlayerConfig{Radius: 1.5, Smoothing: 6.0, FireCooldown: 0.3},
		Projectile: config.ProjectileConfig{Radius: 0.5, Speed: 10, Lifetime: 2.0},
		Enemy:      config.EnemyConfig{Radius: 2, Speed: 0, Health: 3, Invulnerability: 0.5},
		Scoring:    config.ScoringConfig{Initial: 10, HitReward: 2, CollisionPenalty: 2, DamageCooldown: 1.0},
		Respawn:    config.RespawnConfig{Margin: 5, SafeDistance: 5, Radii: []float64{1.5, 2, 2.5}},
	}
}

func emptyFrame() core.InputFrame {
	return core.NewInputFrame()
}

// injectHit plants a stationary projectile on the enemy so the next step
// resolves a contact without simulating flight.
func injectHit(g *Game) {
	p := NewProjectile(g.enemy.Position(), core.V(0, 0), g.conf.Projectile, core.V(float64(g.cfg.ScreenW), float64(g.cfg.ScreenH)))
	g.player.projectiles = append(g.player.projectiles, p)
}

func TestGameReset(t *testing.T) {
	g := NewWithConfig(scenarioConfig())
	g.Reset(testRuntime(1))

	st := g.State()
	if st.Score != 10 {
		t.Errorf("initial score = %d, expected 10", st.Score)
	}
	if st.GameOver || st.Paused {
		t.Error("fresh session should be neither over nor paused")
	}
	if !g.player.Active() || !g.enemy.Active() {
		t.Error("fresh session should have both entities active")
	}
	if g.enemy.Health() != 3 {
		t.Errorf("fresh enemy health = %d, expected 3", g.enemy.Health())
	}
}

func TestGameHitRewardAndRespawn(t *testing.T) {
	g := NewWithConfig(scenarioConfig())
	g.Reset(testRuntime(42))

	// Three applied hits spaced past the 0.5s invulnerability window:
	// reward 2 each takes the score 10 -> 16, and the third defeats the
	// enemy, triggering a respawn.
	wantScores := []int{12, 14, 16}
	for i, want := range wantScores {
		injectHit(g)
		g.Step(emptyFrame(), 0.05)

		if got := g.State().Score; got != want {
			t.Fatalf("after hit %d: score = %d, expected %d", i+1, got, want)
		}
		// Let the invulnerability window elapse before the next hit.
		g.Step(emptyFrame(), 0.3)
		g.Step(emptyFrame(), 0.3)
	}

	// The respawned enemy is a fresh one.
	if !g.enemy.Active() {
		t.Fatal("respawned enemy should be active")
	}
	if g.enemy.Health() != 3 {
		t.Errorf("respawned enemy health = %d, expected full 3", g.enemy.Health())
	}
	if g.enemy.Invulnerable() {
		t.Error("respawned enemy should not start invulnerable")
	}
	foundRadius := false
	for _, r := range scenarioConfig().Respawn.Radii {
		if g.enemy.Radius() == r {
			foundRadius = true
		}
	}
	if !foundRadius {
		t.Errorf("respawned enemy radius = %f, expected one of the configured candidates", g.enemy.Radius())
	}
	if g.State().GameOver {
		t.Error("defeating the enemy must not end the session")
	}
}

func TestGameSuppressedHitConsumesProjectile(t *testing.T) {
	g := NewWithConfig(scenarioConfig())
	g.Reset(testRuntime(42))

	// Two projectiles land on the enemy in the same tick: the first applies
	// and opens the invulnerability window, the second is suppressed but
	// still consumed.
	injectHit(g)
	injectHit(g)
	g.Step(emptyFrame(), 0.05)

	if got := g.State().Score; got != 12 {
		t.Errorf("score = %d, expected a single reward (12)", got)
	}
	if g.enemy.Health() != 2 {
		t.Errorf("enemy health = %d, expected a single point of damage", g.enemy.Health())
	}
	for _, p := range g.player.Projectiles() {
		if p.Active() {
			t.Error("projectile surviving contact with the enemy")
		}
	}
}

func TestGameContactPenaltyCooldown(t *testing.T) {
	conf := scenarioConfig()
	conf.Scoring.CollisionPenalty = 5
	g := NewWithConfig(conf)
	g.Reset(testRuntime(3))

	// Park the stationary enemy on the player. Stepping at 0.2s, the first
	// contact costs 5 and opens the 1.0s cooldown; contacts during the
	// window are free. The cooldown reaches zero on the sixth step, where
	// the second penalty drops the score to zero and ends the session.
	g.enemy.pos = g.player.Position()

	g.Step(emptyFrame(), 0.2)
	if got := g.State().Score; got != 5 {
		t.Fatalf("after first contact: score = %d, expected 5", got)
	}

	for i := 0; i < 4; i++ {
		g.Step(emptyFrame(), 0.2)
		if got := g.State().Score; got != 5 {
			t.Fatalf("contact inside the cooldown window cost points: score = %d", got)
		}
	}

	st := g.Step(emptyFrame(), 0.2).State
	if st.Score != 0 {
		t.Errorf("after cooldown elapsed: score = %d, expected 0", st.Score)
	}
	if !st.GameOver {
		t.Error("score reaching zero should end the session")
	}
}

func TestGameTracksPeakScore(t *testing.T) {
	g := NewWithConfig(scenarioConfig())
	g.Reset(testRuntime(42))

	// One applied hit raises the score to 12; that peak must survive the
	// contact penalties that drain the score to zero.
	injectHit(g)
	g.Step(emptyFrame(), 0.05)
	if got := g.State().Peak; got != 12 {
		t.Fatalf("peak after hit = %d, expected 12", got)
	}

	g.enemy.pos = g.player.Position()
	for i := 0; i < 40 && !g.State().GameOver; i++ {
		g.Step(emptyFrame(), 0.5)
	}

	st := g.State()
	if !st.GameOver || st.Score != 0 {
		t.Fatalf("expected score-exhaustion game over, got %+v", st)
	}
	if st.Peak != 12 {
		t.Errorf("peak at game over = %d, expected 12", st.Peak)
	}
}

func TestGameRespawnInsideSmallPlayfield(t *testing.T) {
	conf := scenarioConfig()
	conf.Enemy.Health = 1
	conf.Respawn.Radii = []float64{1}
	g := NewWithConfig(conf)
	g.Reset(core.RuntimeConfig{ScreenW: 8, ScreenH: 6, TickRate: 60, Seed: 11})

	injectHit(g)
	g.Step(emptyFrame(), 0.05)

	if !g.enemy.Active() {
		t.Fatal("enemy should have respawned")
	}
	// The configured margin 5 exceeds half the playfield; sampling clamps
	// it to 3, so x lands in [3, 5] and y is pinned to 3.
	pos := g.enemy.Position()
	if pos.X < 3 || pos.X > 5 || pos.Y != 3 {
		t.Errorf("respawn position %v outside the clamped margins", pos)
	}
}

func TestGameScoreNeverNegative(t *testing.T) {
	conf := scenarioConfig()
	conf.Scoring.Initial = 3
	conf.Scoring.CollisionPenalty = 100
	g := NewWithConfig(conf)
	g.Reset(testRuntime(3))

	g.enemy.pos = g.player.Position()
	st := g.Step(emptyFrame(), 0.1).State

	if st.Score != 0 {
		t.Errorf("score = %d, expected clamp at 0", st.Score)
	}
	if !st.GameOver {
		t.Error("session should end when the score is exhausted")
	}
}

func TestGameOverStepsAreInert(t *testing.T) {
	conf := scenarioConfig()
	conf.Scoring.Initial = 1
	conf.Scoring.CollisionPenalty = 1
	g := NewWithConfig(conf)
	g.Reset(testRuntime(3))

	g.enemy.pos = g.player.Position()
	g.Step(emptyFrame(), 0.1)
	if !g.State().GameOver {
		t.Fatal("setup: session should be over")
	}

	ticks := g.tickCount
	in := emptyFrame()
	in.SetPointer(core.V(70, 20))
	in.AddFire(core.V(70, 20))
	g.Step(in, 0.1)

	if g.tickCount != ticks {
		t.Error("steps after game over must not advance the simulation")
	}
	if len(g.player.Projectiles()) != 0 {
		t.Error("fire events after game over must be ignored")
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := NewWithConfig(scenarioConfig())
	g.Reset(testRuntime(5))

	pause := emptyFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 0.1)
	if !g.State().Paused {
		t.Fatal("pause action should pause the session")
	}

	playerPos := g.player.Position()
	ticks := g.tickCount
	in := emptyFrame()
	in.SetPointer(core.V(70, 20))
	g.Step(in, 0.5)

	if g.player.Position() != playerPos || g.tickCount != ticks {
		t.Error("paused steps must not advance the simulation")
	}

	g.Step(pause, 0.1)
	if g.State().Paused {
		t.Error("second pause action should resume the session")
	}
}

func TestGameQuitEndsSession(t *testing.T) {
	g := NewWithConfig(scenarioConfig())
	g.Reset(testRuntime(5))

	in := emptyFrame()
	in.Set(core.ActionQuit)
	st := g.Step(in, 0.1).State

	if !st.GameOver {
		t.Error("quit action should end the session")
	}
}

func TestGamePointerAndFireIntake(t *testing.T) {
	g := NewWithConfig(scenarioConfig())
	g.Reset(testRuntime(5))

	start := g.player.Position()
	in := emptyFrame()
	in.SetPointer(core.V(70, 20))
	in.AddFire(core.V(70, 20))
	g.Step(in, 0.05)

	if core.Dist(g.player.Position(), core.V(70, 20)) >= core.Dist(start, core.V(70, 20)) {
		t.Error("player should ease toward the pointer")
	}
	if len(g.player.Projectiles()) != 1 {
		t.Fatalf("expected 1 projectile after a fire event, got %d", len(g.player.Projectiles()))
	}
}

func TestGameResetAfterGameOver(t *testing.T) {
	conf := scenarioConfig()
	conf.Scoring.Initial = 1
	conf.Scoring.CollisionPenalty = 1
	g := NewWithConfig(conf)
	g.Reset(testRuntime(5))

	g.enemy.pos = g.player.Position()
	g.Step(emptyFrame(), 0.1)
	if !g.State().GameOver {
		t.Fatal("setup: session should be over")
	}

	g.Reset(testRuntime(5))

	st := g.State()
	if st.GameOver || st.Paused {
		t.Error("reset should clear the terminal state")
	}
	if st.Score != 1 {
		t.Errorf("reset score = %d, expected the configured initial", st.Score)
	}
	if len(g.player.Projectiles()) != 0 {
		t.Error("reset should discard live projectiles")
	}
}

func TestGameDeterministicWithSeed(t *testing.T) {
	conf := scenarioConfig()
	conf.Enemy.Speed = 7

	run := func() (core.Vec2, core.Vec2, int) {
		g := NewWithConfig(conf)
		g.Reset(testRuntime(99))
		for i := 0; i < 200; i++ {
			in := core.NewInputFrame()
			in.SetPointer(core.V(float64(10+i%60), float64(4+i%16)))
			if i%20 == 0 {
				in.AddFire(g.enemy.Position())
			}
			g.Step(in, 1.0/60)
		}
		return g.player.Position(), g.enemy.Position(), g.State().Score
	}

	p1, e1, s1 := run()
	p2, e2, s2 := run()

	if p1 != p2 || e1 != e2 || s1 != s2 {
		t.Errorf("identical seeds and inputs diverged: (%v, %v, %d) vs (%v, %v, %d)", p1, e1, s1, p2, e2, s2)
	}
}

func TestGameRenderStates(t *testing.T) {
	g := NewWithConfig(scenarioConfig())
	g.Reset(testRuntime(5))
	s := core.NewScreen(80, 24)

	g.Render(s)
	if out := s.String(); out == "" {
		t.Fatal("render produced an empty screen")
	}

	pause := emptyFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 0.1)
	g.Render(s)
	if !screenContains(s, "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Step(pause, 0.1)
	quit := emptyFrame()
	quit.Set(core.ActionQuit)
	g.Step(quit, 0.1)
	g.Render(s)
	if !screenContains(s, "GAME OVER") {
		t.Error("game-over overlay missing")
	}
}

func screenContains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		row := make([]rune, s.Width())
		for x := 0; x < s.Width(); x++ {
			row[x] = s.Get(x, y)
		}
		if containsRunes(row, text) {
			return true
		}
	}
	return false
}

func containsRunes(row []rune, text string) bool {
	want := []rune(text)
	for i := 0; i+len(want) <= len(row); i++ {
		match := true
		for j := range want {
			if row[i+j] != want[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
