package chase

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mgarrido/tui-chase/internal/config"
	"github.com/mgarrido/tui-chase/internal/core"
	"github.com/mgarrido/tui-chase/internal/registry"
)

// respawnAttempts caps the rejection sampling for a safe respawn position.
// After that many tries the last candidate is used; on a playfield big
// enough to play on, the cap is effectively never reached.
const respawnAttempts = 16

func init() {
	registry.Register("chase", func() registry.Game {
		return New()
	})
}

// Package-level settings applied at Reset, set by the CLI before the game
// is created (same pattern the platform uses for every game).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset for the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Game orchestrates the session: input intake, per-tick entity updates,
// collision resolution, scoring, respawn, and render dispatch. It owns the
// player and the current enemy exclusively; the platform owns the screen
// and the clock.
type Game struct {
	cfg  core.RuntimeConfig
	conf config.ChaseConfig
	rng  *rand.Rand

	player *Player
	enemy  *Enemy

	score          int
	peak           int     // highest score reached this session
	damageCooldown float64 // time left before the player can be penalized again
	gameOver       bool
	paused         bool
	tickCount      int

	confOverride *config.ChaseConfig
}

// New creates an uninitialized game; Reset must run before Step.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses the given tuning instead of the
// loaded configuration. Used by tests to pin exact scenario parameters.
func NewWithConfig(conf config.ChaseConfig) *Game {
	return &Game{confOverride: &conf}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "chase"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Circle Chase"
}

// Reset initializes or restarts the session: loads tuning, seeds the RNG,
// and places the player left of center with the enemy above center, per the
// classic opening layout.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	if g.confOverride != nil {
		g.conf = *g.confOverride
	} else {
		conf, err := config.LoadChase(configPath)
		if err != nil {
			// An explicit config path that fails to load falls back to
			// defaults; the CLI already warned about it.
			conf = config.DefaultChaseConfig()
		}
		config.ApplyDifficultyPreset(&conf, difficultyPreset)
		g.conf = conf
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))

	w := float64(cfg.ScreenW)
	h := float64(cfg.ScreenH)
	bounds := core.V(w, h)

	g.player = NewPlayer(core.V(w/4, h/2), g.conf.Player, g.conf.Projectile, bounds)
	g.enemy = NewEnemy(core.V(w/2, h/4), g.conf.Enemy, bounds)
	g.enemy.SetTarget(g.player)

	g.score = g.conf.Scoring.Initial
	g.peak = g.score
	g.damageCooldown = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
}

// Step advances the simulation by one tick. The phase order is fixed:
// input intents, entity updates and cooldown decrement, projectile-enemy
// collisions, player-enemy collision, terminal-state check.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Input phase: pointer target and primary-trigger events.
	if in.PointerSet {
		g.player.SetTarget(in.Pointer)
	}
	for _, at := range in.Fires {
		g.player.Fire(at.Sub(g.player.Position()))
	}

	// Update phase.
	g.player.Update(dt)
	g.enemy.Update(dt)
	g.damageCooldown -= dt
	if g.damageCooldown < 0 {
		g.damageCooldown = 0
	}

	// Collision phase: projectiles first, then body contact.
	g.resolveProjectileHits()
	g.resolvePlayerContact()

	if g.score > g.peak {
		g.peak = g.score
	}

	if g.score <= 0 {
		g.score = 0
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// resolveProjectileHits tests every active projectile against the enemy.
// A projectile is consumed on contact whether or not the hit was
// suppressed; every applied hit rewards, and a defeating hit also triggers
// the respawn policy.
func (g *Game) resolveProjectileHits() {
	for _, p := range g.player.Projectiles() {
		if !Collides(p, g.enemy) {
			continue
		}

		applied, defeated := g.enemy.ReceiveDamage()
		if applied {
			g.score += g.conf.Scoring.HitReward
		}
		p.deactivate()

		if defeated {
			g.respawnEnemy()
		}
	}
}

// resolvePlayerContact applies the contact penalty when the player touches
// the enemy, at most once per damage-cooldown window.
func (g *Game) resolvePlayerContact() {
	if !Collides(g.player, g.enemy) || g.damageCooldown > 0 {
		return
	}

	g.score -= g.conf.Scoring.CollisionPenalty
	g.damageCooldown = g.conf.Scoring.DamageCooldown
}

// respawnEnemy replaces a defeated enemy with a fresh one: full health, no
// invulnerability, random radius, and a position sampled uniformly inside
// the playfield margins but away from the player, so a respawn cannot
// cause an instant contact penalty.
func (g *Game) respawnEnemy() {
	w := float64(g.cfg.ScreenW)
	h := float64(g.cfg.ScreenH)

	// A playfield smaller than twice the margin would flip the sampling
	// interval and place the enemy outside the field.
	margin := g.conf.Respawn.Margin
	if limit := math.Min(w, h) / 2; margin > limit {
		margin = limit
	}

	var pos core.Vec2
	for i := 0; i < respawnAttempts; i++ {
		pos = core.V(
			margin+g.rng.Float64()*(w-2*margin),
			margin+g.rng.Float64()*(h-2*margin),
		)
		if core.Dist(pos, g.player.Position()) >= g.conf.Respawn.SafeDistance {
			break
		}
	}

	conf := g.conf.Enemy
	if len(g.conf.Respawn.Radii) > 0 {
		conf.Radius = g.conf.Respawn.Radii[g.rng.Intn(len(g.conf.Respawn.Radii))]
	}

	g.enemy = NewEnemy(pos, conf, core.V(w, h))
	g.enemy.SetTarget(g.player)
}

// Render draws the playfield, entities, and HUD; overlays replace the HUD
// in the paused and terminal states.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.player.Render(dst)
	g.enemy.Render(dst)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawTextColored(2, 1, "Move: mouse | Fire: left click", core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a boxed two-line message in the middle of the
// screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 6
	boxH := 5
	box := core.Rect{
		X: (dst.Width() - boxW) / 2,
		Y: (dst.Height() - boxH) / 2,
		W: boxW,
		H: boxH,
	}

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Peak:     g.peak,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
