// Package mission implements the lunar landing game: it owns the lander
// and the terrain, runs one physics tick per frame, and judges every
// touchdown. Attempts continue within a session until the pilot quits;
// the pad narrows as landings succeed.
package mission

import (
	"math/rand"

	"github.com/lunarcade/lunarcade/internal/config"
	"github.com/lunarcade/lunarcade/internal/core"
	"github.com/lunarcade/lunarcade/internal/lander"
	"github.com/lunarcade/lunarcade/internal/registry"
	"github.com/lunarcade/lunarcade/internal/terrain"
)

// Scoring constants. A landing is worth a base plus bonuses for the fuel
// still in the tanks and for a gentle touchdown.
const (
	landingScore     = 100
	fuelBonusPerKG   = 0.02 // 5000 kg full tank -> up to 100 points
	softnessBonusMax = 50
)

// Package-level knobs set by the CLI before the game is created,
// mirroring how the platform passes per-game flags through.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game instance.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// star is a cosmetic background light with a twinkle phase. It never
// touches the simulation; it lives and dies with the rendering of one
// attempt.
type star struct {
	x, y  float64
	phase uint64
}

// Game implements the lunar lander mission.
type Game struct {
	runtime core.RuntimeConfig
	mission config.LanderConfig
	diff    *config.DifficultyManager
	rng     *rand.Rand

	bounds  core.Bounds
	craft   *lander.Lander
	surface *terrain.Terrain
	stars   []star

	thrust      lander.Thrust // thrusters fired this tick, for flame rendering
	missionTime float64       // seconds since the current attempt began
	tick        uint64

	attempts  int
	successes int
	score     int
	verdict   *core.TouchdownEvent // set while the last attempt's outcome is on screen
	paused    bool
}

// New creates a new lunar lander mission instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lunar Lander"
}

// Reset starts a fresh session: new RNG from the seed, mission tuning
// loaded, counters cleared, first attempt set up.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	missionCfg, err := config.LoadLander(configPath)
	if err != nil {
		missionCfg = config.DefaultLanderConfig()
	}
	config.ApplyLanderPreset(&missionCfg, difficultyPreset)
	g.mission = missionCfg
	g.diff = config.NewDifficultyManager(missionCfg.Difficulty)

	g.bounds = core.NewBounds(missionCfg.World.Width, missionCfg.World.Height)
	g.craft = lander.New(missionCfg)
	g.surface = terrain.New(missionCfg)

	g.attempts = 0
	g.successes = 0
	g.score = 0
	g.paused = false
	g.tick = 0

	g.newAttempt()
}

// newAttempt regenerates the surface and re-randomizes the lander while
// keeping the session counters. The pad width and fuel load come from the
// difficulty manager, so the mission tightens as the pilot improves.
func (g *Game) newAttempt() {
	g.verdict = nil
	g.missionTime = 0
	g.thrust = lander.Thrust{}

	spread := g.mission.Platform.MaxWidth - g.mission.Platform.MinWidth
	basePad := g.mission.Platform.MinWidth + g.rng.Float64()*spread
	padWidth := g.diff.PlatformWidth(basePad, g.mission.Lander.Width, g.attempts, g.successes)
	g.surface.Generate(g.bounds, padWidth, g.rng)

	fuelLoad := g.diff.FuelLoad(g.mission.Fuel.Capacity, g.attempts, g.successes)
	g.craft.Reset(g.bounds, fuelLoad, g.rng)

	g.scatterStars()
}

// scatterStars places the cosmetic starfield above the terrain.
func (g *Game) scatterStars() {
	count := 40 + g.rng.Intn(20)
	g.stars = make([]star, 0, count)
	skyFloor := g.bounds.H * g.mission.Terrain.MaxFraction
	for i := 0; i < count; i++ {
		g.stars = append(g.stars, star{
			x:     g.rng.Float64() * g.bounds.W,
			y:     skyFloor + g.rng.Float64()*(g.bounds.H-skyFloor),
			phase: uint64(g.rng.Intn(64)),
		})
	}
}

// Step advances the mission by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if !g.craft.IsFlying() {
		// Verdict is on screen; wait for the pilot to start over.
		g.thrust = lander.Thrust{}
		if in.Has(core.ActionNewAttempt) {
			g.newAttempt()
		}
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.Dt()
	g.thrust = lander.ThrustFromInput(in)

	accel := g.craft.Input(g.thrust, g.mission.Physics.Gravity, dt)
	g.craft.Coast(accel, dt)
	g.missionTime += dt

	if ev := g.evaluateTouchdown(); ev != nil {
		g.verdict = ev
		return core.StepResult{State: g.State(), Touchdown: ev}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: false, // the session runs until the pilot quits
		Paused:   g.paused,
	}
}

// Attempts returns how many attempts have concluded this session.
func (g *Game) Attempts() int { return g.attempts }

// Successes returns how many attempts ended in a safe landing.
func (g *Game) Successes() int { return g.successes }

// MissionTime returns seconds since the current attempt began.
func (g *Game) MissionTime() float64 { return g.missionTime }

// Register the game with the registry
func init() {
	registry.Register("lander", func() registry.Game {
		return New()
	})
}
