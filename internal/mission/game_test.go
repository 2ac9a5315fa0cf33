package mission

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lunarcade/lunarcade/internal/core"
	"github.com/lunarcade/lunarcade/internal/lander"
	"github.com/lunarcade/lunarcade/internal/registry"
)

// gentleMissionYAML is a mission tuning with a pad spanning the whole
// world and a forgiving safety envelope, so an uncontrolled descent
// reliably ends in a safe landing.
const gentleMissionYAML = `
world:
  width: 200
  height: 100
physics:
  gravity: -30.0
  main_thrust: 45000
  rotation_rate: 2.0
fuel:
  capacity: 5000
  dry_mass: 10183
  main_rate: 10
  attitude_rate: 1
lander:
  width: 1
  safe_axis_speed: 100.0
  safe_tilt: 3.0
terrain:
  resolution: 1.0
  base_fraction: 0.2
  min_height: 5
  max_fraction: 0.5
  roughness: 0.0
  noise_amplitude: 0.0
  octaves: []
  features_min: 0
  features_max: 0
  smoothing: false
platform:
  min_width: 200
  max_width: 200
  edge_margin: 0
difficulty:
  enabled: false
  initial_level: 0.0
`

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// newGentleGame builds a game from the forgiving tuning above.
func newGentleGame(t *testing.T, seed int64) *Game {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lander.yaml")
	if err := os.WriteFile(path, []byte(gentleMissionYAML), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	return newTestGame(t, seed)
}

// stepUntilTouchdown runs the game with the given input until an attempt
// concludes, failing the test if it never does.
func stepUntilTouchdown(t *testing.T, g *Game, in core.InputFrame) *core.TouchdownEvent {
	t.Helper()
	for i := 0; i < 100000; i++ {
		if result := g.Step(in); result.Touchdown != nil {
			return result.Touchdown
		}
	}
	t.Fatal("No touchdown after 100000 ticks")
	return nil
}

func TestResetStartsFlying(t *testing.T) {
	g := newTestGame(t, 42)

	if !g.craft.IsFlying() {
		t.Error("A fresh session should start with the craft in flight")
	}
	if g.Attempts() != 0 || g.Successes() != 0 {
		t.Errorf("Counters = %d/%d, expected 0/0", g.Successes(), g.Attempts())
	}
	if g.surface.SampleCount() == 0 {
		t.Error("Reset should generate the surface")
	}

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("Initial state = %+v, expected zeroed", state)
	}
}

func TestFreeFallDescent(t *testing.T) {
	g := newTestGame(t, 42)
	in := core.NewInputFrame()

	startY := g.craft.Position().Y
	startFuel := g.craft.Fuel()
	prevDY := g.craft.Velocity().DY

	// Long enough that gravity wins even against an initial upward drift
	for i := 0; i < 300 && g.craft.IsFlying(); i++ {
		g.Step(in)
		dy := g.craft.Velocity().DY
		if dy >= prevDY {
			t.Fatalf("Tick %d: DY = %v did not decrease from %v under gravity", i, dy, prevDY)
		}
		prevDY = dy
	}

	if g.craft.Position().Y >= startY {
		t.Errorf("Y = %v after free fall, expected below start %v", g.craft.Position().Y, startY)
	}
	if g.craft.Fuel() != startFuel {
		t.Error("Free fall should not burn fuel")
	}
}

func TestUncontrolledDescentCrashes(t *testing.T) {
	// With the stock safety envelope the initial leftward drift alone
	// exceeds the touchdown limits, so a hands-off flight must crash
	g := newTestGame(t, 42)

	ev := stepUntilTouchdown(t, g, core.NewInputFrame())

	if ev.Landed {
		t.Error("Uncontrolled descent should not land safely")
	}
	if ev.Attempt != 1 {
		t.Errorf("Attempt = %d, expected 1", ev.Attempt)
	}
	if ev.Speed <= 0 || ev.Duration <= 0 {
		t.Errorf("Event speed %v / duration %v, expected positive", ev.Speed, ev.Duration)
	}
	if !g.craft.IsCrashed() {
		t.Errorf("Craft status = %v, expected crashed", g.craft.Status())
	}
	if g.Attempts() != 1 || g.Successes() != 0 {
		t.Errorf("Counters = %d/%d, expected 0/1", g.Successes(), g.Attempts())
	}
	if g.State().GameOver {
		t.Error("A crash ends the attempt, never the session")
	}
	if g.State().Score != 0 {
		t.Errorf("Score after crash = %d, expected 0", g.State().Score)
	}
}

func TestSafeLanding(t *testing.T) {
	g := newGentleGame(t, 42)

	ev := stepUntilTouchdown(t, g, core.NewInputFrame())

	if !ev.Landed {
		t.Fatalf("Expected a safe landing: on pad %v, speed %v, tilt %v",
			ev.OnPlatform, ev.Speed, ev.TiltDeg)
	}
	if !ev.OnPlatform {
		t.Error("The pad spans the whole world; touchdown must be on it")
	}
	if !g.craft.IsLanded() {
		t.Errorf("Craft status = %v, expected landed", g.craft.Status())
	}
	if g.Successes() != 1 || g.Attempts() != 1 {
		t.Errorf("Counters = %d/%d, expected 1/1", g.Successes(), g.Attempts())
	}
	if g.State().Score < landingScore {
		t.Errorf("Score = %d, expected at least the base %d", g.State().Score, landingScore)
	}
}

func TestExcessiveTiltCrashes(t *testing.T) {
	// Same forgiving tuning but a tight tilt envelope: holding a
	// rotation thruster all the way down must crash even though speed
	// and pad placement would pass
	yaml := strings.Replace(gentleMissionYAML, "safe_tilt: 3.0", "safe_tilt: 0.2", 1)
	path := filepath.Join(t.TempDir(), "lander.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(t, 42)

	in := core.NewInputFrame()
	in.Set(core.ActionRotateCW)
	ev := stepUntilTouchdown(t, g, in)

	if ev.Landed {
		t.Error("Touchdown past the tilt envelope should crash")
	}
	if !ev.OnPlatform {
		t.Error("Expected the crash to happen on the pad")
	}
	if ev.TiltDeg < 12.0 {
		t.Errorf("TiltDeg = %v, expected well past the envelope", ev.TiltDeg)
	}
}

func TestNewAttemptAfterVerdict(t *testing.T) {
	g := newTestGame(t, 42)
	stepUntilTouchdown(t, g, core.NewInputFrame())

	// While the verdict is on screen, ticks without Space change nothing
	g.Step(core.NewInputFrame())
	if g.craft.IsFlying() {
		t.Fatal("Craft should stay down until the pilot starts over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionNewAttempt)
	g.Step(in)

	if !g.craft.IsFlying() {
		t.Error("Space should start a new attempt")
	}
	if g.Attempts() != 1 {
		t.Errorf("Attempts = %d, expected the counter to survive", g.Attempts())
	}
	if g.MissionTime() != 0 {
		t.Errorf("MissionTime = %v, expected reset for the new attempt", g.MissionTime())
	}
	if g.verdict != nil {
		t.Error("Verdict should clear for the new attempt")
	}
}

func TestDeterminism(t *testing.T) {
	// Two sessions with the same seed and inputs stay in lockstep
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		in.Clear()
		if i > 20 && i < 60 {
			in.Set(core.ActionMainEngine)
		}
		if i > 40 && i < 50 {
			in.Set(core.ActionRotateCCW)
		}
		if !g1.craft.IsFlying() {
			in.Set(core.ActionNewAttempt)
		}

		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSeedsDiffer(t *testing.T) {
	g1 := newTestGame(t, 1)
	g2 := newTestGame(t, 2)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Y == s2.Y && s1.DX == s2.DX && s1.PadCenterX == s2.PadCenterX && s1.PadWidth == s2.PadWidth {
		t.Error("Different seeds should give different starting conditions")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 42)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	if !g.State().Paused {
		t.Fatal("Pause action should pause the game")
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	if before.Y != after.Y || before.DY != after.DY || before.Tick != after.Tick {
		t.Error("The simulation should not advance while paused")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("Pause action should toggle back off")
	}
}

func TestThrustSlowsDescent(t *testing.T) {
	g := newTestGame(t, 42)

	// Let gravity build some downward speed first
	coast := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(coast)
	}
	dyCoasting := g.craft.Velocity().DY

	burn := core.NewInputFrame()
	burn.Set(core.ActionMainEngine)
	fuelBefore := g.craft.Fuel()
	for i := 0; i < 30 && g.craft.IsFlying(); i++ {
		g.Step(burn)
	}

	if g.craft.Velocity().DY <= dyCoasting {
		t.Errorf("DY = %v after burn, expected above coasting %v", g.craft.Velocity().DY, dyCoasting)
	}
	if g.craft.Fuel() >= fuelBefore {
		t.Error("A main engine burn should consume fuel")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, 42)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, surfaceChar) {
		t.Error("Rendered frame should show the surface")
	}
	if !strings.ContainsRune(out, padChar) {
		t.Error("Rendered frame should show the landing pad")
	}
	if !strings.Contains(out, "Fuel:") {
		t.Error("Rendered frame should show the HUD")
	}
	if !strings.Contains(out, "Score:") {
		t.Error("Rendered frame should show the session stats")
	}

	// A crash verdict draws its overlay
	stepUntilTouchdown(t, g, core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "MISSION FAILED") {
		t.Error("Crash verdict should be on screen")
	}
}

func TestRenderUninitialized(t *testing.T) {
	// Render before Reset must not panic
	g := New()
	screen := core.NewScreen(80, 24)
	g.Render(screen)
}

func TestRegistryRegistration(t *testing.T) {
	g := New()
	if g.ID() != "lander" {
		t.Errorf("ID = %q, expected %q", g.ID(), "lander")
	}
	if g.Title() == "" {
		t.Error("Title should not be empty")
	}
	if !registry.Exists("lander") {
		t.Error("The mission should self-register as \"lander\"")
	}
}

func TestStatusStrings(t *testing.T) {
	if lander.StatusFlying.String() != "flying" {
		t.Errorf("StatusFlying = %q", lander.StatusFlying.String())
	}
	if lander.StatusLanded.String() != "landed" {
		t.Errorf("StatusLanded = %q", lander.StatusLanded.String())
	}
	if lander.StatusCrashed.String() != "crashed" {
		t.Errorf("StatusCrashed = %q", lander.StatusCrashed.String())
	}
}
