package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic terrain and starting conditions
}

// Dt returns the fixed simulation time step in seconds, derived from the
// tick rate. All physics rates in the games are per-second and are
// multiplied by this step each tick.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Session score across attempts
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// TouchdownEvent describes one concluded landing attempt. The platform
// persists these without needing to know anything about mission internals.
type TouchdownEvent struct {
	Attempt    int     // 1-based attempt number within the session
	Landed     bool    // True for a safe landing, false for a crash
	OnPlatform bool    // Whether the footprint was on the landing pad
	Speed      float64 // Touchdown speed magnitude
	SpeedX     float64 // Horizontal touchdown speed
	SpeedY     float64 // Vertical touchdown speed
	TiltDeg    float64 // Attitude off upright at touchdown, in degrees
	Fuel       float64 // Fuel remaining at touchdown, kg
	Duration   float64 // Attempt duration in seconds
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Touchdown is non-nil on the tick an attempt concluded.
	Touchdown *TouchdownEvent
}
