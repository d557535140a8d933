package game

import (
	"github.com/charmbracelet/log"

	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/rules"
)

// HeadlessOptions configures a run without a window
type HeadlessOptions struct {
	Config    *config.Config
	Seed      uint64
	Logger    *log.Logger
	Listeners []rules.Events
}

// Headless runs the game rules with an Autopilot and no renderer.
type Headless struct {
	game *Game
}

// NewHeadless creates a started game driven by an Autopilot
func NewHeadless(opts HeadlessOptions) (*Headless, error) {
	pilot := &Autopilot{}
	g, err := New(Options{
		Config:    opts.Config,
		Input:     pilot,
		Logger:    opts.Logger,
		Seed:      opts.Seed,
		Listeners: opts.Listeners,
	})
	if err != nil {
		return nil, err
	}
	pilot.World = g.World()
	g.Start()
	return &Headless{game: g}, nil
}

// Step advances one frame
func (h *Headless) Step() error {
	return h.game.Update()
}

// Run advances frames frames and returns the counters
func (h *Headless) Run(frames int) (Stats, error) {
	for i := 0; i < frames; i++ {
		if err := h.Step(); err != nil {
			return h.game.Stats(), err
		}
	}
	return h.game.Stats(), nil
}

// Game returns the game being driven
func (h *Headless) Game() *Game {
	return h.game
}
