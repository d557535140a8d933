// Package rules holds the per-frame game rules: movement, spawning, firing,
// collisions, restart and the OnEnter lifecycle hooks. Each rule reads and
// writes the world through a Context and runs on the update goroutine.
package rules

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"

	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/input"
	"chosenoffset.com/spaceshooter/internal/state"
	"chosenoffset.com/spaceshooter/internal/timer"
)

// Timers are the repeating timers shared between frames
type Timers struct {
	Spawn *timer.Timer
	Fire  *timer.Timer
}

// NewTimers creates the spawn and fire-rate timers from cfg.
func NewTimers(cfg *config.Config) *Timers {
	return &Timers{
		Spawn: timer.NewRepeating(cfg.SpawnInterval()),
		Fire:  timer.NewRepeating(cfg.FireInterval()),
	}
}

// Reset rewinds both timers
func (t *Timers) Reset() {
	t.Spawn.Reset()
	t.Fire.Reset()
}

// Context is everything a rule may touch during one frame.
type Context struct {
	World  donburi.World
	Input  input.Frame
	Delta  time.Duration
	Timers *Timers
	Rand   *rand.Rand
	Config *config.Config
	Events Events
	States state.Setter
	Logger *log.Logger
}

// dt returns the frame delta in seconds
func (c *Context) dt() float64 {
	return c.Delta.Seconds()
}

func (c *Context) events() Events {
	if c.Events == nil {
		return Nop{}
	}
	return c.Events
}

var discard = log.New(io.Discard)

func (c *Context) log() *log.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}
