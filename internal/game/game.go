// Package game wires the world, rules and state machine into the frame loop
// the engine drives, and draws the result.
package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"

	"chosenoffset.com/spaceshooter/internal/assets"
	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/input"
	"chosenoffset.com/spaceshooter/internal/render"
	"chosenoffset.com/spaceshooter/internal/rules"
	"chosenoffset.com/spaceshooter/internal/state"
	"chosenoffset.com/spaceshooter/internal/world"
)

// Options configures a new Game. Renderer and Assets may be nil for a game
// that never draws.
type Options struct {
	Config    *config.Config
	Renderer  render.Renderer
	Assets    *assets.Library
	Input     input.Source
	Logger    *log.Logger
	Seed      uint64
	Listeners []rules.Events
}

// Game holds all game state and logic.
type Game struct {
	cfg     *config.Config
	ctx     *rules.Context
	machine *state.Machine[*rules.Context]
	input   input.Source
	stats   *Stats
	logger  *log.Logger
	started bool

	Renderer render.Renderer
	Camera   Camera
	sprites  map[world.SpriteKind]render.Image
	font     []byte
	faces    map[float64]render.FontFace
}

// New builds the world, timers and rule registry. Nothing runs until Start.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:      cfg,
		input:    opts.Input,
		stats:    &Stats{},
		logger:   logger,
		Renderer: opts.Renderer,
		Camera:   Camera{Width: cfg.Window.Width, Height: cfg.Window.Height},
		sprites:  make(map[world.SpriteKind]render.Image),
		faces:    make(map[float64]render.FontFace),
	}

	g.machine = state.NewMachine[*rules.Context]()
	rules.Register(g.machine)
	g.machine.OnTransition(func(from, to state.State) {
		logger.Info("state changed", "from", from, "to", to)
	})

	events := rules.Multi{g.stats, NewLogEvents(logger)}
	events = append(events, opts.Listeners...)

	g.ctx = &rules.Context{
		World:  world.New(),
		Delta:  time.Second / time.Duration(cfg.Window.TickRate),
		Timers: rules.NewTimers(cfg),
		Rand:   rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		Config: cfg,
		Events: events,
		States: g.machine,
		Logger: logger,
	}

	if g.Renderer != nil && opts.Assets != nil {
		if err := g.loadSprites(opts.Assets); err != nil {
			g.Close()
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) loadSprites(lib *assets.Library) error {
	g.sprites[world.SpriteFighter] = g.Renderer.NewImageFromImage(lib.Fighter)
	g.sprites[world.SpriteBullet] = g.Renderer.NewImageFromImage(lib.Bullet)
	g.sprites[world.SpriteAsteroid] = g.Renderer.NewImageFromImage(lib.Asteroid)
	g.font = lib.Font

	// Parse the default size now so a bad font fails in New
	if _, err := g.face(g.cfg.Assets.FontSize); err != nil {
		return err
	}
	return nil
}

func (g *Game) face(size float64) (render.FontFace, error) {
	if f, ok := g.faces[size]; ok {
		return f, nil
	}
	f, err := g.Renderer.NewFontFace(g.font, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load font face: %w", err)
	}
	g.faces[size] = f
	return f, nil
}

// Close releases the uploaded sprite images. The game must not be drawn
// afterwards.
func (g *Game) Close() {
	for kind, img := range g.sprites {
		img.Dispose()
		delete(g.sprites, kind)
	}
}

// Start enters Playing, spawning the player.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.machine.Start(g.ctx, state.Playing)
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.Start()

	if g.input != nil {
		g.ctx.Input = g.input.Poll()
	} else {
		g.ctx.Input = input.Frame{}
	}

	g.machine.Update(g.ctx)

	g.stats.Frames++
	if n := world.CountAsteroids(g.ctx.World); n > g.stats.PeakAsteroids {
		g.stats.PeakAsteroids = n
	}
	return nil
}

// Layout follows the window size so the view grows with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Camera.Width, g.Camera.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// ScreenSize returns the current logical screen size
func (g *Game) ScreenSize() (int, int) {
	return g.Camera.Width, g.Camera.Height
}

// State returns the current game state
func (g *Game) State() state.State {
	return g.machine.Current()
}

// World exposes the entity store
func (g *Game) World() donburi.World {
	return g.ctx.World
}

// Timers exposes the spawn and fire-rate timers
func (g *Game) Timers() *rules.Timers {
	return g.ctx.Timers
}

// Stats returns a snapshot of the run counters
func (g *Game) Stats() Stats {
	return *g.stats
}
