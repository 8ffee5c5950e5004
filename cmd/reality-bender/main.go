package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/reality-bender/audio"
	"github.com/lixenwraith/reality-bender/config"
	"github.com/lixenwraith/reality-bender/core"
	"github.com/lixenwraith/reality-bender/engine"
	"github.com/lixenwraith/reality-bender/events"
	"github.com/lixenwraith/reality-bender/input"
	"github.com/lixenwraith/reality-bender/level"
	"github.com/lixenwraith/reality-bender/render"
	"github.com/lixenwraith/reality-bender/service"
	"github.com/lixenwraith/reality-bender/status"
)

const (
	logDir      = "logs"
	logFileName = "reality-bender.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

var (
	configFlag    = flag.String("config", "", "Path to TOML config file")
	levelFlag     = flag.String("level", "", "Path to a YAML or TOML level file (default: built-in level)")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/"+logFileName)
	debugAddrFlag = flag.String("debug-addr", "", "Serve status metrics on this address, e.g. 127.0.0.1:6060")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, mono")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reality-bender: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to a rotated file in debug mode and discards it otherwise
// The terminal belongs to the renderer, so logs never go to stdout or stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("reality-bender.%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix(fmt.Sprintf("[%s] ", sessionID[:8]))
	return f
}

var sessionID = uuid.NewString()

// app holds what outlives a single game session
type app struct {
	cfg      *config.Config
	level    *level.Level
	screen   tcell.Screen
	clock    engine.Clock
	keys     chan engine.KeyEvent
	sound    *audio.SoundManager
	registry *status.Registry
	color    render.ColorMode
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugAddrFlag != "" {
		cfg.Debug.Addr = *debugAddrFlag
	}

	colorMode, err := render.ParseColorMode(*colorModeFlag)
	if err != nil {
		return err
	}

	lvl, err := loadLevel(cfg)
	if err != nil {
		return err
	}

	keymap, err := cfg.Keymap()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		cfg:      cfg,
		level:    lvl,
		screen:   screen,
		clock:    engine.NewRealClock(),
		keys:     make(chan engine.KeyEvent, 64),
		sound:    audio.NewSoundManager(cfg.AudioSettings()),
		registry: status.NewRegistry(),
		color:    colorMode,
	}

	hub := service.NewHub()
	if err := hub.Register(a.sound); err != nil {
		return err
	}
	if cfg.Debug.Addr != "" {
		if err := hub.Register(status.NewServer(a.registry, cfg.Debug.Addr)); err != nil {
			return err
		}
	}
	if err := hub.Start(); err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	defer func() {
		if err := hub.Stop(); err != nil {
			log.Printf("Service shutdown: %v", err)
		}
	}()
	if err := a.sound.InitErr(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	if cfg.Debug.Addr != "" {
		log.Printf("Status server listening on %s", cfg.Debug.Addr)
	}
	a.registry.Strings.Get("session.id").Store(sessionID)

	core.Go(func() { pollEvents(ctx, screen, keymap, a.keys) })

	log.Printf("Starting level %q", lvl.Name)
	return a.loop(ctx)
}

func loadLevel(cfg *config.Config) (*level.Level, error) {
	path := *levelFlag
	if path == "" {
		path = cfg.Game.Level
	}
	if path == "" {
		return level.Default(), nil
	}
	return level.Load(path)
}

// loop plays sessions until quit; every restart builds a fresh game from the level
func (a *app) loop(ctx context.Context) error {
	restarts := a.registry.Ints.Get("session.restarts")
	for {
		exit, err := a.session(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
		if exit == engine.ExitQuit {
			log.Printf("Quit after %d restarts", restarts.Load())
			return nil
		}
		restarts.Add(1)
		log.Printf("Restarting level")
	}
}

func (a *app) session(ctx context.Context) (engine.Exit, error) {
	stage, err := level.NewStage(a.level)
	if err != nil {
		return engine.ExitQuit, err
	}

	queue := events.NewEventQueue(0)
	game, err := engine.NewGame(stage, a.clock, queue, a.cfg.EngineConfig())
	if err != nil {
		return engine.ExitQuit, err
	}

	renderer := render.NewRenderer(a.screen, stage, a.clock, render.Options{
		Title:     stage.Name(),
		ColorMode: a.color,
	})
	metrics := engine.NewMetrics(a.registry)

	router := events.NewRouter(queue)
	router.Register(renderer)
	router.Register(a.sound)
	router.Register(metrics)
	router.Register(eventLogger())

	l := engine.NewLoop(game, router, a.clock, a.keys, a.cfg.LoopConfig())
	l.SetMetrics(metrics)
	l.OnFrame(renderer.Draw)

	renderer.Draw(game.Snapshot())
	return l.Run(ctx)
}

// pollEvents forwards mapped key events and handles resizes until the screen is finalized
func pollEvents(ctx context.Context, screen tcell.Screen, keymap *input.Keymap, keys chan<- engine.KeyEvent) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			k, ok := keymap.Lookup(ev)
			if !ok {
				continue
			}
			select {
			case keys <- engine.KeyEvent{Key: k, Time: ev.When()}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// eventLogger logs mode changes and outcomes
func eventLogger() events.Handler {
	return events.HandlerFunc{
		Types: []events.EventType{
			events.EventGravityToggled,
			events.EventDimensionShifted,
			events.EventTimeToggled,
			events.EventRewindFinished,
			events.EventCollision,
			events.EventVictory,
		},
		Fn: logEvent,
	}
}

func logEvent(ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.GravityPayload:
		log.Printf("frame %d: gravity direction %d", ev.Frame, p.Direction)
	case *events.DimensionPayload:
		log.Printf("frame %d: dimension %d", ev.Frame, p.Dimension)
	case *events.TimePayload:
		log.Printf("frame %d: time reversed %v", ev.Frame, p.Reversed)
	case *events.RewindPayload:
		log.Printf("frame %d: rewind finished after %d steps", ev.Frame, p.Steps)
	case *events.CollisionPayload:
		log.Printf("frame %d: collision with obstacle %d at (%.1f, %.1f)", ev.Frame, p.Obstacle, p.X, p.Y)
	case *events.VictoryPayload:
		log.Printf("frame %d: victory in dimension %d", ev.Frame, p.Dimension)
	default:
		log.Printf("frame %d: %s", ev.Frame, ev.Type)
	}
}
