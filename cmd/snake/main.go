package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/parameter"
	"github.com/lixenwraith/term-snake/render"
	"github.com/lixenwraith/term-snake/status"
	"github.com/lixenwraith/term-snake/terminal"
)

var (
	configFlag  = flag.String("config", parameter.ConfigFile, "Path to the TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write a debug log to logs/snake.log")
	colorFlag   = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	backendFlag = flag.String("backend", "ansi", "Terminal backend: ansi, tcell")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
)

// errTooSmall reports a terminal that cannot fit the minimum play field
var errTooSmall = errors.New("terminal too small")

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

// run plays one game; the terminal is restored before it returns
func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	override, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), override)

	policy, err := game.ParseSteerPolicy(cfg.SteerPolicy)
	if err != nil {
		return err
	}

	colorMode := terminal.ParseColorMode(cfg.Color)
	term, err := openTerminal(cfg.Backend, colorMode)
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup; Fini is idempotent
	defer term.Fini()

	termW, termH := term.Size()
	fieldW := termW / parameter.FieldHorizontalMult
	fieldH := termH - parameter.HeaderHeight
	if fieldW < parameter.MinFieldWidth || fieldH < parameter.MinFieldHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", errTooSmall, termW, termH,
			parameter.MinFieldWidth*parameter.FieldHorizontalMult, parameter.MinFieldHeight+parameter.HeaderHeight)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	params := game.DefaultParams()
	params.InitialSpeed = cfg.InitialSpeed
	params.SpeedStep = cfg.SpeedStep
	params.Policy = policy

	g, err := game.New(fieldW, fieldH, params, rng)
	if err != nil {
		return err
	}

	log.Printf("start: terminal %dx%d field %dx%d backend=%s color=%s seed=%d policy=%s",
		termW, termH, fieldW, fieldH, cfg.Backend, colorMode, seed, policy)

	reg := status.NewRegistry()
	reg.Strings.Get(status.TermBackend).Store(cfg.Backend)
	reg.Strings.Get(status.TermColor).Store(colorMode.String())

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Sound
	audioCfg.MasterVolume = cfg.MasterVolume()
	sound := audio.NewSoundManager(audioCfg, reg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	reg.Bools.Get(status.AudioEnabled).Store(sound.Enabled())

	if err := term.Clear(terminal.RGBBlack); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	header := render.NewCanvas(0, 0, termW, parameter.HeaderHeight, 1)
	field := render.NewCanvas(0, parameter.HeaderHeight, fieldW, fieldH, parameter.FieldHorizontalMult)

	queue := event.NewQueue[input.Intent]()
	monitorDone := input.NewMonitor(term, keys, queue, reg).Start()

	loop := engine.NewLoop(engine.LoopConfig{
		Game:         g,
		Field:        field,
		Header:       header,
		Screen:       term,
		Queue:        queue,
		Sound:        sound,
		Registry:     reg,
		BaseInterval: cfg.BaseInterval(),
		DeathDelay:   cfg.DeathDelay(),
	})
	out, runErr := loop.Run()

	term.Fini()
	select {
	case <-monitorDone:
	case <-time.After(parameter.MonitorStopTimeout):
		log.Printf("input monitor did not stop within %v", parameter.MonitorStopTimeout)
	}

	log.Printf("metrics:\n%s", reg.Summary())

	if runErr != nil {
		return runErr
	}
	return engine.Finish(out, os.Stdout)
}

// applyFlags lets explicitly set command-line flags override the config file
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "color":
			cfg.Color = *colorFlag
		case "backend":
			cfg.Backend = *backendFlag
		case "mute":
			if *muteFlag {
				cfg.Sound = false
			}
		}
	})
}

// openTerminal selects the terminal implementation by name
func openTerminal(backend string, mode terminal.ColorMode) (terminal.Terminal, error) {
	switch backend {
	case "", "ansi":
		return terminal.New(mode), nil
	case "tcell":
		return terminal.NewTcell(mode)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
