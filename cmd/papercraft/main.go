package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/papercraft/audio"
	"github.com/lixenwraith/papercraft/config"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/engine"
	"github.com/lixenwraith/papercraft/events"
	"github.com/lixenwraith/papercraft/input"
	"github.com/lixenwraith/papercraft/modes"
	"github.com/lixenwraith/papercraft/render"
	"github.com/lixenwraith/papercraft/report"
	"github.com/lixenwraith/papercraft/systems"
	"github.com/lixenwraith/papercraft/telemetry"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	fs := pflag.NewFlagSet("papercraft", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	configDir, _ := fs.GetString("config-dir")
	cfg, err := config.Load(configDir, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "papercraft: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "papercraft: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Create game context with ECS world and place the opening roster
	ctx := engine.NewGameContext(cfg, logger)
	if err := ctx.Populate(); err != nil {
		fmt.Fprintf(os.Stderr, "papercraft: %v\n", err)
		os.Exit(1)
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashFinalizer(screen.Fini)
	screen.EnableMouse()
	screen.HideCursor()

	rules := systems.NewRulesEngine(ctx)

	// Event consumers, invoked after each cycle in registration order
	router := events.NewRouter(ctx.Events)

	battleLog := report.NewBattleLog(report.DefaultCapacity)
	router.Register(battleLog)

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.Volume))
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	} else {
		defer sound.Cleanup()
	}
	router.Register(sound)

	if metrics, err := telemetry.NewMetrics(); err != nil {
		logger.Warn().Err(err).Msg("metrics unavailable")
	} else {
		router.Register(metrics)
	}
	router.Register(eventLogger{log: logger})

	renderer := render.NewTerminalRenderer(screen, cfg.Screen.Width, cfg.Screen.Height)
	inputHandler := modes.NewInputHandler(rules, input.NewMachine(), report.NewExporter(ctx, battleLog))

	logger.Info().
		Int("units", ctx.World.Count()).
		Int("frame_rate", cfg.FrameRate).
		Msg("papercraft started")

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil event means the screen was finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				logger.Info().Int("round", ctx.State.Round).Msg("papercraft exiting")
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-frameTicker.C:
			inputHandler.Tick()
			router.DispatchAll()
			renderer.RenderFrame(ctx.BuildView(render.RgbBackground))
		}
	}
}
