package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/fixedstep/audio"
	"github.com/lixenwraith/fixedstep/config"
	"github.com/lixenwraith/fixedstep/engine"
	"github.com/lixenwraith/fixedstep/entity"
	"github.com/lixenwraith/fixedstep/host"
	"github.com/lixenwraith/fixedstep/logging"
	"github.com/lixenwraith/fixedstep/render"
	"github.com/lixenwraith/fixedstep/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a .toml or .yaml config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs (to fixedstep.log unless logging.file is set)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error encountered running game: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Game exited cleanly!")
}

func run() error {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := logging.New(cfg.Logging, *debugFlag)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	interval, err := engine.StepInterval(cfg.Loop.UpdatesPerSecond, engine.IntervalMode(cfg.Loop.IntervalMode))
	if err != nil {
		return err
	}

	h, err := host.NewTerminal(host.Config{
		Title:         cfg.Window.Title,
		Author:        cfg.Window.Author,
		LogicalWidth:  float64(cfg.Window.Width),
		LogicalHeight: float64(cfg.Window.Height),
		FrameRate:     cfg.Loop.FrameRate,
		RepeatWindow:  cfg.Input.RepeatWindow,
		ReleaseAfter:  cfg.Input.ReleaseAfter,
	}, logger)
	if err != nil {
		return err
	}
	defer h.Close()
	defer h.Recover()

	game := engine.NewGame(engine.GameConfig{
		Interval:   interval,
		Viewport:   vmath.Vec2{X: float64(cfg.Window.Width), Y: float64(cfg.Window.Height)},
		Background: render.ColorFromArray(cfg.Render.Background),
	}, engine.NewMonotonicTimeProvider(), logger)

	player := entity.NewPlayer(render.ColorFromArray(cfg.Render.Player))
	player.OnMove = func(pos vmath.Vec2) {
		logger.Debug("player moved", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
	}

	// Audio is optional, the game runs without it
	if cfg.Audio.Enabled {
		cue := audio.NewCue(cfg.Audio.Volume)
		if err := cue.Init(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer cue.Close()
			logMove := player.OnMove
			player.OnMove = func(pos vmath.Vec2) {
				logMove(pos)
				cue.PlayMove()
			}
		}
	}

	game.Spawn(player)

	logger.Info("starting",
		zap.Duration("step_interval", interval),
		zap.Float64("frame_rate", cfg.Loop.FrameRate),
		zap.Int("entities", game.EntityCount()),
	)

	if err := h.Run(game); err != nil {
		return err
	}

	logger.Info("stopped", zap.Uint64("steps", game.Steps()), zap.Uint64("frames", game.Frames()))
	return nil
}
