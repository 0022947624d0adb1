// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"go-maze-defense/internal/config"
	"go-maze-defense/internal/defs"
	"go-maze-defense/internal/logging"
	"go-maze-defense/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update вызывается ebiten ровно TicksPerSecond раз в секунду, поэтому шаг фиксирован
func (a *AppGame) Update() error {
	a.stateMachine.Update(config.FixedStep)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are built in)")
	defsDir := flag.String("defs", "", "directory with weapons.json, enemies.json and waves.json")
	seed := flag.Int64("seed", 0, "maze seed, overrides arena.seed when non-zero")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	skipMenu := flag.Bool("play", false, "start straight into a game instead of the menu")
	flag.Parse()

	logger, err := logging.New(os.Stderr, *logLevel, "text", "game")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, lib, err := load(*configPath, *defsDir)
	if err != nil {
		logger.Error("failed to load data", "err", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Arena.Seed = *seed
	}

	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", "addr", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.Warn("pprof server stopped", "err", err)
			}
		}()
	}

	sm := state.NewStateMachine(logger)
	if *skipMenu {
		gs, err := state.NewGameState(sm, cfg, lib, logger)
		if err != nil {
			logger.Error("failed to start game", "err", err)
			os.Exit(1)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, cfg, lib, logger, nil))
	}

	app := &AppGame{stateMachine: sm}
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Maze Defense")
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game loop exited", "err", err)
		os.Exit(1)
	}
}

func load(configPath, defsDir string) (config.Config, *defs.Library, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, nil, err
		}
	}
	lib := defs.Default()
	if defsDir != "" {
		var err error
		if lib, err = defs.LoadLibrary(defsDir); err != nil {
			return cfg, nil, err
		}
	}
	return cfg, lib, nil
}
