package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"boxshooter/game"
	"boxshooter/sound"
	"boxshooter/term"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (or set "+game.EnvConfigPath+")")
	logLevel := flag.String("log-level", "", "log level: trace, debug, info, warn, error")
	logFile := flag.String("log-file", filepath.Join(os.TempDir(), "boxshooter.log"), "log destination; the terminal is busy drawing")
	seed := flag.Int64("seed", 0, "spawner random seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	fail := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	config, err := game.ConfigFromEnv(*configPath)
	if err != nil {
		fail.Fatal().Err(err).Msg("failed to load config")
	}
	config.Apply(game.Overrides{LogLevel: *logLevel, Seed: *seed, Mute: *mute})

	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fail.Fatal().Err(err).Msg("failed to open log file")
	}
	defer out.Close()

	log, err := game.NewLogger(config.Log, out)
	if err != nil {
		fail.Fatal().Err(err).Msg("failed to create logger")
	}

	ctrl, err := game.NewController(config, log)
	if err != nil {
		fail.Fatal().Err(err).Msg("failed to create game")
	}
	defer ctrl.Close()

	player := sound.NewPlayer(config.Sound, log)
	defer player.Close()
	ctrl.AddSink(game.LogSink{Log: log})
	ctrl.AddSink(player)

	screen, err := tcell.NewScreen()
	if err != nil {
		fail.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		fail.Fatal().Err(err).Msg("failed to initialize screen")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.NewHost(screen, ctrl, log).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("terminal host failed")
		os.Exit(1)
	}
}
