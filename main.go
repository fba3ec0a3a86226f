package main

import (
	"flag"
	"os"

	"boxshooter/display"
	"boxshooter/game"
	"boxshooter/sound"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (or set "+game.EnvConfigPath+")")
	logLevel := flag.String("log-level", "", "log level: trace, debug, info, warn, error")
	seed := flag.Int64("seed", 0, "spawner random seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	config, err := game.ConfigFromEnv(*configPath)
	if err != nil {
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		fallback.Fatal().Err(err).Msg("failed to load config")
	}
	config.Apply(game.Overrides{LogLevel: *logLevel, Seed: *seed, Mute: *mute})

	log, err := game.NewLogger(config.Log, os.Stderr)
	if err != nil {
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		fallback.Fatal().Err(err).Msg("failed to create logger")
	}

	ctrl, err := game.NewController(config, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	defer ctrl.Close()

	player := sound.NewPlayer(config.Sound, log)
	defer player.Close()

	ctrl.AddSink(game.LogSink{Log: log})
	ctrl.AddSink(player)

	monitor := game.NewFrameMonitor(config.Profile, log)
	g := display.NewGame(ctrl, monitor, log)

	ebiten.SetWindowSize(config.Field.Width, config.Field.Height)
	ebiten.SetWindowTitle("Box Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info().Int("width", config.Field.Width).Int("height", config.Field.Height).Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		log.Error().Err(err).Msg("game exited with error")
	}
}
