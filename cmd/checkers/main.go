package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/checkers/internal/config"
	"github.com/mitchelldurbincs/checkers/internal/game"
	"github.com/mitchelldurbincs/checkers/internal/game/events"
	"github.com/mitchelldurbincs/checkers/internal/game/events/subscribers"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	tick := flag.Duration("tick", 50*time.Millisecond, "Interval between match ticks")
	devMode := flag.Bool("dev", false, "Log full event payloads")
	watch := flag.Bool("watch", true, "Reload the config file when it changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	match := game.NewMatch(cfg, log.Logger)
	eventLogger := subscribers.NewLoggerSubscriber("checkers-cli", log.Logger, zerolog.InfoLevel)
	eventLogger.SetDevMode(*devMode)
	match.Bus().Subscribe(eventLogger)

	// Redraw after every change a player can see
	redraw := make(chan struct{}, 1)
	for _, t := range []string{events.TypePieceMoved, events.TypePhaseChanged, events.TypeUnitSelected, events.TypeGameEnded} {
		match.Bus().SubscribeFunc(t, func(events.Event) {
			select {
			case redraw <- struct{}{}:
			default:
			}
		})
	}

	if err := match.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up match")
	}
	if err := match.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start match")
	}

	log.Info().
		Str("game_id", match.ID()).
		Str("config_file", config.ConfigFilePath()).
		Dur("tick", *tick).
		Msg("Checkers started. Enter 'x y' to select, 'help' for commands")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reloads := make(chan *config.Config, 1)
	if *watch && config.ConfigFilePath() != "" {
		config.WatchConfig(log.Logger, func(c *config.Config) {
			select {
			case reloads <- c:
			default:
			}
		})
	}

	commands := make(chan command)
	go readCommands(ctx, bufio.NewScanner(os.Stdin), commands)

	render(os.Stdout, match)
	if err := run(ctx, match, commands, reloads, redraw, *tick); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Session ended with error")
	}
	log.Info().Stringer("result", match.Result()).Msg("Goodbye")
}

// run drives the match from a single goroutine until the player quits or ctx ends
func run(ctx context.Context, match *game.Match, commands <-chan command, reloads <-chan *config.Config, redraw <-chan struct{}, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case now := <-ticker.C:
			match.Tick(now.Sub(last))
			last = now

		case <-redraw:
			render(os.Stdout, match)

		case c := <-reloads:
			match.ApplyConfig(c)

		case cmd, ok := <-commands:
			if !ok || cmd.kind == cmdQuit {
				return nil
			}
			if err := apply(match, cmd); err != nil {
				fmt.Fprintf(os.Stdout, "error: %v\n", err)
			}
		}
	}
}

func apply(match *game.Match, cmd command) error {
	switch cmd.kind {
	case cmdSelect:
		if !match.HandleInput(cmd.input) {
			fmt.Fprintln(os.Stdout, "nothing to do there")
		}
	case cmdPause:
		if match.Phase().CanReceiveInput() {
			return match.Pause()
		}
		return match.Resume()
	case cmdReset:
		if err := match.Reset(); err != nil {
			return err
		}
		if err := match.Setup(); err != nil {
			return err
		}
		if err := match.Start(); err != nil {
			return err
		}
		render(os.Stdout, match)
	case cmdShow:
		render(os.Stdout, match)
	case cmdHelp:
		fmt.Fprint(os.Stdout, helpText)
	}
	return nil
}

func readCommands(ctx context.Context, scanner *bufio.Scanner, out chan<- command) {
	defer close(out)
	for scanner.Scan() {
		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stdout, "error: %v\n", err)
			continue
		}
		select {
		case out <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Check if we're in production
	if os.Getenv("APP_ENV") == "production" || format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
