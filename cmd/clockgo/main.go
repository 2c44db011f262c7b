package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clockgo/clockgo/bot"
	"github.com/clockgo/clockgo/config"
	"github.com/clockgo/clockgo/gtp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// GTP owns stdout, so all logging goes to stderr.
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		os.Exit(0)
	}()

	controller := gtp.NewController(cfg.BoardSize, cfg.Komi, bot.New(cfg.GenmoveTries))

	if cfg.Console {
		if err := consoleLoop(controller); err != nil {
			log.Fatal().Err(err).Msg("console loop failed")
		}
		return
	}
	if err := gtp.Loop(controller, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("gtp loop failed")
	}
}

// consoleLoop drives the same GTP dispatcher from an interactive prompt,
// for poking at the engine by hand.
func consoleLoop(c *gtp.Controller) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mclockgo>\033[0m ",
		HistoryFile:     "/tmp/clockgo_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		resp, quit := c.Execute(line)
		if resp != "" {
			fmt.Println(resp)
		}
		if quit {
			return nil
		}
	}
}
