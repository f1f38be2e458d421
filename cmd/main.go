package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/solitaire/config"
	"github.com/luca-patrignani/solitaire/domain/solitaire"
	"github.com/luca-patrignani/solitaire/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Load()

	command := "play"
	if len(args) > 0 && (args[0] == "play" || args[0] == "serve") {
		command, args = args[0], args[1:]
	}

	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	flags.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed of the shuffle, random when empty")
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "address to serve on (serve only)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	flags.StringVar(&cfg.PublicURL, "public-url", cfg.PublicURL, "URL encoded in the QR code (serve only)")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %s [play|serve] [flags]\n", os.Args[0])
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Create a new slog logger writing through the default PTerm logger
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}

	switch command {
	case "serve":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return serve(ctx, logger, cfg)
	default:
		game := newGame(cfg)
		logger.Debug("new game", "seeded", cfg.Seed != "")
		return play(logger, game)
	}
}

func newGame(cfg config.Config) *solitaire.Game {
	if seed := cfg.SeedBytes(); seed != nil {
		return solitaire.NewGame(solitaire.WithSeed(seed))
	}
	return solitaire.NewGame()
}

func serve(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	url := cfg.PublicURL
	if url == "" {
		var err error
		url, err = publicURL(cfg.Addr)
		if err != nil {
			return err
		}
	}
	qr, err := server.QRString(url)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Open %s to play", url)
	pterm.Println(qr)

	srv := server.New(logger, server.WithSeed(cfg.SeedBytes()), server.WithPublicURL(url))
	return srv.Run(ctx, cfg.Addr)
}
