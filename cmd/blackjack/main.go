package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/console"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

type CLI struct {
	Decks    int    `short:"d" help:"Number of decks in the shoe (overrides BLACKJACK_DECKS)"`
	Seed     int64  `help:"Seed for shuffling, for repeatable games (overrides BLACKJACK_SEED)"`
	Rounds   int    `short:"n" help:"Play this many rounds and stop; 0 asks after every round" default:"0"`
	LogLevel string `help:"Log level: debug, info, warn or error (overrides LOG_LEVEL)"`
	NoColor  bool   `help:"Disable colored output"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-table blackjack against the dealer."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A blocked read on stdin does not notice cancellation, so leave directly
	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stdout, "\nLeaving the table.")
		os.Exit(0)
	}()

	err := run(ctx, &cli, os.Stdin, os.Stdout)
	kctx.FatalIfErrorf(err)
}

func run(ctx context.Context, cli *CLI, in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyFlags(cfg, cli); err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel)
	logger.Debug("Starting blackjack: decks=%d seeded=%t environment=%s", cfg.Decks, cfg.HasSeed, cfg.Environment)

	seed := time.Now().UnixNano()
	if cfg.HasSeed {
		seed = cfg.Seed
	}

	terminal := console.NewTerminal(in, out, cli.NoColor)
	game, err := blackjack.NewGame(cfg.Decks,
		blackjack.WithRand(rand.New(rand.NewSource(seed))),
		blackjack.WithDisplay(terminal),
		blackjack.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	fmt.Fprintln(out, title(out, cli.NoColor))
	fmt.Fprintln(out)

	return playRounds(ctx, game, terminal, cli.Rounds, logger)
}

// applyFlags lets command line flags win over the environment
func applyFlags(cfg *config.Config, cli *CLI) error {
	if cli.Decks != 0 {
		cfg.Decks = cli.Decks
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
		cfg.HasSeed = true
	}
	if cli.LogLevel != "" {
		level, err := logging.ParseLevel(cli.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.LogLevel = level
	}
	if cli.Rounds < 0 {
		return fmt.Errorf("--rounds must not be negative, got %d", cli.Rounds)
	}
	return cfg.Validate()
}

func title(out io.Writer, noColor bool) string {
	renderer := lipgloss.NewRenderer(out)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderer.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#2E7D32")).
		Padding(0, 1).
		Bold(true).
		Render("♠ ♥ Blackjack ♦ ♣")
}
