package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitdash/internal/cli"
	"github.com/julianstephens/habitdash/internal/constants"
	"github.com/julianstephens/habitdash/internal/keyring"
	"github.com/julianstephens/habitdash/internal/logger"
	"github.com/julianstephens/habitdash/internal/notifier"
	"github.com/julianstephens/habitdash/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. Use a .json suffix for JSON storage or the literal value 'postgres' for Postgres." type:"path" default:"~/.config/habitdash/habitdash.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize habitdash storage."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Add          cli.AddCmd          `cmd:"" help:"Add a new habit."`
	List         cli.ListCmd         `cmd:"" help:"List all habits."`
	Toggle       cli.ToggleCmd       `cmd:"" help:"Toggle a habit's completion for a day."`
	Edit         cli.EditCmd         `cmd:"" help:"Edit a habit."`
	Delete       cli.DeleteCmd       `cmd:"" help:"Delete a habit and its history."`
	Today        cli.TodayCmd        `cmd:"" help:"Show today's checklist."`
	Log          cli.LogCmd          `cmd:"" help:"Show the completion log grid."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show progress statistics."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show the achievement board."`
	Quote        cli.QuoteCmd        `cmd:"" help:"Show today's motivational quote."`
	Keyring      cli.KeyringCmd      `cmd:"" help:"Manage the stored Postgres connection string."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracking dashboard"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store, err := selectStore(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:    store,
		Notifier: notifier.New(),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// selectStore picks the backend from the config path: a .json suffix means
// the JSON file store, the literal value "postgres" means Postgres with the
// connection string from the OS keyring, anything else is SQLite.
func selectStore(configPath string) (storage.Provider, error) {
	switch {
	case configPath == "postgres":
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("postgres storage requires a connection string, run 'habitdash keyring set' first: %w", err)
		}
		return storage.NewPostgresStore(connStr), nil
	case strings.HasSuffix(configPath, ".json"):
		return storage.NewJSONStore(configPath), nil
	default:
		return storage.NewSQLiteStore(configPath), nil
	}
}
