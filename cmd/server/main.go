// Package main implements the entry point for the workout log API server,
// which records workouts, exercises, and the exercises performed in each
// workout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/sqlstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("workout-api: %v", err)
	}
}

// options are the command line flags.
type options struct {
	migrate string
	seed    bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("workout-api", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a migration command (up, down, status, version, reset) and exit")
	fs.BoolVar(&opts.seed, "seed", false,
		"replace the database contents with demo data and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// run loads configuration, opens the database and then either executes a
// one-shot command (-migrate, -seed) or serves HTTP until ctx is done.
func run(ctx context.Context, args []string, output io.Writer) error {
	opts, err := parseFlags(args, output)
	if err != nil {
		return err
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	dialect, db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer closeDB(db, logger)
		return handleMigrations(ctx, db, dialect, opts.migrate, logger)
	}

	if cfg.Database.AutoMigrate || opts.seed {
		if err := sqlstore.Migrate(ctx, db, dialect, sqlstore.MigrateUp, logger); err != nil {
			closeDB(db, logger)
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(cfg, logger, db, dialect)
	if err != nil {
		closeDB(db, logger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if opts.seed {
		defer app.cleanup()
		return app.seed(ctx, domain.Today())
	}

	return app.Run(ctx)
}
