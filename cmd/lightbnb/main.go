package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lightbnb/backend/internal/adapters/database"
	"github.com/lightbnb/backend/internal/infrastructure/clients/postgres"
	"github.com/lightbnb/backend/internal/infrastructure/observability"
	"github.com/lightbnb/backend/pkg/config"
	"github.com/rs/zerolog/log"
)

const usage = `usage: lightbnb <command> [flags]

commands:
  user          look up a user by -email or -id
  add-user      create a user from -name, -email and -password
  reservations  list a guest's reservations
  properties    search properties
  add-property  create a property from the given fields`

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger(cfg.App.ServiceName, cfg.App.Env, cfg.App.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, os.Args[1], os.Args[2:], os.Stdout)
	cancel()

	if code := exitCode(os.Args[1], err, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// exitCode reports err and returns the process exit status for it.
func exitCode(name string, err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp), errors.Is(err, errUsage):
		fmt.Fprintln(stderr, usage)
		return 2
	default:
		log.Error().Err(err).Str("command", name).Msg("command failed")
		return 1
	}
}

func run(ctx context.Context, cfg *config.Config, name string, args []string, out io.Writer) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	exec := cmd(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.App.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pgClient.Close()

	opts := []database.Option{
		database.WithMetrics(metrics),
		database.WithDefaultLimit(cfg.Query.DefaultLimit),
	}
	repos := repositories{
		users:        database.NewUserAdapter(pgClient, opts...),
		reservations: database.NewReservationAdapter(pgClient, opts...),
		properties:   database.NewPropertyAdapter(pgClient, opts...),
	}

	result, err := exec(ctx, repos)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
