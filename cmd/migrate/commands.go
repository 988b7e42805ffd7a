package main

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/nicsan-site/migrations"
)

type migrateConfig struct {
	DatabaseURL string `env:"DATABASE_URL"`
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	var dsn string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply the embedded Postgres schema and seed catalog",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dsn, "database-url", "", "Postgres connection string (default: $DATABASE_URL)")

	// withMigrator opens the database for the duration of one subcommand.
	withMigrator := func(fn func(m *migrate.Migrate) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			url, err := resolveDSN(dsn)
			if err != nil {
				return err
			}
			m, closeFn, err := openMigrator(url)
			if err != nil {
				return err
			}
			defer closeFn()
			return fn(m)
		}
	}

	var steps int
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(m *migrate.Migrate) error {
			err := m.Up()
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("schema already up to date")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			logVersion(logger, m)
			return nil
		}),
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations (one step by default)",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(m *migrate.Migrate) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			err := m.Steps(-steps)
			if errors.Is(err, migrate.ErrNoChange) {
				logger.Info("nothing to roll back")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			logVersion(logger, m)
			return nil
		}),
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	force := &cobra.Command{
		Use:   "force <version>",
		Short: "Set the schema version without running migrations (clears the dirty flag)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			return withMigrator(func(m *migrate.Migrate) error {
				if err := m.Force(version); err != nil {
					return fmt.Errorf("force version: %w", err)
				}
				logger.Info("forced schema version", zap.Int("version", version))
				return nil
			})(cmd, args)
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(m *migrate.Migrate) error {
			v, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Println("no migrations applied")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read version: %w", err)
			}
			fmt.Printf("version %d (dirty: %t)\n", v, dirty)
			return nil
		}),
	}

	root.AddCommand(up, down, force, version)
	return root
}

// resolveDSN prefers the flag, then DATABASE_URL from the environment or .env.
func resolveDSN(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	_ = godotenv.Load()

	var cfg migrateConfig
	if err := env.Parse(&cfg); err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return "", errors.New("DATABASE_URL is required (or pass --database-url)")
	}
	return cfg.DatabaseURL, nil
}

func openMigrator(url string) (*migrate.Migrate, func(), error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping db: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db driver: %w", err)
	}

	srcDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, func() { _, _ = m.Close() }, nil
}

func logVersion(logger *zap.Logger, m *migrate.Migrate) {
	v, dirty, err := m.Version()
	if err != nil {
		logger.Warn("could not read schema version", zap.Error(err))
		return
	}
	logger.Info("migrations applied", zap.Uint("version", v), zap.Bool("dirty", dirty))
}
