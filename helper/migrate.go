package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hotelier/config"
	"net"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// Direction names one migration command.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionStepUp  Direction = "step-up"
	DirectionDrop    Direction = "drop"
	DirectionVersion Direction = "version"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

type step struct {
	run     func(mig *migrate.Migrate) error
	done    string
	failure string
}

var steps = map[Direction]step{
	DirectionUp: {
		run:     func(mig *migrate.Migrate) error { return mig.Up() },
		done:    "Database migrations completed successfully",
		failure: "error running migrations",
	},
	DirectionStepUp: {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(1) },
		done:    "Database migrations completed successfully",
		failure: "error running migrations",
	},
	DirectionDown: {
		run:     func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		done:    "Database migrations rolled back successfully",
		failure: "error rolling back migrations",
	},
	DirectionDrop: {
		run:     func(mig *migrate.Migrate) error { return mig.Down() },
		done:    "All database migrations rolled back",
		failure: "error rolling back migrations",
	},
}

func ParseDirection(arg string) (Direction, error) {
	direction := Direction(arg)
	if _, ok := steps[direction]; ok || direction == DirectionVersion {
		return direction, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, arg)
}

// DatabaseName applies DB_POSTGRES_PREFIX to name.
func DatabaseName(cfg *config.Config, name string) string {
	return cfg.DB.Postgres.Prefix + name
}

// ConnectionURL is the write-side DSN in the URL form golang-migrate expects,
// pointing its bookkeeping at the configured migrations table.
func ConnectionURL(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)
	query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     "/" + DatabaseName(cfg, write.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func Runner(cfg *config.Config, direction Direction) error {
	mig, err := migrate.New(migrationSource, ConnectionURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if direction == DirectionVersion {
		return logVersion(mig)
	}

	current, ok := steps[direction]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	if err = current.run(mig); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Str("direction", string(direction)).Msg("No migrations to apply")

			return nil
		}

		return fmt.Errorf("%s: %w", current.failure, err)
	}

	log.Info().Str("direction", string(direction)).Msg(current.done)

	return nil
}

func logVersion(mig *migrate.Migrate) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("No migrations applied yet")

		return nil
	}

	if err != nil {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

	return nil
}

// Up applies every pending migration. cmd/app calls it when DB_POSTGRES_AUTO_MIGRATE is set.
func Up(cfg *config.Config) error {
	return Runner(cfg, DirectionUp)
}
