package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/domain/goal"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/topscorers"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/platform/migration"
	"github.com/riskibarqy/football-manager/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	players    player.Repository
	matches    match.Repository
	goals      goal.Repository
	topScorers topscorers.Repository
	tx         usecase.Transactor
	close      func() error
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		return repositories{
			players:    memory.NewPlayerRepository(store),
			matches:    memory.NewMatchRepository(store),
			goals:      memory.NewGoalRepository(store),
			topScorers: memory.NewTopScorersRepository(store),
			tx:         memory.NewTransactor(store),
		}, nil
	case config.StoreDriverPostgres:
		db, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			players:    postgres.NewPlayerRepository(db),
			matches:    postgres.NewMatchRepository(db),
			goals:      postgres.NewGoalRepository(db),
			topScorers: postgres.NewTopScorersRepository(db),
			tx:         postgres.NewTransactor(db),
			close:      db.Close,
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if cfg.DBAutoMigrate {
		applied, err := migration.Up(cfg.DBURL, cfg.MigrationsDir)
		if err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("database migrations checked", "applied", applied)
	}

	db, err := otelsqlx.Open("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("postgres connected",
		"db_name", dbNameFromURL(cfg.DBURL),
		"max_open_conns", cfg.DBMaxOpenConns,
	)
	return db, nil
}
