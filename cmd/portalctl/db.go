package main

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/aescholar/internal/config"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/GlebRadaev/aescholar/internal/repo"
	"github.com/GlebRadaev/aescholar/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// openRepos connects to DATABASE_URL. The caller closes the pool.
func openRepos(ctx context.Context) (*config.Config, *repo.Repositories, *pgxpool.Pool, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := logger.InitLogger(cfg); err != nil {
		return nil, nil, nil, err
	}
	pool, err := pgxpool.New(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("database unreachable: %w", err)
	}
	return cfg, repo.New(pg.New(pool), pg.NewTXManager(pool)), pool, nil
}
