package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/GlebRadaev/aescholar/internal/config"
	"github.com/GlebRadaev/aescholar/internal/handlers"
	"github.com/GlebRadaev/aescholar/internal/observability"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/GlebRadaev/aescholar/internal/repo"
	"github.com/GlebRadaev/aescholar/internal/service"
	"github.com/GlebRadaev/aescholar/internal/service/authservice"
	"github.com/GlebRadaev/aescholar/internal/sfs"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/GlebRadaev/aescholar/pkg/clients"
	"github.com/GlebRadaev/aescholar/pkg/logger"
	"github.com/GlebRadaev/aescholar/pkg/secure"
	"github.com/GlebRadaev/aescholar/pkg/storage"
)

const release = "aescholar@1.0.0"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	sched *sfs.Scheduler
	pool  *pgxpool.Pool
	flush func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
		flush: func() {},
	}
}

func (a *Application) Start(ctx context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("can't load .env: %w", err)
	}
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		zap.L().Warn("sentry disabled", zap.Error(err))
	}
	a.flush = flush

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	deps, err := buildDeps(cfg)
	if err != nil {
		return err
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, deps)
	a.api = handlers.New(a.srv, conn, cfg.FrontendURL)
	a.sched = sfs.NewScheduler(a.srv.Syncer, cfg.SFSSyncInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startScheduler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("env", cfg.Env))
	return nil
}

func buildDeps(cfg *config.Config) (service.Deps, error) {
	cipher, err := secure.NewSINCipher(cfg.EncryptionKey)
	if err != nil {
		return service.Deps{}, fmt.Errorf("can't init SIN cipher: %w", err)
	}
	local, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		return service.Deps{}, err
	}
	return service.Deps{
		Storage: local,
		Cipher:  cipher,
		Checker: sfs.New(cfg.SFSAddress, clients.NewHTTPClient()),
		JWT:     auth.NewJWTService(cfg.JWTSecret),
		Auth: authservice.Options{
			TokenTTL:        cfg.JWTTTL,
			Production:      cfg.IsProduction(),
			DevPasswordHash: cfg.DevLoginPasswordHash,
		},
		SFSWorkers: cfg.SFSWorkers,
	}, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sched.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.pool != nil {
		a.pool.Close()
	}
	a.flush()

	return appErr
}
