package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"token-recovery-dapp/config"
	"token-recovery-dapp/internal/adapter/chain/aptos"
	httpHandler "token-recovery-dapp/internal/adapter/http/handler"
	"token-recovery-dapp/internal/adapter/storage/memory"
	pgStorage "token-recovery-dapp/internal/adapter/storage/postgres"
	redisStorage "token-recovery-dapp/internal/adapter/storage/redis"
	"token-recovery-dapp/internal/adapter/wallet/bridge"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// sessionOnly hides the liveness probe so the coarse monitor only checks
// the cached session.
type sessionOnly struct {
	ports.WalletAdapter
}

// App is the wired daemon: wallet session reconciliation plus the HTTP API.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	rdb  *goredis.Client
	pool *pgxpool.Pool

	wallet   *bridge.Client
	observer *service.SessionObserver
	monitors []*service.HealthMonitor
	handler  http.Handler
	server   *http.Server

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Deps lets callers replace the outbound HTTP clients.
type Deps struct {
	BridgeHTTP bridge.HTTPClient
	ChainHTTP  aptos.HTTPClient
}

// NewApp connects the storage backends and wires every component.
func NewApp(ctx context.Context, cfg *config.Config, deps Deps, log zerolog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}
	var checkers []ports.HealthChecker

	var kv ports.KeyValueStore
	var rateLimits *redisStorage.RateLimitStore
	switch cfg.Preference.Backend {
	case "redis":
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		app.rdb = rdb
		kv = redisStorage.NewKVStore(rdb)
		rateLimits = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	default:
		mem := memory.NewKVStore()
		kv = mem
		checkers = append(checkers, mem)
	}

	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.pool = pool
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			app.Close()
			return nil, err
		}
		auditRepo = pgStorage.NewAuditRepository(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}

	auditSvc := service.NewAuditService(auditRepo, log)
	notices := service.NewNoticeBoard(service.DefaultNoticeCapacity, log)
	prefs := service.NewPreferenceStore(kv, cfg.Preference.Prefix, log)

	app.wallet = bridge.NewClient(bridge.Config{
		BaseURL:        cfg.Wallet.BridgeURL,
		RequestTimeout: cfg.Wallet.RequestTimeout,
		WatchInterval:  cfg.Wallet.WatchInterval,
	}, deps.BridgeHTTP, log)

	chain := aptos.NewClient(aptos.Config{
		NodeURL:        cfg.Chain.NodeURL,
		RequestTimeout: cfg.Chain.RequestTimeout,
	}, deps.ChainHTTP, log)
	checkers = append(checkers, aptos.NewHealthCheck(chain))

	coordinator := service.NewReconnectCoordinator(app.wallet, prefs, log)
	app.observer = service.NewSessionObserver(app.wallet, prefs, coordinator, log)
	reloader := service.NewSessionReloader(app.wallet, app.wallet, notices, auditSvc, log)

	app.monitors = []*service.HealthMonitor{
		service.NewHealthMonitor(service.HealthMonitorConfig{
			Name:     "liveness",
			Interval: cfg.Monitor.LivenessInterval,
			Policy:   service.NewHardReloadPolicy(reloader, log),
		}, sessionOnly{app.wallet}, coordinator, log),
		service.NewHealthMonitor(service.HealthMonitorConfig{
			Name:     "session",
			Interval: cfg.Monitor.SessionInterval,
			Policy:   service.NewSilentRetryPolicy(log),
		}, app.wallet, coordinator, log),
	}

	walletSvc := service.NewWalletService(app.wallet, app.observer, notices, auditSvc, log)
	dappSvc := service.NewDappService(app.wallet, chain, notices, auditSvc, service.DappConfig{
		ModuleAddress:  cfg.Chain.ModuleAddress,
		ConfirmTimeout: cfg.Chain.ConfirmTimeout,
	}, log)

	app.handler = httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		DappSvc:        dappSvc,
		NoticeSvc:      notices,
		DefaultWallet:  cfg.Wallet.Name,
		RateLimitStore: rateLimits,
		HealthCheckers: checkers,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})
	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return app, nil
}

// Handler returns the HTTP API.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Start loads the current session, mounts the observer and starts the
// background loops. It does not serve HTTP.
func (a *App) Start(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)

	if _, err := a.wallet.Refresh(ctx); err != nil {
		a.log.Warn().Err(err).Msg("wallet bridge not reachable yet, starting disconnected")
	}

	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		a.observer.Run(ctx, a.wallet)
	}()
	go func() {
		defer a.wg.Done()
		a.wallet.Watch(ctx)
	}()

	for _, m := range a.monitors {
		m.Start(ctx)
	}
}

// Serve runs the HTTP server until it is shut down.
func (a *App) Serve() error {
	a.log.Info().Str("addr", a.server.Addr).Msg("HTTP server listening")
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Stop shuts down the server, stops the monitors and background loops and
// closes the storage clients.
func (a *App) Stop(ctx context.Context) error {
	var err error
	if shutdownErr := a.server.Shutdown(ctx); shutdownErr != nil {
		err = fmt.Errorf("shutting down http server: %w", shutdownErr)
	}

	for _, m := range a.monitors {
		m.Stop()
	}
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()

	a.Close()
	return err
}

// Close releases the storage clients.
func (a *App) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
		a.rdb = nil
	}
	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
	}
}
