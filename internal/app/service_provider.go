package app

import (
	"context"

	panelAPI "roulette_tracker/internal/api/panel"
	"roulette_tracker/internal/config"
	"roulette_tracker/internal/config/env"
	"roulette_tracker/internal/hub"
	"roulette_tracker/internal/middleware"
	"roulette_tracker/internal/repository"
	"roulette_tracker/internal/repository/active_repo"
	"roulette_tracker/internal/repository/croupier_repo"
	"roulette_tracker/internal/repository/memory_repo"
	"roulette_tracker/internal/repository/spin_repo"
	"roulette_tracker/internal/service"
	"roulette_tracker/internal/service/panel"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ServiceProvider struct {
	configPath string

	//TXManager
	txManager trm.Manager

	// Storage
	storageCfg config.StorageConfig
	memoryRepo *memory_repo.StateRepo

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisCfg    config.RedisConfig
	redisClient *redis.Client

	// Panel bits
	tableCfg     config.TableConfig
	spinRepo     repository.SpinRepository
	croupierRepo repository.CroupierRepository
	activeRepo   repository.ActiveCroupierRepository
	panelServ    service.PanelService
	panelHand    *panelAPI.Handler

	// Stream bits
	hub        *hub.Hub
	streamHand *hub.Handler

	// Router, HTTP and log config
	logCfg  config.LogConfig
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

// Close Освобождает соединения с хранилищами
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		if err := sp.redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) usePostgres() bool {
	return sp.StorageCfg().Driver() == config.StoragePostgres
}

func (sp *ServiceProvider) MemoryRepo() *memory_repo.StateRepo {
	if sp.memoryRepo == nil {
		sp.memoryRepo = memory_repo.NewStateRepo()
	}
	return sp.memoryRepo
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		cfg := sp.RedisCfg()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if !sp.usePostgres() {
			sp.txManager = memory_repo.NewTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) TableCfg() config.TableConfig {
	if sp.tableCfg == nil {
		cfg, err := env.NewTableConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get table config: " + err.Error())
		}
		sp.tableCfg = cfg
	}
	return sp.tableCfg
}

func (sp *ServiceProvider) SpinRepository(ctx context.Context) repository.SpinRepository {
	if sp.spinRepo == nil {
		if sp.usePostgres() {
			sp.spinRepo = spin_repo.NewSpinRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
		} else {
			sp.spinRepo = sp.MemoryRepo()
		}
	}
	return sp.spinRepo
}

func (sp *ServiceProvider) CroupierRepository(ctx context.Context) repository.CroupierRepository {
	if sp.croupierRepo == nil {
		if sp.usePostgres() {
			sp.croupierRepo = croupier_repo.NewCroupierRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
		} else {
			sp.croupierRepo = sp.MemoryRepo()
		}
	}
	return sp.croupierRepo
}

// ActiveCroupierRepository Для postgres указатель живет в redis
func (sp *ServiceProvider) ActiveCroupierRepository(ctx context.Context) repository.ActiveCroupierRepository {
	if sp.activeRepo == nil {
		if sp.usePostgres() {
			sp.activeRepo = active_repo.NewActiveCroupierRepository(sp.RedisClient(ctx))
		} else {
			sp.activeRepo = sp.MemoryRepo()
		}
	}
	return sp.activeRepo
}

func (sp *ServiceProvider) Hub() *hub.Hub {
	if sp.hub == nil {
		sp.hub = hub.NewHub()
	}
	return sp.hub
}

func (sp *ServiceProvider) PanelService(ctx context.Context) service.PanelService {
	if sp.panelServ == nil {
		sp.panelServ = panel.NewPanelService(
			sp.SpinRepository(ctx),
			sp.CroupierRepository(ctx),
			sp.ActiveCroupierRepository(ctx),
			sp.TXManager(ctx),
			sp.TableCfg(),
			sp.Hub(),
		)
	}
	return sp.panelServ
}

func (sp *ServiceProvider) PanelHandler(ctx context.Context) *panelAPI.Handler {
	if sp.panelHand == nil {
		sp.panelHand = panelAPI.NewHandler(panelAPI.HandlerDeps{
			Serv: sp.PanelService(ctx),
		})
	}
	return sp.panelHand
}

func (sp *ServiceProvider) StreamHandler(ctx context.Context) *hub.Handler {
	if sp.streamHand == nil {
		sp.streamHand = hub.NewHandler(hub.HandlerDeps{
			Hub:  sp.Hub(),
			Serv: sp.PanelService(ctx),
			Ctx:  ctx,
		})
	}
	return sp.streamHand
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Logging(log.Logger))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Handle("/metrics", promhttp.Handler())

		// Stream endpoint
		r.Get("/ws", sp.StreamHandler(ctx).Stream)

		// Panel endpoints
		sp.PanelHandler(ctx).Routes(r)

		sp.router = r
	}

	return sp.router
}
