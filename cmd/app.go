package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/kvstore"
	stateRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/state"
	slotsService "github.com/m04kA/SMC-ParkingService/internal/service/slots"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
)

// app общие зависимости команд: конфигурация, логгер, хранилище состояния
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
	policy  domain.BookingPolicy
	state   *stateRepo.Repository
	closers []func() error
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	policy, err := cfg.Booking.Policy()
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	a := &app{cfg: cfg, log: log, policy: policy}
	a.closers = append(a.closers, log.Close)

	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
	}

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.state = stateRepo.NewRepository(store, cfg.Storage.Key, a.metrics, log)

	return a, nil
}

// openStore подключает backend хранилища по storage.driver
func (a *app) openStore(ctx context.Context) (stateRepo.Store, error) {
	cfg := a.cfg.Storage

	switch cfg.Driver {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, client.Close)

		timeout := time.Duration(cfg.Redis.Timeout) * time.Second
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("failed to ping redis %s: %w", cfg.Redis.Addr, err)
		}
		a.log.Info("State storage: redis %s, key=%s", cfg.Redis.Addr, cfg.Key)
		return kvstore.NewRedisStore(client, timeout), nil

	case config.StoragePostgres:
		db, err := sqlx.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		store := kvstore.NewPostgresStore(db, cfg.Postgres.Table)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		a.log.Info("State storage: postgres host=%s, db=%s, table=%s",
			cfg.Postgres.Host, cfg.Postgres.DBName, cfg.Postgres.Table)
		return store, nil

	default:
		store, err := kvstore.NewFileStore(cfg.File.Dir)
		if err != nil {
			return nil, err
		}
		a.log.Info("State storage: file dir=%s, key=%s", cfg.File.Dir, cfg.Key)
		return store, nil
	}
}

func (a *app) slots() *slotsService.Service {
	return slotsService.NewService(a.state, slotsService.Config{
		SlotsPerSection:   a.cfg.Booking.SlotsPerSection,
		AvailabilityRatio: a.cfg.Booking.AvailabilityRatio,
		Seed:              a.cfg.Booking.Seed,
	}, a.log)
}

// Close освобождает ресурсы в обратном порядке
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}
