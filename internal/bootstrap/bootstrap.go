// Package bootstrap assembles a configured advisor agent and its backing
// services. Both binaries share this wiring.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"marketing-advisor/internal/advisor"
	"marketing-advisor/internal/common/config"
	"marketing-advisor/internal/common/database"
	commonerrors "marketing-advisor/internal/common/errors"
	"marketing-advisor/internal/common/logger"
	"marketing-advisor/internal/history"
	"marketing-advisor/internal/insights"
)

// RetryWithBackoff attempts to execute a function with exponential backoff.
func RetryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// BuildAgent wires history, cache and insights per the configuration and
// returns the agent plus a shutdown function that closes every connection.
func BuildAgent(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (*advisor.Agent, func(), error) {
	log := logger.NewZapAdapter(zapLog)

	var closers []func() error
	shutdown := func() {
		for _, closer := range closers {
			if err := closer(); err != nil {
				zapLog.Warn("shutdown close failed", zap.Error(err))
			}
		}
	}

	opts := advisor.Options{}

	// --- History store ---
	switch cfg.History.Backend {
	case "postgres":
		var pg *database.PostgresClient
		err := RetryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			shutdown()
			return nil, nil, commonerrors.NewDatabaseConnectionFailedError(err)
		}
		closers = append(closers, pg.Close)
		opts.HistoryStore = history.NewPostgresStore(pg)
		zapLog.Info("PostgreSQL history store connected")

	default:
		opts.HistoryStore = history.NewFileStore(cfg.History.FilePath)
	}

	sinks := history.MultiSink{opts.HistoryStore}

	// --- Optional Elasticsearch index ---
	if cfg.History.Index.Enabled {
		var es *database.ElasticsearchClient
		err := RetryWithBackoff(func() error {
			var err error
			es, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return es.Ping()
		}, 5, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			shutdown()
			return nil, nil, commonerrors.NewDatabaseConnectionFailedError(err)
		}
		sinks = append(sinks, history.NewElasticSink(es.Client, cfg.History.Index.Name))
		zapLog.Info("Elasticsearch history index connected",
			zap.String("index", cfg.History.Index.Name))
	}
	opts.HistorySink = sinks

	// --- Optional report cache ---
	if cfg.Cache.Enabled {
		var rdb *database.RedisClient
		err := RetryWithBackoff(func() error {
			var err error
			rdb, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return rdb.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			shutdown()
			return nil, nil, commonerrors.NewDatabaseConnectionFailedError(err)
		}
		closers = append(closers, rdb.Close)
		opts.Cache = rdb
		opts.CacheTTL = time.Duration(cfg.Cache.ReportTTL) * time.Minute
		zapLog.Info("Redis report cache connected")
	}

	// --- Optional AI insights ---
	if cfg.Insights.Enabled {
		client := insights.NewClient(cfg.Insights, log)
		opts.Insights = insights.NewAdapter(client, log)
		zapLog.Info("insight service client initialized",
			zap.String("model", cfg.Insights.Model))
	}

	return advisor.NewAgent(log, opts), shutdown, nil
}
