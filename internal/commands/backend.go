// Package commands holds the CLI entry points of the listing service.
package commands

import (
	"context"
	"fmt"

	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"github.com/Gnanasekark/Online-property-listing/internal/repository/gormstore"
	"github.com/Gnanasekark/Online-property-listing/internal/repository/mongostore"
	"github.com/Gnanasekark/Online-property-listing/pkg/config"
	"github.com/Gnanasekark/Online-property-listing/pkg/database"
	"github.com/Gnanasekark/Online-property-listing/pkg/mongodb"
	"go.uber.org/zap"
)

// openStore connects the backend chosen by DB_DRIVER. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*repository.Store, func(), error) {
	if cfg.DB.Driver == config.DriverMongo {
		client, err := mongodb.Connect(ctx, &cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		log.Info("MongoDB connected", zap.String("database", cfg.Mongo.Database))

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("Failed to disconnect MongoDB", zap.Error(err))
			}
		}
		return mongostore.New(client.Database(cfg.Mongo.Database)), closeFn, nil
	}

	db, err := database.InitDB(&cfg.DB, log)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return gormstore.New(db), closeFn, nil
}

// migrate creates the schema, or the indexes for MongoDB
func migrate(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.DB.Driver == config.DriverMongo {
		client, err := mongodb.Connect(ctx, &cfg.Mongo)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())

		if err := mongostore.EnsureIndexes(ctx, client.Database(cfg.Mongo.Database)); err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
		log.Info("MongoDB indexes ensured")
		return nil
	}

	db, err := database.InitDB(&cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := database.MigrateModels(db, gormstore.Models()...); err != nil {
		return err
	}
	log.Info("Database migrations completed")
	return nil
}
