package config

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func NewMongoConn(ctx context.Context, cfg *Mongo) (*mongo.Client, error) {
	operation := func() (*mongo.Client, error) {
		client, err := mongo.Connect(options.Client().ApplyURI(cfg.URL))
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("Failed to connect to MongoDB. Retrying...")
			return nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			zerolog.Ctx(ctx).Error().Err(err).Msg("Failed to ping MongoDB. Retrying...")
			return nil, err
		}
		return client, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = 10 * time.Second
	maxRetries := uint(5)
	client, err := backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(maxRetries))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Msg("Successfully connected to MongoDB")
	return client, nil
}
