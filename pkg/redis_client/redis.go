package redis_client

import (
	"context"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/linertrack/linertrack/pkg/util"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

// Connect establishes the Redis connection backing the API result cache.
// Redis is optional; when no address is configured and the connection is not
// required, the cache layer is simply skipped.
func Connect(required bool) error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["LINERTRACK_REDIS_ADDRESS"] == "" && !required {
		log.Info().Msg("Skipping Redis setup")
		return nil
	}

	if env["LINERTRACK_REDIS_ADDRESS"] != "" {
		address = env["LINERTRACK_REDIS_ADDRESS"]
	}

	if env["LINERTRACK_REDIS_PASSWORD"] != "" {
		password = env["LINERTRACK_REDIS_PASSWORD"]
	}

	if env["LINERTRACK_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["LINERTRACK_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		return Client.Ping(context.Background()).Err()
	}, connectBackoff)
}
