package redis_client

import (
	"context"
	"strconv"

	"github.com/railboard/railboard/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultDatabase = 0

func Connect() error {
	address := defaultConnectionAddress
	password := ""
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["RAILBOARD_REDIS_ADDRESS"] != "" {
		address = env["RAILBOARD_REDIS_ADDRESS"]
	}

	if env["RAILBOARD_REDIS_PASSWORD"] != "" {
		password = env["RAILBOARD_REDIS_PASSWORD"]
	}

	if env["RAILBOARD_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["RAILBOARD_REDIS_DATABASE"]); err == nil {
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

	return Client.Ping(context.Background()).Err()
}
