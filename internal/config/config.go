package config

import (
	"os"
	"strconv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	RedisAddress  string
	RedisPort     string
	RedisPassword string

	HTTPPort string

	// SummaryCacheTTLSeconds is the lifetime of cached monthly summaries.
	SummaryCacheTTLSeconds int
}

const defaultSummaryCacheTTLSeconds = 600

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		RedisAddress:  "localhost",
		RedisPort:     "6379",
		RedisPassword: "",

		HTTPPort: "9446",

		SummaryCacheTTLSeconds: defaultSummaryCacheTTLSeconds,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envRedisAddress := os.Getenv("REDIS_ADDRESS")
	envRedisPort := os.Getenv("REDIS_PORT")
	envRedisPassword := os.Getenv("REDIS_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envSummaryCacheTTL := os.Getenv("SUMMARY_CACHE_TTL_SECONDS")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envRedisAddress) != 0 {
		env.RedisAddress = envRedisAddress
	}

	if len(envRedisPort) != 0 {
		env.RedisPort = envRedisPort
	}

	if len(envRedisPassword) != 0 {
		env.RedisPassword = envRedisPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envSummaryCacheTTL) != 0 {
		ttl, err := strconv.Atoi(envSummaryCacheTTL)
		if err != nil {
			return nil, err
		}
		env.SummaryCacheTTLSeconds = ttl
	}

	return &env, nil
}
