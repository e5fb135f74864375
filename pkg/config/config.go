package config

import (
	"log"
	"os"
	"strconv"
)

func ProvideConfig() Config {
	return Config{
		BasePath:   requireEnv("BASE_PATH"),
		ServerPort: requireEnvAsInt("SERVER_PORT"),
		Redis: redis{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     optionalEnvAsInt("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}
}

type Config struct {
	BasePath   string
	ServerPort int
	Redis      redis
}

type redis struct {
	Host     string
	Port     int
	Password string
}

// Enabled reports whether the Redis backed store is configured. When it is not, check-in falls
// back to an in-memory store and chat reports service unavailable.
func (r redis) Enabled() bool {
	return r.Host != "" && r.Port != 0
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}

func optionalEnvAsInt(key string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return 0
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}
