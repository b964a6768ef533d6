package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	AllowedOrigin         string
	DataDir               string
	DatabaseURL           string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	AuthSecret            string
	AccessTokenTTLMinutes int
	IdleTimeoutMinutes    int
	MirrorDebounceSeconds int
	RevertSoldOnRemove    bool
	LogLevel              string
}

// Load reads configuration from the environment, layering a local .env file
// underneath when one exists.
func Load() Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	tokenTTL, err := strconv.Atoi(getEnv("ACCESS_TOKEN_TTL_MINUTES", "720"))
	if err != nil || tokenTTL < 1 {
		tokenTTL = 720
	}
	idle, err := strconv.Atoi(getEnv("IDLE_TIMEOUT_MINUTES", "30"))
	if err != nil || idle < 1 {
		idle = 30
	}
	debounce, err := strconv.Atoi(getEnv("MIRROR_DEBOUNCE_SECONDS", "2"))
	if err != nil || debounce < 1 {
		debounce = 2
	}

	cfg := Config{
		Port:                  getEnv("PORT", "8080"),
		AllowedOrigin:         getEnv("ALLOWED_ORIGIN", "http://127.0.0.1:3000"),
		DataDir:               getEnv("DATA_DIR", "data"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               redisDB,
		AuthSecret:            strings.TrimSpace(os.Getenv("AUTH_SECRET")),
		AccessTokenTTLMinutes: tokenTTL,
		IdleTimeoutMinutes:    idle,
		MirrorDebounceSeconds: debounce,
		RevertSoldOnRemove:    parseBool(os.Getenv("REVERT_SOLD_ON_REMOVE")),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}
