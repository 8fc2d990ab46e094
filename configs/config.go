package config

import "os"

type Config struct {
	Port        string
	Environment string
	PostgresURI string
	RedisURI    string
	FrontendURL string
	SecretKey   string
	CookieName  string
}

func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "9500"),
		Environment: getEnv("ENVIRONMENT", "production"),
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		SecretKey:   getEnv("SECRET_KEY", "dev-secret"),
		CookieName:  getEnv("COOKIE_NAME", "socialflow_session"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
