package config

import "os"

// Config carries everything the process reads from the environment,
// resolved once at startup.
type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	ClientOrigin string
	Env          string
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "5000"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "payroll"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Env:          getEnv("APP_ENV", "development"),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
