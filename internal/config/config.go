package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port              string
	DBUser            string
	DBPass            string
	MongoURI          string
	MongoDB           string
	AccessTokenSecret string
	RabbitURL         string
}

func Load() Config {
	cfg := Config{
		Port:              getenv("PORT", "5000"),
		DBUser:            os.Getenv("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getenv("MONGO_DB", "tourDB"),
		AccessTokenSecret: getenv("ACCESS_TOKEN_SECRET", "default_secret_key"),
		RabbitURL:         os.Getenv("RABBIT_URL"),
	}
	if cfg.MongoURI == "" {
		// Atlas-style URI assembled from DB_USER/DB_PASS, same as the frontend team's setup.
		cfg.MongoURI = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.mongodb.net/?retryWrites=true&w=majority",
			cfg.DBUser, cfg.DBPass,
		)
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
