package config

import "os"

type Config struct {
	BOT_TOKEN       string
	PHRASES_FILE    string
	CHALLENGES_FILE string
	USER_DATA_FILE  string
	HTTP_ADDR       string
	ALLOWED_ORIGINS string
	DEBUG           bool
}

// Load reads the process environment. Call after godotenv so .env
// values are visible.
func Load() Config {
	return Config{
		BOT_TOKEN:       os.Getenv("BOT_TOKEN"),
		PHRASES_FILE:    getenv("PHRASES_FILE", "phrases.txt"),
		CHALLENGES_FILE: getenv("CHALLENGES_FILE", "challenges.txt"),
		USER_DATA_FILE:  getenv("USER_DATA_FILE", "user_data.csv"),
		HTTP_ADDR:       getenv("HTTP_ADDR", ":5000"),
		ALLOWED_ORIGINS: os.Getenv("ALLOWED_ORIGINS"),
		DEBUG:           os.Getenv("DEBUG") == "true",
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
