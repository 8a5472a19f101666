package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment. A .env file
// in the working directory is loaded first when present; real environment
// variables win over it.
type Config struct {
	DBPath string // NUTRI_DB: path to the SQLite database (empty means use the default location)
}

func Load() Config {
	_ = godotenv.Load()
	return Config{
		DBPath: os.Getenv("NUTRI_DB"),
	}
}
