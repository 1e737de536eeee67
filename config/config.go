package config

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// Load env from .env; missing file is fine for a local install.
	godotenv.Load()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPath returns the SQLite database file path.
func DBPath() string {
	return getEnv("DB_PATH", "./ims.db")
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}

// HistoryLimit is the default number of receipts returned by the history
// endpoint when the caller does not pass one.
const HistoryLimit = 10
