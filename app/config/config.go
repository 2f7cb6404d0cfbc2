package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Tables maps the logical entities to the named tabs in the spreadsheet.
type Tables struct {
	Admins     string
	Teachers   string
	Classes    string
	Attendance string
}

// Config holds everything the service reads from the environment. It is built
// once in main and passed to each component's constructor.
type Config struct {
	Port          string
	JWTSecret     string
	SpreadsheetID string
	SAClientEmail string
	SAPrivateKey  string
	Tables        Tables
}

// Load reads the environment (and a .env file if present) into a Config.
// Missing critical values are startup warnings, not hard failures: the service
// still starts and the affected operations fail at call time instead.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8787"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SpreadsheetID: os.Getenv("SPREADSHEET_ID"),
		SAClientEmail: os.Getenv("SA_CLIENT_EMAIL"),
		// keys pasted into env files carry literal \n sequences
		SAPrivateKey: strings.ReplaceAll(os.Getenv("SA_PRIVATE_KEY"), `\n`, "\n"),
		Tables: Tables{
			Admins:     getenv("SHEETS_ADMINS", "admins"),
			Teachers:   getenv("SHEETS_TEACHERS", "teachers"),
			Classes:    getenv("SHEETS_CLASSES", "classes"),
			Attendance: getenv("SHEETS_ATTENDANCE", "attendance"),
		},
	}

	if cfg.JWTSecret == "" {
		log.Println("WARN: JWT_SECRET is not set; tokens will be signed with an empty secret")
	}
	if cfg.SpreadsheetID == "" {
		log.Println("WARN: SPREADSHEET_ID is not set; sheet reads and writes will fail")
	}

	return cfg
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
