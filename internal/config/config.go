package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	BackendURL string
	StateDSN   string
	LogFile    string
	AdminEmail string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	backend := os.Getenv("BACKEND_URL")
	if backend == "" {
		backend = "https://ferreteria-backend-o1lt.onrender.com"
	}
	dsn := os.Getenv("STATE_DSN")
	if dsn == "" {
		dsn = "ferromart.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./ferromart.log" // default log sink in project root
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		// UI-gating sentinel only; the backend stays the authority on privileges.
		adminEmail = "admin@ferreteria.com"
	}

	cfg := Config{Port: port, BackendURL: backend, StateDSN: dsn, LogFile: logFile, AdminEmail: adminEmail}
	log.Printf("[config] PORT=%s BACKEND_URL=%s STATE_DSN=%s LOG_FILE=%s", cfg.Port, cfg.BackendURL, cfg.StateDSN, cfg.LogFile)
	return cfg
}
