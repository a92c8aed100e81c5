package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven configuration surface. Values are
// fixed at process start; nothing here mutates mid-run.
type Config struct {
	FuzzyMatchThreshold float64 `envconfig:"FUZZY_MATCH_THRESHOLD" default:"0.85"`
	EmailPattern        string  `envconfig:"EMAIL_PATTERN" default:"^[^@]+@[^@]+\\.[^@]+"`
	AttendanceFill      float64 `envconfig:"ATTENDANCE_FILL" default:"0"`

	HTTPAddr  string `envconfig:"HTTP_ADDR" default:":8080"`
	DBPath    string `envconfig:"DB_PATH" default:"pulse.db"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"outputs"`
}

// Load reads a .env file if one exists, then resolves the PULSE_*
// environment variables with their defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}

	var cfg Config
	if err := envconfig.Process("PULSE", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
