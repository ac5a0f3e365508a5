package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the portal service.
// Values are read from the environment at startup.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	DatabaseFile string `env:"PORTAL_DATABASE_FILE" envDefault:"portal.db"`
	PepperFile   string `env:"PORTAL_PEPPER_FILE"   envDefault:"pepper"`

	// Staff-facing endpoints verify bearer tokens issued by the external
	// auth service. The verification key is supplied out of band.
	AuthIssuer    string `env:"PORTAL_AUTH_ISSUER,required"`
	AuthPublicKey string `env:"PORTAL_AUTH_PUBLIC_KEY,required"` // base64 raw ed25519 public key
	AuthKid       string `env:"PORTAL_AUTH_KID" envDefault:"default"`

	Env       string `env:"ENV"        envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD"  envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
