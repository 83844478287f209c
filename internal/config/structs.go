package config

import (
	"time"

	"github.com/openlogistics-io/referencedata/internal/logger"
)

// Auth holds token verification settings.
type Auth struct {
	// Secret signs and verifies bearer tokens.
	Secret string

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Auth      Auth
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
