package server

import "github.com/raysh454/fhscan/internal/logging"

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string
	// AllowedOrigins limits CORS and websocket origins; empty allows any.
	AllowedOrigins []string
	// MaxBodyBytes caps request bodies; 0 means 4 MiB.
	MaxBodyBytes int64
	Logger       logging.Logger
}

const defaultMaxBodyBytes = 4 << 20
