package app

import (
	"context"
	"errors"
	"time"

	"github.com/raysh454/fhscan/internal/config"
	"github.com/raysh454/fhscan/internal/logging"
)

// Application is the global runtime state container.
// It holds config, the logger and the orchestrator shared by the CLI and the
// API server. Pass Application into modules that need access to the global
// state rather than using package-level variables.
type Application struct {
	Config *config.Config
	Logger logging.Logger
	Orch   *Orchestrator
}

// NewApplication builds the components described by cfg and an orchestrator over them.
func NewApplication(cfg *config.Config, logger logging.Logger) (*Application, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger = logging.OrNop(logger)

	comps, err := NewComponents(cfg, logger)
	if err != nil {
		return nil, err
	}
	orch, err := NewOrchestrator(cfg, comps, logger)
	if err != nil {
		_ = comps.Close()
		return nil, err
	}
	return &Application{Config: cfg, Logger: logger, Orch: orch}, nil
}

// Shutdown cancels running jobs and releases resources, giving up when ctx
// or a 15 second bound expires first.
func (a *Application) Shutdown(ctx context.Context) error {
	if a == nil {
		return errors.New("application is nil")
	}
	a.Logger.Info("application shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Orch.Close() }()

	select {
	case err := <-done:
		if err != nil {
			a.Logger.Warn("orchestrator shutdown returned error", logging.Field{Key: "error", Value: err})
		}
		return err
	case <-shutdownCtx.Done():
		return shutdownCtx.Err()
	}
}
