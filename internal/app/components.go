package app

import (
	"fmt"

	"github.com/raysh454/fhscan/internal/autofix"
	"github.com/raysh454/fhscan/internal/batch"
	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/config"
	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/report"
	"github.com/raysh454/fhscan/internal/scanner"
	"github.com/raysh454/fhscan/internal/store"
	"github.com/raysh454/fhscan/internal/webclient"
)

// Components are the services an Orchestrator drives. Store and WebClient
// are optional: a nil Store disables history, a nil WebClient disables URL scans.
type Components struct {
	Scanner   *scanner.Scanner
	Fixer     *autofix.Fixer
	Exporter  *report.Exporter
	Runner    *batch.Runner
	WebClient webclient.WebClient
	Store     *store.Store
}

// NewComponents builds every component from cfg.
func NewComponents(cfg *config.Config, logger logging.Logger) (*Components, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	cat, err := loadCatalog(cfg.Scanner.OverlayFile)
	if err != nil {
		return nil, err
	}
	sc := scanner.New(cat, logger)

	wc, err := webclient.NewWebClient(cfg.WebClient, logger)
	if err != nil {
		return nil, fmt.Errorf("new webclient: %w", err)
	}

	var st *store.Store
	if cfg.Storage.HistoryEnabled() {
		st, err = store.Open(cfg.StorageRoot(), logger)
		if err != nil {
			_ = wc.Close()
			return nil, fmt.Errorf("open history: %w", err)
		}
	}

	return &Components{
		Scanner:   sc,
		Fixer:     autofix.New(cat.Alternatives),
		Exporter:  report.NewExporter(),
		Runner:    batch.NewRunner(sc, cfg.Batch.MaxConcurrency, logger),
		WebClient: wc,
		Store:     st,
	}, nil
}

func loadCatalog(overlayPath string) (*catalog.Catalog, error) {
	if overlayPath == "" {
		return catalog.Default()
	}
	ov, err := catalog.LoadOverlayFile(config.ExpandHome(overlayPath))
	if err != nil {
		return nil, fmt.Errorf("load overlay: %w", err)
	}
	cat, err := catalog.Load(catalog.Options{Overlay: ov})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// Close releases the web client and the history store.
func (c *Components) Close() error {
	var firstErr error
	if c.WebClient != nil {
		if err := c.WebClient.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close webclient: %w", err)
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close store: %w", err)
		}
	}
	return firstErr
}
