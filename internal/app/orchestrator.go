package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/raysh454/fhscan/internal/autofix"
	"github.com/raysh454/fhscan/internal/batch"
	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/config"
	"github.com/raysh454/fhscan/internal/extract"
	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/report"
	"github.com/raysh454/fhscan/internal/scanner"
	"github.com/raysh454/fhscan/internal/store"
	"github.com/raysh454/fhscan/internal/webclient"
)

var (
	// ErrHistoryDisabled is returned by history lookups when no store is configured.
	ErrHistoryDisabled = errors.New("scan history is disabled")
	// ErrURLScanDisabled is returned by ScanURL when no web client is configured.
	ErrURLScanDisabled = errors.New("url scanning is disabled")
	// ErrNoListingText means a fetched page had no text to scan.
	ErrNoListingText = errors.New("no listing text found on page")
	// ErrTooManyItems is returned when a batch exceeds batch.max_items.
	ErrTooManyItems = errors.New("too many batch items")
	// ErrInvalidURL wraps URL normalization failures.
	ErrInvalidURL = errors.New("invalid listing url")
)

// FetchError reports a listing page that could not be fetched or did not
// answer 2xx. StatusCode is 0 when the request itself failed.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DefaultJobRetention is how long finished jobs stay queryable.
const DefaultJobRetention = time.Hour

// ScanResult is a quick scan plus the history record it was saved as.
type ScanResult struct {
	scanner.Summary
	RecordID string `json:"record_id,omitempty"`
}

// URLScanResult is a ScanResult for a fetched listing page.
type URLScanResult struct {
	ScanResult
	URL     string          `json:"url"`
	Listing extract.Listing `json:"listing"`
}

// ExportResult is a rendered report and its format metadata.
type ExportResult struct {
	Body   string
	Format report.FormatInfo
}

type Orchestrator struct {
	cfg    *config.Config
	comps  *Components
	logger logging.Logger

	jobRetention time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	jobsMu     sync.Mutex
	jobs       map[string]*Job
	jobCancels map[string]context.CancelFunc
}

// NewOrchestrator ties together config, components and logger. The
// orchestrator owns comps and closes them in Close.
func NewOrchestrator(cfg *config.Config, comps *Components, logger logging.Logger) (*Orchestrator, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if comps == nil || comps.Scanner == nil {
		return nil, errors.New("orchestrator: scanner is required")
	}
	if comps.Fixer == nil {
		comps.Fixer = autofix.New(comps.Scanner.Catalog().Alternatives)
	}
	if comps.Exporter == nil {
		comps.Exporter = report.NewExporter()
	}
	if comps.Runner == nil {
		comps.Runner = batch.NewRunner(comps.Scanner, cfg.Batch.MaxConcurrency, logger)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator{
		cfg:          cfg,
		comps:        comps,
		logger:       logging.OrNop(logger).With(logging.Field{Key: "component", Value: "orchestrator"}),
		jobRetention: DefaultJobRetention,
		ctx:          ctx,
		cancel:       cancel,
		jobs:         make(map[string]*Job),
		jobCancels:   make(map[string]context.CancelFunc),
	}, nil
}

// SetJobRetention changes how long finished jobs are kept; <= 0 keeps them forever.
func (o *Orchestrator) SetJobRetention(d time.Duration) {
	o.jobsMu.Lock()
	defer o.jobsMu.Unlock()
	o.jobRetention = d
}

// Config returns the active configuration.
func (o *Orchestrator) Config() *config.Config {
	return o.cfg
}

// jurisdiction applies the configured default to an empty request.
func (o *Orchestrator) jurisdiction(j string) string {
	if strings.TrimSpace(j) == "" {
		return o.cfg.Scanner.DefaultJurisdiction
	}
	return j
}

func (o *Orchestrator) checkBatchSize(n int) error {
	if limit := o.cfg.Batch.MaxItems; limit > 0 && n > limit {
		return fmt.Errorf("%w: %d items, limit is %d", ErrTooManyItems, n, limit)
	}
	return nil
}

// Scan quick-scans text and records it in history when enabled. A failure
// to record is logged and does not fail the scan.
func (o *Orchestrator) Scan(ctx context.Context, text, jurisdiction, source string) (ScanResult, error) {
	sum := o.comps.Scanner.QuickScan(text, o.jurisdiction(jurisdiction))
	res := ScanResult{Summary: sum}

	if o.comps.Store == nil || strings.TrimSpace(text) == "" {
		return res, nil
	}
	if source == "" {
		source = "text"
	}
	rec, err := o.comps.Store.Save(ctx, source, text, sum)
	if err != nil {
		o.logger.Warn("failed to record scan",
			logging.Field{Key: "source", Value: source},
			logging.Field{Key: "error", Value: err})
		return res, nil
	}
	res.RecordID = rec.ID
	return res, nil
}

// ScanURL fetches a listing page, extracts its text and scans it.
func (o *Orchestrator) ScanURL(ctx context.Context, rawURL, jurisdiction string) (URLScanResult, error) {
	if o.comps.WebClient == nil {
		return URLScanResult{}, ErrURLScanDisabled
	}
	u, err := webclient.NormalizeURL(rawURL)
	if err != nil {
		return URLScanResult{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	resp, err := o.comps.WebClient.Get(ctx, u)
	if err != nil {
		return URLScanResult{}, &FetchError{URL: u, Err: err}
	}
	if !resp.OK() {
		return URLScanResult{}, &FetchError{URL: u, StatusCode: resp.StatusCode}
	}

	listing, err := extract.FromHTML(resp.Body)
	if err != nil {
		return URLScanResult{}, err
	}
	text := listing.Text()
	if strings.TrimSpace(text) == "" {
		return URLScanResult{}, fmt.Errorf("%s: %w", u, ErrNoListingText)
	}

	o.logger.Debug("listing extracted",
		logging.Field{Key: "url", Value: u},
		logging.Field{Key: "source", Value: listing.Source},
		logging.Field{Key: "chars", Value: len(text)})

	res, err := o.Scan(ctx, text, jurisdiction, u)
	if err != nil {
		return URLScanResult{}, err
	}
	return URLScanResult{ScanResult: res, URL: u, Listing: listing}, nil
}

// Batch quick-scans items synchronously, in input order.
func (o *Orchestrator) Batch(ctx context.Context, items []batch.Item, jurisdiction string) ([]scanner.Summary, error) {
	if err := o.checkBatchSize(len(items)); err != nil {
		return nil, err
	}
	return o.comps.Runner.Run(ctx, items, o.jurisdiction(jurisdiction), nil)
}

// AutoFix rewrites known problem phrases.
func (o *Orchestrator) AutoFix(text string) autofix.Result {
	return o.comps.Fixer.Fix(text)
}

// Export scans text and renders the violations in format.
func (o *Orchestrator) Export(text, jurisdiction, format string) (ExportResult, error) {
	f, err := report.ParseFormat(format)
	if err != nil {
		return ExportResult{}, err
	}
	vs := o.comps.Scanner.Scan(text, o.jurisdiction(jurisdiction))
	body, err := o.comps.Exporter.Export(vs, string(f))
	if err != nil {
		return ExportResult{}, err
	}
	info, _ := report.GetFormatInfo(f)
	return ExportResult{Body: body, Format: info}, nil
}

// Protections lists the classes protected in jurisdiction.
func (o *Orchestrator) Protections(jurisdiction string) []catalog.ProtectedClass {
	return o.comps.Scanner.StateProtections(jurisdiction)
}

// Jurisdictions lists every known jurisdiction profile.
func (o *Orchestrator) Jurisdictions() []catalog.JurisdictionProfile {
	return o.comps.Scanner.Catalog().Registry.Jurisdictions()
}

// Alternatives returns compliant replacements for phrase, or nil.
func (o *Orchestrator) Alternatives(phrase string) []string {
	return o.comps.Scanner.Catalog().Alternatives.Lookup(phrase)
}

// History lists recent scans, newest first.
func (o *Orchestrator) History(ctx context.Context, limit int) ([]*store.Record, error) {
	if o.comps.Store == nil {
		return nil, ErrHistoryDisabled
	}
	return o.comps.Store.List(ctx, limit)
}

// GetScan returns one history record.
func (o *Orchestrator) GetScan(ctx context.Context, id string) (*store.Record, error) {
	if o.comps.Store == nil {
		return nil, ErrHistoryDisabled
	}
	return o.comps.Store.Get(ctx, id)
}

// DeleteScan removes one history record.
func (o *Orchestrator) DeleteScan(ctx context.Context, id string) error {
	if o.comps.Store == nil {
		return ErrHistoryDisabled
	}
	return o.comps.Store.Delete(ctx, id)
}

// Close cancels running jobs, waits for them and closes the components.
func (o *Orchestrator) Close() error {
	o.cancel()
	o.wg.Wait()
	return o.comps.Close()
}
