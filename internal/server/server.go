package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/raysh454/fhscan/internal/app"
	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/report"
	"github.com/raysh454/fhscan/internal/store"
)

// loggedBodyBytes caps how much of a request body is logged.
const loggedBodyBytes = 512

// Server is the HTTP + WebSocket API surface for fhscan.
type Server struct {
	cfg          Config
	orchestrator *app.Orchestrator
	router       chi.Router
	upgrader     websocket.Upgrader
	logger       logging.Logger
}

// NewServer creates a Server over an orchestrator it does not own.
func NewServer(cfg Config, orch *app.Orchestrator) (*Server, error) {
	if orch == nil {
		return nil, errors.New("server: orchestrator is required")
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("server")
	}

	r := chi.NewRouter()
	s := &Server{
		cfg:          cfg,
		orchestrator: orch,
		router:       r,
		logger:       logger.With(logging.Field{Key: "component", Value: "server"}),
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin)
		},
	}

	s.routes()
	return s, nil
}

// Orchestrator returns the underlying orchestrator for advanced use (tests, etc.).
func (s *Server) Orchestrator() *app.Orchestrator {
	return s.orchestrator
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/scan", s.optionsHandler("POST"))
	r.Options("/scan/url", s.optionsHandler("POST"))
	r.Options("/batch", s.optionsHandler("POST"))
	r.Options("/autofix", s.optionsHandler("POST"))
	r.Options("/export", s.optionsHandler("POST"))
	r.Options("/jobs", s.optionsHandler("GET"))
	r.Options("/jobs/batch", s.optionsHandler("POST"))
	r.Options("/jobs/{jobID}", s.optionsHandler("GET, DELETE"))
	r.Options("/scans/{id}", s.optionsHandler("GET, DELETE"))

	r.Get("/health", s.handleHealth)

	// Scanning
	r.Post("/scan", s.handleScan)
	r.Post("/scan/url", s.handleScanURL)
	r.Post("/batch", s.handleBatch)
	r.Post("/autofix", s.handleAutoFix)
	r.Post("/export", s.handleExport)
	r.Get("/formats", s.handleListFormats)

	// Reference data
	r.Get("/jurisdictions", s.handleListJurisdictions)
	r.Get("/jurisdictions/{code}/protections", s.handleProtections)
	r.Get("/alternatives", s.handleAlternatives)

	// Jobs over REST
	r.Post("/jobs/batch", s.handleStartBatchJob)
	r.Get("/jobs", s.handleListJobs)
	r.Get("/jobs/{jobID}", s.handleGetJob)
	r.Delete("/jobs/{jobID}", s.handleCancelJob)

	// WebSockets for job progress
	r.Get("/ws/jobs/{jobID}", s.handleJobWS)

	// History
	r.Get("/scans", s.handleListScans)
	r.Get("/scans/{id}", s.handleGetScan)
	r.Delete("/scans/{id}", s.handleDeleteScan)
}

func (s *Server) originAllowed(origin string) bool {
	return len(s.cfg.AllowedOrigins) == 0 || slices.Contains(s.cfg.AllowedOrigins, origin)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.cfg.AllowedOrigins) == 0 {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin := r.Header.Get("Origin"); origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	if r.Body != nil && (r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
		if bodyBytes, err := io.ReadAll(r.Body); err == nil {
			logged := bodyBytes
			if len(logged) > loggedBodyBytes {
				logged = logged[:loggedBodyBytes]
			}
			fields = append(fields, logging.Field{Key: "body", Value: string(logged)})
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		} else {
			s.logger.Warn("reading request body", logging.Field{Key: "error", Value: err})
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			} else {
				writeError(w, http.StatusBadRequest, "reading request body")
			}
			return
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// statusFor maps orchestrator errors onto HTTP statuses.
func statusFor(err error) int {
	var (
		unsupported *report.UnsupportedFormatError
		fetchErr    *app.FetchError
	)
	switch {
	case errors.Is(err, app.ErrJobNotFound), errors.Is(err, store.ErrScanNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrInvalidURL), errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrTooManyItems):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, app.ErrNoListingText):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.Is(err, app.ErrHistoryDisabled), errors.Is(err, app.ErrURLScanDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(op, logging.Field{Key: "error", Value: err})
	} else {
		s.logger.Warn(op, logging.Field{Key: "error", Value: err})
	}
	writeError(w, status, err.Error())
}

func queryLimit(r *http.Request) int {
	if ls := r.URL.Query().Get("limit"); ls != "" {
		if v, err := strconv.Atoi(ls); err == nil && v > 0 {
			return v
		}
	}
	return 0
}

// --- HTTP handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Scanning

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var body ScanRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.orchestrator.Scan(r.Context(), body.Text, body.Jurisdiction, "api")
	if err != nil {
		s.fail(w, "scanning text", err)
		return
	}
	s.logger.Info("scanned text",
		logging.Field{Key: "jurisdiction", Value: res.Jurisdiction},
		logging.Field{Key: "violations", Value: res.Count})
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleScanURL(w http.ResponseWriter, r *http.Request) {
	var body ScanURLRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(body.URL) == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	res, err := s.orchestrator.ScanURL(r.Context(), body.URL, body.Jurisdiction)
	if err != nil {
		s.fail(w, "scanning url", err)
		return
	}
	s.logger.Info("scanned url",
		logging.Field{Key: "url", Value: res.URL},
		logging.Field{Key: "violations", Value: res.Count})
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := s.orchestrator.Batch(r.Context(), body.Items, body.Jurisdiction)
	if err != nil {
		s.fail(w, "running batch", err)
		return
	}
	s.logger.Info("ran batch", logging.Field{Key: "count", Value: len(results)})
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleAutoFix(w http.ResponseWriter, r *http.Request) {
	var body AutoFixRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := s.orchestrator.AutoFix(body.Text)
	s.logger.Info("auto-fixed text", logging.Field{Key: "changes", Value: len(res.Changes)})
	writeJSON(w, http.StatusOK, AutoFixResponse{
		Text:    res.Text,
		Changes: res.Changes,
		Diff:    res.Patch,
		Chunks:  res.Chunks,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(report.FormatJSON)
	}

	var body ScanRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := s.orchestrator.Export(body.Text, body.Jurisdiction, format)
	if err != nil {
		s.fail(w, "exporting report", err)
		return
	}
	s.logger.Info("exported report", logging.Field{Key: "format", Value: out.Format.Name})
	w.Header().Set("Content-Type", out.Format.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="fhscan-report%s"`, out.Format.Extension))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out.Body)
}

func (s *Server) handleListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.Formats())
}

// Reference data

func (s *Server) handleListJurisdictions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.orchestrator.Jurisdictions())
}

func (s *Server) handleProtections(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	writeJSON(w, http.StatusOK, s.orchestrator.Protections(code))
}

func (s *Server) handleAlternatives(w http.ResponseWriter, r *http.Request) {
	phrase := strings.TrimSpace(r.URL.Query().Get("phrase"))
	if phrase == "" {
		writeError(w, http.StatusBadRequest, "missing phrase query parameter")
		return
	}
	alts := s.orchestrator.Alternatives(phrase)
	if alts == nil {
		writeError(w, http.StatusNotFound, "no alternatives for phrase")
		return
	}
	writeJSON(w, http.StatusOK, AlternativesResponse{Phrase: phrase, Alternatives: alts})
}

// Jobs (REST)

func (s *Server) handleStartBatchJob(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.orchestrator.StartBatchJob(body.Items, body.Jurisdiction)
	if err != nil {
		s.fail(w, "starting batch job", err)
		return
	}
	s.logger.Info("started batch job", logging.Field{Key: "job_id", Value: job.ID}, logging.Field{Key: "items", Value: job.Total})
	writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, err := s.orchestrator.GetJob(jobID)
	if err != nil {
		s.fail(w, "getting job", err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleCancelJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if err := s.orchestrator.CancelJob(jobID); err != nil {
		s.fail(w, "canceling job", err)
		return
	}
	s.logger.Info("canceled job", logging.Field{Key: "job_id", Value: jobID})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := s.orchestrator.ListJobs()
	s.logger.Info("listed jobs", logging.Field{Key: "count", Value: len(jobs)})
	writeJSON(w, http.StatusOK, jobs)
}

// WebSockets

// handleJobWS streams a job's events, then its final state. The job keeps
// running if the client goes away.
func (s *Server) handleJobWS(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job, err := s.orchestrator.GetJob(jobID)
	if err != nil {
		s.fail(w, "watching job", err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err})
		return
	}
	defer conn.Close()

	job.Results = nil
	if err := conn.WriteJSON(job); err != nil {
		return
	}

	for ev := range job.Events {
		if err := conn.WriteJSON(ev); err != nil {
			s.logger.Debug("websocket client went away", logging.Field{Key: "job_id", Value: jobID})
			return
		}
	}

	final, err := s.orchestrator.GetJob(jobID)
	if err != nil {
		return
	}
	_ = conn.WriteJSON(final)
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "job finished"))
}

// History

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	recs, err := s.orchestrator.History(r.Context(), queryLimit(r))
	if err != nil {
		s.fail(w, "listing scans", err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	rec, err := s.orchestrator.GetScan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, "getting scan", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteScan(w http.ResponseWriter, r *http.Request) {
	if err := s.orchestrator.DeleteScan(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, "deleting scan", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
