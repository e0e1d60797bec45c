package demoserver

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strconv"
	"sync"
)

// DemoServer serves sample listing pages whose text can be switched between
// a draft with fair housing problems and a revised, compliant version.
type DemoServer struct {
	cfg      Config
	listings map[string]ListingDefinition
	versions map[string]int // path -> current version
	mu       sync.RWMutex
}

// NewDemoServer creates a new demo server instance.
func NewDemoServer(cfg Config) *DemoServer {
	if cfg.InitialVersion < 1 {
		cfg.InitialVersion = 1
	}
	listings := make(map[string]ListingDefinition)
	versions := make(map[string]int)

	for _, l := range GetAllListings() {
		listings[l.Path] = l
		versions[l.Path] = cfg.InitialVersion
	}

	return &DemoServer{
		cfg:      cfg,
		listings: listings,
		versions: versions,
	}
}

// Handler returns the demo site's routes.
func (s *DemoServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.indexHandler)
	for path := range s.listings {
		mux.HandleFunc("GET "+path, s.listingHandler(path))
	}

	// Control panel for version switching
	mux.HandleFunc("GET /demo/control", s.controlPanelHandler)
	mux.HandleFunc("POST /demo/set-version", s.setVersionHandler)
	mux.HandleFunc("GET /demo/get-versions", s.getVersionsHandler)
	mux.HandleFunc("POST /demo/bump-all", s.bumpAllVersionsHandler)
	mux.HandleFunc("POST /demo/reset", s.resetVersionsHandler)

	// Static file placeholder
	mux.HandleFunc("GET /static/", s.staticHandler)
	return mux
}

// Start starts the demo server.
func (s *DemoServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	fmt.Printf("Demo server starting on http://localhost%s\n", addr)
	fmt.Printf("Control panel at http://localhost%s/demo/control\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// versionFor picks the current version, falling back to the closest lower one.
func versionFor(def ListingDefinition, version int) ListingVersion {
	for v := version; v >= 1; v-- {
		if lv, ok := def.Versions[v]; ok {
			return lv
		}
	}
	return def.Versions[1]
}

func maxVersion(def ListingDefinition) int {
	maxV := 1
	for v := range def.Versions {
		if v > maxV {
			maxV = v
		}
	}
	return maxV
}

func (s *DemoServer) sortedPaths() []string {
	paths := make([]string, 0, len(s.listings))
	for p := range s.listings {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// listingHandler returns a handler for a specific listing path.
func (s *DemoServer) listingHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		def, ok := s.listings[path]
		version := s.versions[path]
		s.mu.RUnlock()

		if !ok {
			http.NotFound(w, r)
			return
		}

		lv := versionFor(def, version)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Listing-Version", strconv.Itoa(version))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(lv.HTML))
	}
}

type listingRow struct {
	Path        string
	Title       string
	Description string
	Current     int
	Label       string
	Versions    []int
}

func (s *DemoServer) rows() []listingRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []listingRow
	for _, path := range s.sortedPaths() {
		def := s.listings[path]
		var versions []int
		for v := range def.Versions {
			versions = append(versions, v)
		}
		slices.Sort(versions)
		rows = append(rows, listingRow{
			Path:        path,
			Title:       def.Title,
			Description: def.Description,
			Current:     s.versions[path],
			Label:       versionFor(def, s.versions[path]).Label,
			Versions:    versions,
		})
	}
	return rows
}

var (
	indexTmpl   = template.Must(template.New("index").Parse(indexHTML))
	controlTmpl = template.Must(template.New("control").Parse(controlPanelHTML))
)

func (s *DemoServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTmpl.Execute(w, s.rows())
}

// staticHandler serves placeholder static files.
func (s *DemoServer) staticHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write([]byte("demo static file: " + r.URL.Path + "\n"))
}

// controlPanelHandler serves the control panel for version management.
func (s *DemoServer) controlPanelHandler(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Listings []listingRow
		Port     int
	}{
		Listings: s.rows(),
		Port:     s.cfg.Port,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = controlTmpl.Execute(w, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// setVersionHandler sets the version for a specific listing.
func (s *DemoServer) setVersionHandler(w http.ResponseWriter, r *http.Request) {
	path := r.FormValue("path")
	version, err := strconv.Atoi(r.FormValue("version"))
	if err != nil || version < 1 {
		http.Error(w, "Invalid version number", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	def, ok := s.listings[path]
	if ok {
		s.versions[path] = min(version, maxVersion(def))
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "Unknown listing", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"path":    path,
		"version": version,
	})
}

// ListingInfo describes one listing for /demo/get-versions.
type ListingInfo struct {
	Path              string `json:"path"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	CurrentVersion    int    `json:"current_version"`
	CurrentLabel      string `json:"current_label"`
	AvailableVersions []int  `json:"available_versions"`
}

// getVersionsHandler returns the current versions of all listings.
func (s *DemoServer) getVersionsHandler(w http.ResponseWriter, r *http.Request) {
	var out []ListingInfo
	for _, row := range s.rows() {
		out = append(out, ListingInfo{
			Path:              row.Path,
			Title:             row.Title,
			Description:       row.Description,
			CurrentVersion:    row.Current,
			CurrentLabel:      row.Label,
			AvailableVersions: row.Versions,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// bumpAllVersionsHandler increments the version of all listings.
func (s *DemoServer) bumpAllVersionsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	for path := range s.versions {
		s.versions[path] = min(s.versions[path]+1, maxVersion(s.listings[path]))
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "All versions bumped",
	})
}

// resetVersionsHandler resets all listings to version 1.
func (s *DemoServer) resetVersionsHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	for path := range s.versions {
		s.versions[path] = 1
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "All versions reset to 1",
	})
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Demo Realty</title></head>
<body>
    <h1>Demo Realty Listings</h1>
    <ul>
    {{range .}}
        <li><a href="{{.Path}}">{{.Title}}</a> <small>({{.Label}})</small></li>
    {{end}}
    </ul>
    <p><a href="/demo/control">Control panel</a></p>
</body>
</html>`

const controlPanelHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Demo Server Control Panel</title>
    <style>
        body { font-family: system-ui, -apple-system, sans-serif; max-width: 1200px; margin: 0 auto; padding: 20px; background: #f5f5f5; }
        h1 { color: #333; border-bottom: 2px solid #007bff; padding-bottom: 10px; }
        .page-card { background: white; border-radius: 8px; padding: 20px; margin: 15px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .page-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 10px; }
        .page-path { font-size: 1.2em; font-weight: bold; color: #007bff; text-decoration: none; }
        .page-desc { color: #666; margin: 5px 0; }
        .version-controls { display: flex; gap: 10px; align-items: center; margin-top: 10px; }
        .version-btn { padding: 8px 16px; border: none; border-radius: 4px; cursor: pointer; font-size: 14px; }
        .version-btn.active { background: #007bff; color: white; }
        .version-btn.inactive { background: #e9ecef; color: #333; }
        .current-version { font-weight: bold; color: #28a745; }
        .global-controls { background: #fff3cd; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
        .global-btn { padding: 10px 20px; margin-right: 10px; border: none; border-radius: 4px; cursor: pointer; font-size: 14px; }
        .info-box { background: #e7f3ff; padding: 15px; border-radius: 8px; margin-bottom: 20px; border-left: 4px solid #007bff; }
    </style>
</head>
<body>
    <h1>Demo Server Control Panel</h1>

    <div class="info-box">
        <strong>How to use:</strong> Switch listings between the draft and the revised text,
        then scan them with <code>fhscan scan --url http://localhost:{{.Port}}/listings/...</code>.
    </div>

    <div class="global-controls">
        <button class="global-btn" onclick="post('/demo/bump-all')">Bump All Versions</button>
        <button class="global-btn" onclick="post('/demo/reset')">Reset All to v1</button>
    </div>

    <h2>Listings</h2>
    {{range .Listings}}
    <div class="page-card" data-path="{{.Path}}">
        <div class="page-header">
            <a href="{{.Path}}" target="_blank" class="page-path">{{.Title}}</a>
            <span class="current-version">Current: v{{.Current}} ({{.Label}})</span>
        </div>
        <div class="page-desc">{{.Description}}</div>
        <div class="version-controls">
            <span>Set version:</span>
            {{$cur := .Current}}{{$path := .Path}}
            {{range .Versions}}
            <button class="version-btn {{if eq $cur .}}active{{else}}inactive{{end}}"
                    onclick="setVersion('{{$path}}', {{.}})">v{{.}}</button>
            {{end}}
        </div>
    </div>
    {{end}}

    <script>
        function setVersion(path, version) {
            fetch('/demo/set-version', {
                method: 'POST',
                headers: {'Content-Type': 'application/x-www-form-urlencoded'},
                body: 'path=' + encodeURIComponent(path) + '&version=' + version
            }).then(() => location.reload());
        }
        function post(url) {
            fetch(url, {method: 'POST'}).then(() => location.reload());
        }
    </script>
</body>
</html>`
