package server

import (
	"github.com/raysh454/fhscan/internal/autofix"
	"github.com/raysh454/fhscan/internal/batch"
)

// ScanRequest is the payload for /scan and /export.
type ScanRequest struct {
	Text         string `json:"text"`
	Jurisdiction string `json:"jurisdiction"`
}

// ScanURLRequest is the payload for /scan/url.
type ScanURLRequest struct {
	URL          string `json:"url"`
	Jurisdiction string `json:"jurisdiction"`
}

// BatchRequest is the payload for /batch and /jobs/batch. Items may be plain
// strings or {id, text} objects.
type BatchRequest struct {
	Items        []batch.Item `json:"items"`
	Jurisdiction string       `json:"jurisdiction"`
}

// AutoFixRequest is the payload for /autofix.
type AutoFixRequest struct {
	Text string `json:"text"`
}

// AutoFixResponse is the rewritten text, its change log and the diff.
type AutoFixResponse struct {
	Text    string                 `json:"text"`
	Changes []autofix.ChangeRecord `json:"changes"`
	Diff    string                 `json:"diff"`
	Chunks  []autofix.Chunk        `json:"chunks,omitempty"`
}

// AlternativesResponse lists compliant replacements for a phrase.
type AlternativesResponse struct {
	Phrase       string   `json:"phrase"`
	Alternatives []string `json:"alternatives"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
