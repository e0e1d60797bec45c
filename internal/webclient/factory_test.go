package webclient_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/raysh454/fhscan/internal/logging"
	"github.com/raysh454/fhscan/internal/webclient"
)

// TestNewWebClient_DefaultBackend verifies that empty backend defaults to nethttp
func TestNewWebClient_DefaultBackend(t *testing.T) {
	t.Parallel()
	client, err := webclient.NewWebClient(webclient.Config{}, logging.NopLogger{})
	if err != nil {
		t.Fatalf("Failed to create default client: %v", err)
	}
	defer client.Close()
	if _, ok := client.(*webclient.NetHTTPClient); !ok {
		t.Errorf("expected *NetHTTPClient, got %T", client)
	}
}

func TestNewWebClient_UnknownBackend(t *testing.T) {
	t.Parallel()
	_, err := webclient.NewWebClient(webclient.Config{Client: "carrier-pigeon"}, nil)
	if err == nil || !strings.Contains(err.Error(), "not registered") {
		t.Fatalf("expected not registered error, got %v", err)
	}
}

type stubClient struct{ webclient.WebClient }

func (stubClient) Close() error { return nil }

func TestRegisterBackend_CustomAndFailing(t *testing.T) {
	webclient.RegisterBackend("Stub-Test", func(webclient.Config, logging.Logger) (webclient.WebClient, error) {
		return stubClient{}, nil
	})
	webclient.RegisterBackend("broken-test", func(webclient.Config, logging.Logger) (webclient.WebClient, error) {
		return nil, errors.New("boom")
	})

	if _, err := webclient.NewWebClient(webclient.Config{Client: "stub-test"}, nil); err != nil {
		t.Errorf("custom backend: %v", err)
	}
	if _, err := webclient.NewWebClient(webclient.Config{Client: "broken-test"}, nil); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected constructor error, got %v", err)
	}

	names := strings.Join(webclient.ListBackends(), ",")
	for _, want := range []string{"chromedp", "nethttp", "stub-test"} {
		if !strings.Contains(names, want) {
			t.Errorf("ListBackends missing %s: %s", want, names)
		}
	}
}

// Chrome is often absent in CI; these tests skip rather than fail then.
func TestChromedpClient_RejectsNonGET(t *testing.T) {
	t.Parallel()
	client, err := webclient.NewChromedpClient(webclient.Config{}, nil)
	if err != nil {
		t.Skipf("chromedp unavailable: %v", err)
	}
	defer client.Close()

	if _, err := client.Do(context.Background(), &webclient.Request{Method: "POST", URL: "http://example.com"}); err == nil {
		t.Error("expected POST to be rejected")
	}
}
