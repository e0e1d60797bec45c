package webclient

import "time"

type Client string

const (
	ClientNetHTTP  Client = "nethttp"
	ClientChromedp Client = "chromedp"
)

// Config selects and tunes a backend.
type Config struct {
	Client Client `yaml:"backend" json:"backend"`
	// Timeout bounds one fetch, including rendering for chromedp.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
	// IdleAfter is how long the network must be quiet before a rendered page
	// counts as loaded (chromedp only).
	IdleAfter time.Duration `yaml:"idle_after" json:"idle_after"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
	// MaxBodyBytes truncates larger bodies; 0 means the default.
	MaxBodyBytes int64 `yaml:"max_body_bytes" json:"max_body_bytes"`
	// Headful shows the browser window (chromedp only).
	Headful bool `yaml:"headful" json:"headful"`
}

const (
	defaultTimeout      = 30 * time.Second
	defaultIdleAfter    = 2 * time.Second
	defaultMaxBodyBytes = 10 << 20
	defaultUserAgent    = "fhscan/1.0 (+listing compliance scanner)"
)

// DefaultConfig returns the nethttp backend with default limits.
func DefaultConfig() Config {
	return Config{
		Client:       ClientNetHTTP,
		Timeout:      defaultTimeout,
		IdleAfter:    defaultIdleAfter,
		UserAgent:    defaultUserAgent,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Client == "" {
		c.Client = d.Client
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.IdleAfter <= 0 {
		c.IdleAfter = d.IdleAfter
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = d.MaxBodyBytes
	}
	return c
}
