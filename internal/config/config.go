package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Hardcoded vendor API hosts. The deployment platform hint picks between
// them; ZONOS_DEFAULT_URL overrides the fallback only.
const (
	vercelZonosAPIURL     = "https://route.js.zonos.com"
	cloudflareZonosAPIURL = "https://route.elements.zonos.com"
	defaultZonosAPIURL    = "https://route.elements.zonos.com"
)

// Config holds runtime configuration parsed from environment variables.
// It is constructed once in main and injected; nothing reads the
// environment ambiently.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	DBConnString    string        `envconfig:"DB_DSN"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// CredentialToken authenticates requests to the vendor cart API. It is
	// server-only and must never be echoed to clients.
	CredentialToken    string `envconfig:"CUSTOMER_GRAPH_TOKEN"`
	ZonosDefaultURL    string `envconfig:"ZONOS_DEFAULT_URL"`
	RevalidationSecret string `envconfig:"ZONOS_REVALIDATION_SECRET"`
	DeploymentPlatform string `envconfig:"DEPLOYMENT_PLATFORM"`

	StoreID        string `envconfig:"ZONOS_STORE_ID"`
	ZonosScriptURL string `envconfig:"ZONOS_CDN_URL" default:"https://cdn.jsdelivr.net/npm/@zonos/elements/dist/scripts/loadZonos.js"`

	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	CartCookieTTL  time.Duration `envconfig:"CART_COOKIE_TTL" default:"720h"`
}

// Load parses the environment. Callers that talk to the vendor API must
// also run Validate; the migrate and seed tools only need the database
// settings and skip it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations that would fail at request time.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CredentialToken) == "" {
		return fmt.Errorf("CUSTOMER_GRAPH_TOKEN is required")
	}
	if c.ZonosDefaultURL != "" {
		if err := validateBaseURL(c.ZonosDefaultURL); err != nil {
			return fmt.Errorf("ZONOS_DEFAULT_URL: %w", err)
		}
	}
	switch strings.ToLower(c.DeploymentPlatform) {
	case "", "vercel", "cloudflare":
	default:
		return fmt.Errorf("DEPLOYMENT_PLATFORM must be one of vercel, cloudflare; got %q", c.DeploymentPlatform)
	}
	return nil
}

// ZonosAPIURL resolves the vendor base URL for the configured platform.
func (c Config) ZonosAPIURL() string {
	switch strings.ToLower(c.DeploymentPlatform) {
	case "vercel":
		return vercelZonosAPIURL
	case "cloudflare":
		return cloudflareZonosAPIURL
	}
	if c.ZonosDefaultURL != "" {
		return c.ZonosDefaultURL
	}
	return defaultZonosAPIURL
}

func validateBaseURL(raw string) error {
	if strings.HasSuffix(raw, "/") {
		return fmt.Errorf("must not have a trailing slash")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}
