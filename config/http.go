package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://auth.campushq.example").
	// Used for generating absolute URLs in redirects and handoffs.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies. A leading dot shares
	// the cookie across tenant subdomains. Leave empty to use the request
	// domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}
