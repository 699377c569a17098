// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, log
// level, env); AppConfig is everything specific to this application. The
// struct is passed to most lifecycle hooks, so any configuration needed
// during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// Inventory service (the remote HTTP API this app renders)
	BackendBaseURL string        // e.g. "http://127.0.0.1:8081/api"
	BackendTimeout time.Duration // per-call timeout for backend fetches

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: invdash-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Display settings
	SiteName string // Name shown in the sidebar header and page titles
}
