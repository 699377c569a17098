// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/domain/models"
)

// appConfigKeys defines the configuration keys for invdash.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: backend_base_url, session_name, etc.
//   - Environment variables: INVDASH_BACKEND_BASE_URL, INVDASH_SESSION_NAME, etc.
//   - Command-line flags: --backend_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend_base_url", Default: "http://127.0.0.1:8081/api", Desc: "Base URL of the inventory service API"},
	{Name: "backend_timeout", Default: "10s", Desc: "Per-call timeout for inventory service requests (e.g., 5s, 30s)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "invdash-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the sidebar and page titles"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "INVDASH", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BackendBaseURL: appValues.String("backend_base_url"),
		BackendTimeout: appValues.Duration("backend_timeout", 10*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// invdash validates the backend URL up front so a misconfigured deploy
// fails at startup instead of on the first user's login.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateBackendURL(appCfg.BackendBaseURL); err != nil {
		logger.Error("invalid backend base URL", zap.Error(err))
		return err
	}
	if appCfg.BackendTimeout <= 0 {
		return fmt.Errorf("backend_timeout must be positive, got %s", appCfg.BackendTimeout)
	}
	return nil
}

func validateBackendURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("backend_base_url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend_base_url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("backend_base_url %q has no host", raw)
	}
	return nil
}
