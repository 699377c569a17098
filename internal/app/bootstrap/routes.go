// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	dashboardfeature "github.com/kestrelworks/invdash/internal/app/features/dashboard"
	errorsfeature "github.com/kestrelworks/invdash/internal/app/features/errors"
	healthfeature "github.com/kestrelworks/invdash/internal/app/features/health"
	homefeature "github.com/kestrelworks/invdash/internal/app/features/home"
	loginfeature "github.com/kestrelworks/invdash/internal/app/features/login"
	logoutfeature "github.com/kestrelworks/invdash/internal/app/features/logout"
	productsfeature "github.com/kestrelworks/invdash/internal/app/features/products"
	"github.com/kestrelworks/invdash/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend connections, and any
// Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the inventory service client and view cache bundled in Deps
//   - logger: the fully configured zap.Logger for this app
//
// invdash initializes the template engine, applies session and CSRF
// middleware, and mounts feature routers: home, login, logout, dashboard,
// products, error pages, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for all form posts. Tokens are injected into view
	// data and echoed back by forms and HTMX requests (X-CSRF-Token).
	r.Use(csrf.Protect(
		[]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators.
	// Reports reachability of the inventory service.
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Root: routes to /dashboard or /login depending on session state.
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.API, deps.Views, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, deps.Views, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Dashboard: KPIs, charts, and the filterable operations table
	dashboardHandler := dashboardfeature.NewHandler(deps.API, deps.Views, sessionMgr, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Product stock listing
	productsHandler := productsfeature.NewHandler(deps.API, sessionMgr, errLog, logger)
	r.Mount("/products", productsfeature.Routes(productsHandler, sessionMgr))

	return r, nil
}
