// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/resources"
	"github.com/kestrelworks/invdash/internal/app/system/timeouts"
	"github.com/kestrelworks/invdash/internal/app/system/viewdata"
)

// Startup runs one-time application initialization after backend clients
// are connected, but before the HTTP handler is built. It is the place to
// load shared resources (like templates), warm caches, or perform any
// app-wide setup that depends on config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)
	timeouts.Configure(timeouts.Config{Medium: appCfg.BackendTimeout})
	return nil
}
