// internal/app/bootstrap/backend.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/app/system/timeouts"
	"github.com/kestrelworks/invdash/internal/app/system/viewcache"
)

// ConnectBackend constructs the inventory service client and the view
// snapshot cache. It fills the role a database connection would in other
// WAFFLE apps: invdash keeps no store of its own, so the remote API client
// is its entire data layer.
//
// The startup ping is advisory. The inventory service may come up after
// this app does, so an unreachable backend logs a warning and startup
// continues; handlers surface reachability to users per request.
func ConnectBackend(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client, err := imsapi.New(appCfg.BackendBaseURL, appCfg.BackendTimeout, logger)
	if err != nil {
		logger.Error("inventory service client init failed", zap.Error(err))
		return Deps{}, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		logger.Warn("inventory service unreachable at startup",
			zap.String("base_url", client.BaseURL()),
			zap.Error(err))
	} else {
		logger.Info("inventory service reachable",
			zap.String("base_url", client.BaseURL()))
	}

	return Deps{
		API:   client,
		Views: viewcache.New(),
	}, nil
}

// EnsureSchema is a no-op: there is no local schema. The inventory
// service owns all persistent data.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
