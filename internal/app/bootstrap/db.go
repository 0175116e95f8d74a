// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema sets up indexes or schema as needed.
//
// The users collection is keyed by the implicit _id index and has no
// secondary lookup fields, so there is nothing to ensure yet. The hook
// stays wired so index creation has a home when lookups grow.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Debug("schema up to date", zap.String("database", appCfg.MongoDatabase))
	return nil
}
