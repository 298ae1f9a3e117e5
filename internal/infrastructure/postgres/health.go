package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/cretaceous-api/pkg/logger"
)

// Pinger lo implementa *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WatchHealth hace ping a la base de datos cada interval hasta que ctx se cancele.
// Registra la pérdida de conexión una sola vez y la recuperación cuando ocurre.
func WatchHealth(ctx context.Context, db Pinger, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			err := db.Ping(pingCtx)
			cancel()
			switch {
			case err != nil && healthy:
				healthy = false
				log.Warn().Err(err).Msg("conexión a PostgreSQL perdida")
			case err == nil && !healthy:
				healthy = true
				log.Info().Msg("conexión a PostgreSQL restablecida")
			}
		}
	}
}
