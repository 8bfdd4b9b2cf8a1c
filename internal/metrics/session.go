package metrics

import (
	"github.com/linskybing/clubhub/internal/session"
	"go.uber.org/zap"
)

// ObserveSessions counts every session change published through p until
// the returned cancel is called.
func ObserveSessions(p session.Provider) (cancel func()) {
	return p.Subscribe(func(e session.Event) {
		SessionEvents.WithLabelValues(string(e.Kind)).Inc()
		zap.L().Debug("session event", zap.String("kind", string(e.Kind)), zap.String("user_id", e.UserID.String()))
	})
}
