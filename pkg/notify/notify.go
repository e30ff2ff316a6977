// Package notify ships the notification sink the console wires into the
// lifecycle services. Delivery is fire-and-forget; the sink never fails the
// mutation it describes.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/services"
)

// LogSink writes lifecycle events to the structured log. Deployments with a
// real delivery channel swap in their own services.Notifier.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("notify")}
}

func (s *LogSink) Notify(ctx context.Context, event services.Event) {
	fields := []zap.Field{
		zap.String("operation", event.Operation),
		zap.String("rota_id", event.RotaID),
		zap.String("week_start", event.WeekStart),
		zap.String("actor", event.Actor),
	}
	if event.Detail != "" {
		fields = append(fields, zap.String("detail", event.Detail))
	}
	if event.Err != nil {
		fields = append(fields, zap.Error(event.Err))
		s.logger.Warn("Rota operation failed", fields...)
		return
	}
	s.logger.Info("Rota operation completed", fields...)
}
