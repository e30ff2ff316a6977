package services

import (
	"context"
	"time"

	"github.com/j0ey1992/Carehomedashboard-sub000/internal/config"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// RotaStore defines the persistence operations the lifecycle services need.
// Rotas persist as whole documents: every mutation reads a snapshot, applies
// the change, and replaces the document. Replace compares versions so a stale
// snapshot fails with model.ErrRotaConflict instead of silently winning.
type RotaStore interface {
	GetByWeekStart(ctx context.Context, weekStart string) (*model.Rota, error)
	GetByID(ctx context.Context, id string) (*model.Rota, error)
	Create(ctx context.Context, rota *model.Rota) error
	Replace(ctx context.Context, rota *model.Rota) error
	SoftDelete(ctx context.Context, id, actor string, at time.Time) error
}

// StaffDirectory defines the read-only view of the care team the services
// need. The staff management side owns the records.
type StaffDirectory interface {
	ListStaff(cfg *config.Config) ([]model.Staff, error)
}

// Event describes one completed lifecycle operation for the notification
// sink. Err is set when the operation failed.
type Event struct {
	Operation string
	RotaID    string
	WeekStart string
	Actor     string
	Detail    string
	Err       error
}

// Notifier receives lifecycle events. Delivery is fire-and-forget: a sink
// that fails to deliver never rolls back the mutation it describes.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// notify sends an event when a sink is wired. Services call it after the
// mutation has already been persisted (or has already failed).
func notify(ctx context.Context, sink Notifier, event Event) {
	if sink == nil {
		return
	}
	sink.Notify(ctx, event)
}
