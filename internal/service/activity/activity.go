package activity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
	"github.com/mamadbah2/stocktrack/pkg/clients/webhook"
)

// Store is the persistence slice the recorder depends on.
type Store interface {
	InsertActivity(ctx context.Context, record models.ActivityRecord) error
}

// Recorder persists user actions and optionally forwards them to an external
// webhook. Recording never fails the surrounding request: problems are logged
// and swallowed.
type Recorder struct {
	store  Store
	client webhook.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewRecorder wires an activity recorder. The webhook client may be nil when
// no forwarding target is configured.
func NewRecorder(store Store, client webhook.Client, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		store:  store,
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Record writes one audit entry for the given caller and action.
func (r *Recorder) Record(ctx context.Context, identity models.Identity, action string) {
	record := models.ActivityRecord{
		User:         identity.UserID,
		Organization: identity.Organization,
		Action:       action,
		At:           r.now().UTC(),
	}

	if err := r.store.InsertActivity(ctx, record); err != nil {
		r.logger.Warn("failed to persist activity record", zap.Error(err), zap.String("action", action))
	}

	if r.client == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	event := webhook.Event{
		User:         record.User,
		Organization: record.Organization,
		Action:       record.Action,
		At:           record.At,
	}
	if err := r.client.Notify(notifyCtx, event); err != nil {
		r.logger.Warn("failed to forward activity event", zap.Error(err), zap.String("action", action))
	}
}
