package mongodb

import (
	"context"
	"fmt"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

const activityCollection = "activity_logs"

// InsertActivity appends one audit entry.
func (r *Repository) InsertActivity(ctx context.Context, record models.ActivityRecord) error {
	if _, err := r.db.Collection(activityCollection).InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert activity record: %w", err)
	}
	return nil
}
