package schedule

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kassem10h/Gym-Poject/internal/models"
	"github.com/kassem10h/Gym-Poject/pkg/apperr"
	"github.com/kassem10h/Gym-Poject/pkg/tool"
)

// Overlaps is the half-open interval test: [aStart, aEnd) and [bStart, bEnd)
// collide iff each starts before the other ends. Touching boundaries
// (aEnd == bStart) do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd datatypes.Time) bool {
	return aStart < bEnd && bStart < aEnd
}

// rejectConflict fails with a conflict error when the trainer already has an
// active session on the date whose window overlaps [start, end). excludeID
// skips the session being updated. Policy: the check spans all class types, so
// a trainer cannot run two different classes at overlapping times either.
func (s *Service) rejectConflict(ctx context.Context, tx *gorm.DB, trainerID string, date datatypes.Date, start, end datatypes.Time, excludeID string) error {
	q := tx.WithContext(ctx).
		Preload("ClassType").
		Where("trainer_id = ? AND date = ? AND is_active = ?", trainerID, date, true).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var existing models.Session
	err := q.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check session overlap: %w", err)
	}

	className := ""
	if existing.ClassType != nil {
		className = existing.ClassType.Name
	}
	return apperr.Conflict(
		"you already have a %q session scheduled from %s to %s on this date; you cannot teach two classes at the same time",
		className, tool.FormatClock(existing.StartTime), tool.FormatClock(existing.EndTime),
	).WithDetails(map[string]any{
		"session_id": existing.ID,
		"class_type": className,
		"date":       tool.FormatDate(existing.Date),
		"start_time": tool.FormatClock(existing.StartTime),
		"end_time":   tool.FormatClock(existing.EndTime),
	})
}
