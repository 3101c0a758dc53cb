package service

import (
	"sort"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
)

// FindOverlaps возвращает события, чей интервал [StartsAt, EndsAt) пересекается с [start, end),
// отсортированные по началу. Событие excludeEventID пропускается, чтобы редактируемое
// событие не конфликтовало само с собой. Порядок start < end проверяет вызывающий.
func FindOverlaps(events []*domain.Event, start, end time.Time, excludeEventID *int64) []*domain.Event {
	conflicts := make([]*domain.Event, 0)
	for _, event := range events {
		if excludeEventID != nil && event.ID == *excludeEventID {
			continue
		}
		if event.Overlaps(start, end) {
			conflicts = append(conflicts, event)
		}
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		if conflicts[i].StartsAt.Equal(conflicts[j].StartsAt) {
			return conflicts[i].ID < conflicts[j].ID
		}
		return conflicts[i].StartsAt.Before(conflicts[j].StartsAt)
	})

	return conflicts
}
