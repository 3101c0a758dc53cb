package domain

import "time"

type Event struct {
	ID          int64
	Title       string
	OrganizerID int64
	StartsAt    time.Time
	EndsAt      time.Time
	TeamEvent   bool
	MinTeamSize int
	MaxTeamSize int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Overlaps проверяет пересечение полуоткрытых интервалов [StartsAt, EndsAt) и [start, end).
// Касание границ пересечением не считается.
func (e *Event) Overlaps(start, end time.Time) bool {
	return e.StartsAt.Before(end) && start.Before(e.EndsAt)
}

type ScheduleCheck struct {
	OK        bool
	Conflicts []*Event
}
