package memory

import (
	"context"
	"sort"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
)

type eventRepository struct {
	st *state
}

// LockOrganizer ничего не делает: Store уже сериализует транзакции
func (r *eventRepository) LockOrganizer(ctx context.Context, organizerID int64) error {
	return ctx.Err()
}

func (r *eventRepository) FindByOrganizer(ctx context.Context, organizerID int64, excludeEventID *int64) ([]*domain.Event, error) {
	var events []*domain.Event
	for _, event := range r.st.events {
		if event.OrganizerID != organizerID {
			continue
		}
		if excludeEventID != nil && event.ID == *excludeEventID {
			continue
		}
		e := event
		events = append(events, &e)
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].StartsAt.Equal(events[j].StartsAt) {
			return events[i].ID < events[j].ID
		}
		return events[i].StartsAt.Before(events[j].StartsAt)
	})

	return events, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := r.st.checkUser(event.OrganizerID); err != nil {
		return err
	}

	r.st.nextEventID++
	event.ID = r.st.nextEventID
	event.CreatedAt = time.Now()
	event.UpdatedAt = nil
	r.st.events[event.ID] = *event
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	stored, ok := r.st.events[event.ID]
	if !ok {
		return repository.ErrNotFound
	}

	now := time.Now()
	event.OrganizerID = stored.OrganizerID
	event.CreatedAt = stored.CreatedAt
	event.UpdatedAt = &now
	r.st.events[event.ID] = *event
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	event, ok := r.st.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &event, nil
}

func (r *eventRepository) GetByIDForShare(ctx context.Context, id int64) (*domain.Event, error) {
	return r.GetByID(ctx, id)
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return r.GetByID(ctx, id)
}

// Delete каскадно удаляет команды и участников, как ON DELETE CASCADE в схеме
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := r.st.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.st.events, id)

	for teamID, team := range r.st.teams {
		if team.EventID == id {
			r.st.deleteTeam(teamID)
		}
	}
	return nil
}
