// Package memory - хранилище в памяти с той же транзакционной семантикой,
// что и postgres: всё или ничего, последовательное выполнение транзакций.
// Внешние ключи на users проверяются, только если Store создан через NewStoreWithUsers.
package memory

import (
	"context"
	"sync"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
)

type memberKey struct {
	teamID int64
	userID int64
}

type state struct {
	events  map[int64]domain.Event
	teams   map[int64]domain.Team
	members map[memberKey]domain.TeamMember

	nextEventID int64
	nextTeamID  int64

	// users не меняется после создания Store, копии состояния делят её
	users map[int64]struct{}
}

func newState() *state {
	return &state{
		events:  make(map[int64]domain.Event),
		teams:   make(map[int64]domain.Team),
		members: make(map[memberKey]domain.TeamMember),
	}
}

func (s *state) clone() *state {
	c := &state{
		events:      make(map[int64]domain.Event, len(s.events)),
		teams:       make(map[int64]domain.Team, len(s.teams)),
		members:     make(map[memberKey]domain.TeamMember, len(s.members)),
		nextEventID: s.nextEventID,
		nextTeamID:  s.nextTeamID,
		users:       s.users,
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	for k, v := range s.teams {
		c.teams[k] = v
	}
	for k, v := range s.members {
		c.members[k] = v
	}
	return c
}

// Store выполняет транзакции строго по одной. Изменения применяются к копии
// состояния и становятся видимыми только после успешного завершения fn.
type Store struct {
	mu   sync.Mutex
	data *state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

// NewStoreWithUsers создает хранилище, которое, как схема postgres, отклоняет
// неизвестных организаторов, лидеров и участников ошибкой repository.ErrNotFound.
func NewStoreWithUsers(userIDs ...int64) *Store {
	data := newState()
	data.users = make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		data.users[id] = struct{}{}
	}
	return &Store{data: data}
}

// checkUser повторяет внешний ключ на users
func (s *state) checkUser(userID int64) error {
	if s.users == nil {
		return nil
	}
	if _, ok := s.users[userID]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.data.clone()
	repos := repository.Repositories{
		Events: &eventRepository{st: work},
		Teams:  &teamRepository{st: work},
		Stats:  &statsRepository{st: work},
	}

	if err := fn(ctx, repos); err != nil {
		return err
	}

	// отмена до фиксации означает откат
	if err := ctx.Err(); err != nil {
		return err
	}

	s.data = work
	return nil
}
