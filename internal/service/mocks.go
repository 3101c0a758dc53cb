package service

import (
	"context"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
	"github.com/stretchr/testify/mock"
)

// stubTransactor вызывает fn с мок-репозиториями и считает фиксации и откаты
type stubTransactor struct {
	repos      repository.Repositories
	committed  int
	rolledBack int
}

func newStubTransactor(events *MockEventRepository, teams *MockTeamRepository, stats *MockStatsRepository) *stubTransactor {
	return &stubTransactor{
		repos: repository.Repositories{Events: events, Teams: teams, Stats: stats},
	}
}

func (t *stubTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if err := fn(ctx, t.repos); err != nil {
		t.rolledBack++
		return err
	}
	t.committed++
	return nil
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) LockOrganizer(ctx context.Context, organizerID int64) error {
	args := m.Called(ctx, organizerID)
	return args.Error(0)
}

func (m *MockEventRepository) FindByOrganizer(ctx context.Context, organizerID int64, excludeEventID *int64) ([]*domain.Event, error) {
	args := m.Called(ctx, organizerID, excludeEventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetByIDForShare(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetStateForUpdate(ctx context.Context, id int64) (*domain.TeamState, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamState), args.Error(1)
}

func (m *MockTeamRepository) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockTeamRepository) MaxJoinedCountByEvent(ctx context.Context, eventID int64) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockTeamRepository) GetMember(ctx context.Context, teamID, userID int64) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) UpsertMember(ctx context.Context, teamID, userID int64, status domain.MemberStatus) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamID, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) SetMemberStatus(ctx context.Context, teamID, userID int64, status domain.MemberStatus) error {
	args := m.Called(ctx, teamID, userID, status)
	return args.Error(0)
}

func (m *MockTeamRepository) SetLeader(ctx context.Context, teamID, userID int64) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetTeamReadiness(ctx context.Context, eventID int64) ([]*domain.TeamReadiness, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamReadiness), args.Error(1)
}
