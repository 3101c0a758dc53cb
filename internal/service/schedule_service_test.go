package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupScheduleService(t *testing.T) (ScheduleService, *MockEventRepository, *MockTeamRepository, *stubTransactor) {
	t.Helper()
	mockEventRepo := new(MockEventRepository)
	mockTeamRepo := new(MockTeamRepository)
	tx := newStubTransactor(mockEventRepo, mockTeamRepo, new(MockStatsRepository))
	return NewScheduleService(tx, zap.NewNop()), mockEventRepo, mockTeamRepo, tx
}

func TestScheduleService_CheckEventSchedule(t *testing.T) {
	t.Run("конфликт с существующим событием", func(t *testing.T) {
		service, mockEventRepo, _, _ := setupScheduleService(t)

		eventA := eventAt(1, at(10, 0), at(12, 0))
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), (*int64)(nil)).
			Return([]*domain.Event{eventA}, nil).Once()

		check, err := service.CheckEventSchedule(context.Background(), 1, nil, at(11, 0), at(13, 0))

		require.NoError(t, err)
		assert.False(t, check.OK)
		assert.Equal(t, []int64{1}, eventIDs(check.Conflicts))
	})

	t.Run("касание границ не конфликт", func(t *testing.T) {
		service, mockEventRepo, _, _ := setupScheduleService(t)

		eventA := eventAt(1, at(10, 0), at(12, 0))
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), (*int64)(nil)).
			Return([]*domain.Event{eventA}, nil).Once()

		check, err := service.CheckEventSchedule(context.Background(), 1, nil, at(12, 0), at(14, 0))

		require.NoError(t, err)
		assert.True(t, check.OK)
		assert.Empty(t, check.Conflicts)
	})

	t.Run("ошибка хранилища пробрасывается", func(t *testing.T) {
		service, mockEventRepo, _, _ := setupScheduleService(t)
		dbErr := errors.New("connection refused")

		exclude := int64(3)
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), &exclude).Return(nil, dbErr).Once()

		check, err := service.CheckEventSchedule(context.Background(), 1, &exclude, at(12, 0), at(14, 0))

		require.Error(t, err)
		assert.Nil(t, check)
		assert.True(t, errors.Is(err, dbErr))
	})
}

func TestScheduleService_CreateEvent(t *testing.T) {
	t.Run("успешное создание под блокировкой организатора", func(t *testing.T) {
		service, mockEventRepo, _, tx := setupScheduleService(t)

		newEvent := &domain.Event{Title: "Meetup", OrganizerID: 1, StartsAt: at(12, 0), EndsAt: at(14, 0)}

		lock := mockEventRepo.On("LockOrganizer", mock.Anything, int64(1)).Return(nil).Once()
		find := mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), (*int64)(nil)).
			Return([]*domain.Event{eventAt(1, at(10, 0), at(12, 0))}, nil).Once().NotBefore(lock)
		mockEventRepo.On("Create", mock.Anything, newEvent).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Event).ID = 2
		}).Return(nil).Once().NotBefore(find)

		created, err := service.CreateEvent(context.Background(), newEvent)

		require.NoError(t, err)
		assert.Equal(t, int64(2), created.ID)
		assert.Equal(t, 1, tx.committed)
		mockEventRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пересечение с событием организатора", func(t *testing.T) {
		service, mockEventRepo, _, tx := setupScheduleService(t)

		newEvent := &domain.Event{Title: "Workshop", OrganizerID: 1, StartsAt: at(11, 0), EndsAt: at(13, 0)}
		eventA := eventAt(1, at(10, 0), at(12, 0))

		mockEventRepo.On("LockOrganizer", mock.Anything, int64(1)).Return(nil).Once()
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), (*int64)(nil)).
			Return([]*domain.Event{eventA}, nil).Once()

		created, err := service.CreateEvent(context.Background(), newEvent)

		require.Error(t, err)
		assert.Nil(t, created)
		assert.True(t, errors.Is(err, domain.ErrScheduleConflict))

		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, []int64{1}, eventIDs(domainErr.Conflicts))
		assert.Equal(t, 1, tx.rolledBack)
		mockEventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: организатор не найден", func(t *testing.T) {
		service, mockEventRepo, _, _ := setupScheduleService(t)

		newEvent := &domain.Event{Title: "Meetup", OrganizerID: 9, StartsAt: at(12, 0), EndsAt: at(14, 0)}

		mockEventRepo.On("LockOrganizer", mock.Anything, int64(9)).Return(nil).Once()
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(9), (*int64)(nil)).Return([]*domain.Event{}, nil).Once()
		mockEventRepo.On("Create", mock.Anything, newEvent).Return(repository.ErrNotFound).Once()

		_, err := service.CreateEvent(context.Background(), newEvent)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestScheduleService_UpdateEvent(t *testing.T) {
	t.Run("событие не конфликтует само с собой", func(t *testing.T) {
		service, mockEventRepo, mockTeamRepo, _ := setupScheduleService(t)

		stored := eventAt(1, at(10, 0), at(12, 0))
		update := &domain.Event{ID: 1, Title: "Moved", StartsAt: at(11, 0), EndsAt: at(13, 0)}
		exclude := int64(1)

		mockEventRepo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockEventRepo.On("LockOrganizer", mock.Anything, int64(1)).Return(nil).Once()
		mockEventRepo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), &exclude).Return([]*domain.Event{}, nil).Once()
		mockEventRepo.On("Update", mock.Anything, update).Return(nil).Once()

		updated, err := service.UpdateEvent(context.Background(), update)

		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.OrganizerID)
		mockEventRepo.AssertExpectations(t)
		mockTeamRepo.AssertNotCalled(t, "MaxJoinedCountByEvent", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: пересечение с другим событием", func(t *testing.T) {
		service, mockEventRepo, _, _ := setupScheduleService(t)

		stored := eventAt(1, at(10, 0), at(12, 0))
		other := eventAt(2, at(14, 0), at(16, 0))
		update := &domain.Event{ID: 1, Title: "Moved", StartsAt: at(13, 0), EndsAt: at(15, 0)}
		exclude := int64(1)

		mockEventRepo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockEventRepo.On("LockOrganizer", mock.Anything, int64(1)).Return(nil).Once()
		mockEventRepo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), &exclude).Return([]*domain.Event{other}, nil).Once()

		_, err := service.UpdateEvent(context.Background(), update)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrScheduleConflict))
		mockEventRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: лимит меньше числа joined-участников", func(t *testing.T) {
		service, mockEventRepo, mockTeamRepo, _ := setupScheduleService(t)

		stored := teamEvent(1, 4)
		update := teamEvent(1, 2)
		exclude := int64(1)

		mockEventRepo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockEventRepo.On("LockOrganizer", mock.Anything, int64(1)).Return(nil).Once()
		mockEventRepo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), &exclude).Return([]*domain.Event{}, nil).Once()
		mockTeamRepo.On("MaxJoinedCountByEvent", mock.Anything, int64(1)).Return(3, nil).Once()

		_, err := service.UpdateEvent(context.Background(), update)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
		mockEventRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: нельзя выключить командный режим при наличии команд", func(t *testing.T) {
		service, mockEventRepo, mockTeamRepo, _ := setupScheduleService(t)

		stored := teamEvent(1, 4)
		update := teamEvent(1, 4)
		update.TeamEvent = false
		exclude := int64(1)

		mockEventRepo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockEventRepo.On("LockOrganizer", mock.Anything, int64(1)).Return(nil).Once()
		mockEventRepo.On("GetByIDForUpdate", mock.Anything, int64(1)).Return(stored, nil).Once()
		mockEventRepo.On("FindByOrganizer", mock.Anything, int64(1), &exclude).Return([]*domain.Event{}, nil).Once()
		mockTeamRepo.On("CountByEvent", mock.Anything, int64(1)).Return(2, nil).Once()

		_, err := service.UpdateEvent(context.Background(), update)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
	})

	t.Run("ошибка: событие не найдено", func(t *testing.T) {
		service, mockEventRepo, _, _ := setupScheduleService(t)

		mockEventRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, repository.ErrNotFound).Once()

		_, err := service.UpdateEvent(context.Background(), &domain.Event{ID: 7, StartsAt: at(10, 0), EndsAt: at(11, 0)})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestScheduleService_DeleteEvent(t *testing.T) {
	service, mockEventRepo, _, _ := setupScheduleService(t)

	mockEventRepo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	mockEventRepo.On("Delete", mock.Anything, int64(2)).Return(repository.ErrNotFound).Once()

	require.NoError(t, service.DeleteEvent(context.Background(), 1))

	err := service.DeleteEvent(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
