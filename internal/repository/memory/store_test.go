package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/event-manager/internal/domain"
	"github.com/bagdasarian/event-manager/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTeamEvent(t *testing.T, store *Store) (*domain.Event, *domain.Team) {
	t.Helper()
	event := &domain.Event{
		Title:       "Hackathon",
		OrganizerID: 1,
		StartsAt:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TeamEvent:   true,
		MinTeamSize: 1,
		MaxTeamSize: 3,
	}
	team := &domain.Team{
		Name:     "T",
		LeaderID: 100,
		Members:  []domain.TeamMember{{UserID: 100, Status: domain.MemberJoined}},
	}

	err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Events.Create(ctx, event); err != nil {
			return err
		}
		team.EventID = event.ID
		return repos.Teams.Create(ctx, team)
	})
	require.NoError(t, err)
	return event, team
}

func TestStore_WithinTx(t *testing.T) {
	t.Run("ошибка в fn откатывает все изменения", func(t *testing.T) {
		store := NewStore()
		_, team := seedTeamEvent(t, store)
		boom := errors.New("boom")

		err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			if _, err := repos.Teams.UpsertMember(ctx, team.ID, 101, domain.MemberJoined); err != nil {
				return err
			}
			if err := repos.Teams.SetLeader(ctx, team.ID, 101); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		err = store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			stored, err := repos.Teams.GetByID(ctx, team.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(100), stored.LeaderID)
			assert.Len(t, stored.Members, 1)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("отмененный контекст не начинает транзакцию", func(t *testing.T) {
		store := NewStore()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
			called = true
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("отмена до фиксации откатывает изменения", func(t *testing.T) {
		store := NewStore()
		event, _ := seedTeamEvent(t, store)
		ctx, cancel := context.WithCancel(context.Background())

		err := store.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
			cancel()
			return repos.Events.Delete(ctx, event.ID)
		})
		require.ErrorIs(t, err, context.Canceled)

		err = store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			_, err := repos.Events.GetByID(ctx, event.ID)
			return err
		})
		require.NoError(t, err)
	})
}

func TestTeamRepository_UpsertMember(t *testing.T) {
	store := NewStore()
	_, team := seedTeamEvent(t, store)

	err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		_, err := repos.Teams.UpsertMember(ctx, team.ID, 101, domain.MemberInvited)
		require.NoError(t, err)

		member, err := repos.Teams.UpsertMember(ctx, team.ID, 101, domain.MemberJoined)
		require.NoError(t, err)
		assert.Equal(t, domain.MemberJoined, member.Status)
		assert.NotNil(t, member.UpdatedAt)

		state, err := repos.Teams.GetStateForUpdate(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, state.JoinedCount)

		_, err = repos.Teams.UpsertMember(ctx, 999, 101, domain.MemberJoined)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		return nil
	})
	require.NoError(t, err)
}

func TestEventRepository_FindByOrganizer(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
		for _, hour := range []int{14, 9, 11} {
			require.NoError(t, repos.Events.Create(ctx, &domain.Event{
				OrganizerID: 1,
				StartsAt:    base.Add(time.Duration(hour) * time.Hour),
				EndsAt:      base.Add(time.Duration(hour+1) * time.Hour),
			}))
		}
		require.NoError(t, repos.Events.Create(ctx, &domain.Event{OrganizerID: 2, StartsAt: base, EndsAt: base.Add(time.Hour)}))

		events, err := repos.Events.FindByOrganizer(ctx, 1, nil)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, 9, events[0].StartsAt.Hour())
		assert.Equal(t, 11, events[1].StartsAt.Hour())
		assert.Equal(t, 14, events[2].StartsAt.Hour())

		exclude := events[0].ID
		events, err = repos.Events.FindByOrganizer(ctx, 1, &exclude)
		require.NoError(t, err)
		assert.Len(t, events, 2)
		return nil
	})
	require.NoError(t, err)
}

// TestStore_KnownUsers - неизвестные пользователи отклоняются так же, как внешним ключом в postgres
func TestStore_KnownUsers(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("неизвестный организатор", func(t *testing.T) {
		store := NewStoreWithUsers(1)

		err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			return repos.Events.Create(ctx, &domain.Event{OrganizerID: 404, StartsAt: base, EndsAt: base.Add(time.Hour)})
		})

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("неизвестный лидер и участник", func(t *testing.T) {
		store := NewStoreWithUsers(1, 100)
		_, team := seedTeamEvent(t, store)

		err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			err := repos.Teams.Create(ctx, &domain.Team{
				EventID:  team.EventID,
				Name:     "B",
				LeaderID: 404,
				Members:  []domain.TeamMember{{UserID: 404, Status: domain.MemberJoined}},
			})
			assert.ErrorIs(t, err, repository.ErrNotFound)

			_, err = repos.Teams.UpsertMember(ctx, team.ID, 404, domain.MemberInvited)
			assert.ErrorIs(t, err, repository.ErrNotFound)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("без списка пользователей проверки нет", func(t *testing.T) {
		store := NewStore()

		err := store.WithinTx(context.Background(), func(ctx context.Context, repos repository.Repositories) error {
			return repos.Events.Create(ctx, &domain.Event{OrganizerID: 404, StartsAt: base, EndsAt: base.Add(time.Hour)})
		})

		assert.NoError(t, err)
	})
}
