//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bagdasarian/event-manager/internal/repository/postgres"
	"github.com/bagdasarian/event-manager/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type services struct {
	schedule service.ScheduleService
	teams    service.TeamService
	stats    service.StatsService
}

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := tcpostgres.Run(ctx, "postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(20)

	require.NoError(t, db.PingContext(ctx))

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать файл миграции")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

// seedUsers создает пользователей с id 1..n
func seedUsers(t *testing.T, db *sql.DB, n int) {
	for i := 1; i <= n; i++ {
		_, err := db.Exec(`INSERT INTO users (id, name) VALUES ($1, $2)`, i, "user")
		require.NoError(t, err)
	}
}

func setupServices(t *testing.T, users int) services {
	db := setupTestDB(t)
	seedUsers(t, db, users)

	log := zap.NewNop()
	transactor := postgres.NewTransactor(db)

	return services{
		schedule: service.NewScheduleService(transactor, log),
		teams:    service.NewTeamService(transactor, log),
		stats:    service.NewStatsService(transactor),
	}
}
