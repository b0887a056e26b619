package postgres

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"shopping-list-manager/config"
	"shopping-list-manager/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	list, err := repo.Create(ctx, "Weekly", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, list.ID)
	require.Equal(t, "user-1", list.OwnerID)
	require.Equal(t, []string{"user-1"}, list.Members)
	require.Empty(t, list.Items)
	require.False(t, list.Archived)
	require.NotNil(t, list.CreatedAt)

	fetched, err := repo.GetByID(ctx, list.ID)
	require.NoError(t, err)
	require.Equal(t, list.ID, fetched.ID)
	require.Equal(t, "Weekly", fetched.Name)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrListNotFound)

	require.NoError(t, repo.AddMember(ctx, list.ID, "user-2"))
	require.ErrorIs(t, repo.AddMember(ctx, list.ID, "user-2"), entities.ErrAlreadyMember)

	fetched, err = repo.GetByID(ctx, list.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"user-1", "user-2"}, fetched.Members)

	// membership scoping via the jsonb containment query
	memberLists, err := repo.ListFor(ctx, "user-2", false)
	require.NoError(t, err)
	require.Len(t, memberLists, 1)
	require.Equal(t, list.ID, memberLists[0].ID)

	strangerLists, err := repo.ListFor(ctx, "user-9", false)
	require.NoError(t, err)
	require.Empty(t, strangerLists)

	milk, err := repo.AddItem(ctx, list.ID, entities.Item{Name: "Milk"})
	require.NoError(t, err)
	require.NotEmpty(t, milk.ID)
	bread, err := repo.AddItem(ctx, list.ID, entities.Item{Name: "Bread", Quantity: 2})
	require.NoError(t, err)

	fetched, err = repo.GetByID(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 2)
	require.Equal(t, milk.ID, fetched.Items[0].ID)
	require.Equal(t, bread.ID, fetched.Items[1].ID)
	require.Equal(t, 2, fetched.Items[1].Quantity)

	resolvedItem, err := repo.SetItemResolved(ctx, list.ID, milk.ID, true)
	require.NoError(t, err)
	require.True(t, resolvedItem.Resolved)

	_, err = repo.SetItemResolved(ctx, list.ID, "item-x", true)
	require.ErrorIs(t, err, entities.ErrItemNotFound)

	require.NoError(t, repo.RemoveItem(ctx, list.ID, bread.ID))
	fetched, err = repo.GetByID(ctx, list.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)

	renamed, err := repo.Rename(ctx, list.ID, "Weekly groceries")
	require.NoError(t, err)
	require.Equal(t, "Weekly groceries", renamed.Name)

	archived, err := repo.SetArchived(ctx, list.ID, true)
	require.NoError(t, err)
	require.True(t, archived.Archived)

	activeLists, err := repo.ListFor(ctx, "user-1", false)
	require.NoError(t, err)
	require.Empty(t, activeLists)

	archivedLists, err := repo.ListFor(ctx, "user-1", true)
	require.NoError(t, err)
	require.Len(t, archivedLists, 1)

	require.NoError(t, repo.RemoveMember(ctx, list.ID, "user-2"))
	require.ErrorIs(t, repo.RemoveMember(ctx, list.ID, "user-2"), entities.ErrNotAMember)

	require.NoError(t, repo.Delete(ctx, list.ID))
	_, err = repo.GetByID(ctx, list.ID)
	require.ErrorIs(t, err, entities.ErrListNotFound)
	require.ErrorIs(t, repo.Delete(ctx, list.ID), entities.ErrListNotFound)
}

func TestRepositoryIntegrationOrdering(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	first, err := repo.Create(ctx, "First", "user-1")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := repo.Create(ctx, "Second", "user-1")
	require.NoError(t, err)

	lists, err := repo.ListFor(ctx, "user-1", false)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	require.Equal(t, second.ID, lists[0].ID)
	require.Equal(t, first.ID, lists[1].ID)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=shopping_list_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "shopping_list_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			MigrateTimeout: 60 * time.Second,
			QueryTimeout:   30 * time.Second,
			MaxConns:       5,
			MinConns:       1,
		},
	}

	var ready bool
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		repo := New(context.Background(), testLogger(t), cfg)
		if err := repo.OnStart(context.Background()); err == nil {
			_ = repo.OnStop(context.Background())
			ready = true
			break
		}
		time.Sleep(time.Second)
	}
	require.True(t, ready, "postgres container did not become ready")

	return cfg, func() { _ = pool.Purge(resource) }
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	return zap.NewNop().Sugar()
}
