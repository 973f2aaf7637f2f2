package task

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/tasklist/internal/errors"
	"github.com/Iron-Ham/tasklist/internal/storage"
)

func TestRepository_LoadMissingKey(t *testing.T) {
	repo := NewRepository(storage.NewMemoryStore(), "", nil)

	tasks := repo.Load(context.Background())
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
	assert.Equal(t, DefaultKey, repo.Key())
}

func TestRepository_LoadMalformed(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"not json", `{"id":"a"}`, `[`} {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Save(ctx, DefaultKey, []byte(raw)))

		tasks := NewRepository(store, "", nil).Load(ctx)
		assert.Empty(t, tasks, raw)
	}
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStoreFs(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	repo := NewRepository(store, "", nil)

	tasks, _, err := Add(nil, "Buy milk", NewDate(2026, time.October, 20), testNow)
	require.NoError(t, err)
	tasks, _, err = Add(tasks, "Call mom", Date{}, testNow.Add(time.Minute))
	require.NoError(t, err)
	Toggle(tasks, tasks[1].ID)

	require.NoError(t, repo.Save(ctx, tasks))
	assert.Equal(t, tasks, repo.Load(ctx))
}

func TestRepository_RoundTripSubMillisecondClock(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore(), "", nil)
	now := time.Date(2026, time.October, 16, 8, 30, 0, 123456789, time.UTC)

	tasks, created, err := Add(nil, "Buy milk", Date{}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 16, 8, 30, 0, 123000000, time.UTC), created.CreatedAt)

	require.NoError(t, repo.Save(ctx, tasks))
	loaded := repo.Load(ctx)
	require.Len(t, loaded, 1)
	assert.Equal(t, tasks, loaded)
}

func TestRepository_SaveEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewRepository(store, "", nil)

	require.NoError(t, repo.Save(ctx, nil))
	data, err := store.Load(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRepository_SaveError(t *testing.T) {
	store := storage.NewMemoryStore()
	store.SaveErr = errors.New("disk full")

	err := NewRepository(store, "", nil).Save(context.Background(), []Task{})
	assert.Error(t, err)
}

func TestRepository_LenientAndDropsInvalid(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	raw := `[
		// edited by hand
		{"id": "a", "text": "Keep", "date": "", "done": false, "createdAt": ""},
		{"id": "", "text": "No id"},
		{"id": "b", "text": "   "},
		{"id": "c", "text": "Bad date", "date": "soon"},
		{"id": "a", "text": "Duplicate"},
		{"id": "d", "text": "Also keep", "date": "2026-10-01", "done": true,},
	]`
	require.NoError(t, store.Save(ctx, DefaultKey, []byte(raw)))

	tasks := NewRepository(store, "", nil).Load(ctx)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Keep", tasks[0].Text)
	assert.Equal(t, "Also keep", tasks[1].Text)
	assert.True(t, tasks[1].Done)
}

func TestDecode_ReportsDrops(t *testing.T) {
	var dropped []int
	tasks, err := Decode([]byte(`[{"id":"x","text":"ok"}, null, 42]`), func(i int, _ error) {
		dropped = append(dropped, i)
	})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, []int{1, 2}, dropped)

	_, err = Decode([]byte(`"tasks"`), nil)
	assert.ErrorIs(t, err, errors.ErrStoreCorrupted)
}

// The scenario a first-time user walks through: add, complete, then clear.
func TestRepository_BuyMilkScenario(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewRepository(store, "", nil)

	tasks := repo.Load(ctx)
	require.Empty(t, tasks)

	tasks, milk, err := Add(tasks, "Buy milk", Date{}, testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tasks))
	assert.Equal(t, 0, CountDone(tasks))
	assert.Len(t, tasks, 1)

	require.True(t, Toggle(tasks, milk.ID))
	require.NoError(t, repo.Save(ctx, tasks))

	reloaded := NewRepository(store, "", nil).Load(ctx)
	require.Len(t, reloaded, 1)
	assert.True(t, reloaded[0].Done)
	assert.Equal(t, 1, CountDone(reloaded))
}
