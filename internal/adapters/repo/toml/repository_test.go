package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *RosterRepository {
	t.Helper()

	config := viper.New()
	config.Set(RosterPathKey, path)

	repo, err := NewRosterRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRosterRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "roster.toml"))
	updatedAt := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(context.Background(), domain.Roster{
		Excluded:  []domain.UserID{42, 7, 42},
		UpdatedAt: updatedAt,
	}))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.UserID{7, 42}, got.Excluded)
	assert.True(t, updatedAt.Equal(got.UpdatedAt))
}

func TestRosterRepositoryMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "roster.toml"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Excluded)
	assert.True(t, got.UpdatedAt.IsZero())
}

func TestRosterRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRosterRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Roster{Excluded: []domain.UserID{1}}))

	rosterPath := filepath.Join(homeDir, ".config", "linkbot", "roster.toml")
	assert.Equal(t, rosterPath, repo.Path())
	info, err := os.Stat(rosterPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRosterRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	rosterPath := filepath.Join(t.TempDir(), "roster.toml")
	require.NoError(t, os.WriteFile(rosterPath, []byte("excluded = ["), 0o600))

	_, err := newTestRepository(t, rosterPath).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode roster file")
}

func TestRosterRepositoryIgnoresInvalidIDs(t *testing.T) {
	t.Parallel()

	rosterPath := filepath.Join(t.TempDir(), "roster.toml")
	require.NoError(t, os.WriteFile(rosterPath, []byte(strings.Join([]string{
		"version = 1",
		"excluded = [5, -3, 0, 5, 2]",
		"",
	}, "\n")), 0o600))

	got, err := newTestRepository(t, rosterPath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.UserID{2, 5}, got.Excluded)
}

func TestRosterRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	rosterPath := filepath.Join(t.TempDir(), "roster.toml")
	require.NoError(t, os.WriteFile(rosterPath, []byte("version = 999\nexcluded = []\n"), 0o600))
	repo := newTestRepository(t, rosterPath)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported roster schema version")

	err = repo.Save(context.Background(), domain.Roster{Excluded: []domain.UserID{1}})
	require.Error(t, err)

	data, err := os.ReadFile(rosterPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 999")
}

func TestRosterRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	rosterPath := filepath.Join(t.TempDir(), "roster.toml")
	require.NoError(t, newTestRepository(t, rosterPath).Save(context.Background(), domain.Roster{}))

	data, err := os.ReadFile(rosterPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "excluded = []")
}

func TestRosterRepositoryCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "roster.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Roster{Excluded: []domain.UserID{1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRosterRepositoryConcurrentSavesAcrossInstancesLeaveValidFile(t *testing.T) {
	t.Parallel()

	rosterPath := filepath.Join(t.TempDir(), "roster.toml")
	repoA := newTestRepository(t, rosterPath)
	repoB := newTestRepository(t, rosterPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *RosterRepository, base domain.UserID) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Roster{Excluded: []domain.UserID{base + domain.UserID(i)}})
		}
	}
	go write(repoA, 1000)
	go write(repoB, 2000)

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repoA.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Excluded, 1)
}
