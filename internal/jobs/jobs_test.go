package jobs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derschnepf/Synergy-app/internal/jobs"
	"github.com/derschnepf/Synergy-app/internal/model"
	"github.com/derschnepf/Synergy-app/internal/repos"
	"github.com/derschnepf/Synergy-app/internal/store"
)

func newRepo(t *testing.T) (*repos.Repository, string) {
	t.Helper()
	dir := t.TempDir()
	return repos.New(repos.Options{
		MoviesPath:      filepath.Join(dir, "movies.json"),
		RestaurantsPath: filepath.Join(dir, "restaurants.json"),
	}), dir
}

func TestVerifyStoresMissingFilesAreFine(t *testing.T) {
	r, _ := newRepo(t)
	require.NoError(t, jobs.VerifyStores(context.Background(), r))
}

func TestVerifyStoresReportsCorruptDocument(t *testing.T) {
	r, _ := newRepo(t)
	require.NoError(t, os.WriteFile(r.Restaurants.Path(), []byte("not json"), 0o644))

	err := jobs.VerifyStores(context.Background(), r)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrCorrupt)
	assert.Contains(t, err.Error(), "restaurants")
}

func TestBackupAllWritesAndPrunes(t *testing.T) {
	r, dir := newRepo(t)
	ctx := context.Background()
	_, err := r.Movies.Create(ctx, model.Movie{ID: 1, Title: "Dune", Image: "dune.png", Genres: []string{}, Type: model.TypeFilm, ImagePosition: "center"})
	require.NoError(t, err)

	backups := filepath.Join(dir, "backups")
	base := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, jobs.BackupAll(ctx, r, backups, base.Add(time.Duration(i)*time.Hour), 2))
	}

	movies, err := filepath.Glob(filepath.Join(backups, "movies-*.json"))
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "movies-20261017T150000Z.json", filepath.Base(movies[1]))

	restaurants, err := filepath.Glob(filepath.Join(backups, "restaurants-*.json"))
	require.NoError(t, err)
	assert.Len(t, restaurants, 2)

	got, err := store.NewDocument[model.Movie](movies[1]).Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Title)
}
