package repos

import (
	"context"
	"errors"
	"time"

	"github.com/derschnepf/Synergy-app/internal/model"
	"github.com/derschnepf/Synergy-app/pkg/cache"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("record id already exists")
	ErrIDMismatch  = errors.New("body id does not match path id")
)

// Repository groups the collections served by the API.
type Repository struct {
	Movies      *Collection[model.Movie]
	Restaurants *Collection[model.Restaurant]
}

// Options configures where collections live and how list responses are cached.
type Options struct {
	MoviesPath      string
	RestaurantsPath string
	Cache           cache.Cache // nil disables list caching
	CacheTTL        time.Duration
}

func New(o Options) *Repository {
	return &Repository{
		Movies:      NewCollection[model.Movie]("movies", model.KindMovie, o.MoviesPath, o.Cache, o.CacheTTL),
		Restaurants: NewCollection[model.Restaurant]("restaurants", model.KindRestaurant, o.RestaurantsPath, o.Cache, o.CacheTTL),
	}
}

// Backupable is a collection that can copy its current content to another document.
type Backupable interface {
	Name() string
	Path() string
	Count(ctx context.Context) (int, error)
	Backup(ctx context.Context, dst string) (int, error)
}

// All lists every collection in a stable order.
func (r *Repository) All() []Backupable {
	return []Backupable{r.Movies, r.Restaurants}
}
