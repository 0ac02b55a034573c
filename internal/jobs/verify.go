package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/derschnepf/Synergy-app/internal/repos"
)

// VerifyStores loads every collection once so a corrupt document stops startup
// instead of surfacing on the first request.
func VerifyStores(ctx context.Context, r *repos.Repository) error {
	var errs []error
	for _, c := range r.All() {
		n, err := c.Count(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s (%s): %w", c.Name(), c.Path(), err))
			continue
		}
		log.Info().Str("collection", c.Name()).Str("path", c.Path()).Int("records", n).Msg("collection loaded")
	}
	return errors.Join(errs...)
}
