package deps

import (
	"time"

	"github.com/derschnepf/Synergy-app/internal/repos"
)

// ServerDeps holds the dependencies required by handlers and server.
type ServerDeps struct {
	Repo      *repos.Repository
	Name      string
	StartedAt time.Time
}
