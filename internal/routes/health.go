package routes

import (
	"net/http"
	"time"

	pkgdeps "github.com/derschnepf/Synergy-app/pkg/deps"
	pkghttpx "github.com/derschnepf/Synergy-app/pkg/httpx"
)

// Health returns a handler that responds with service status and collection sizes.
// A collection that cannot be read turns the status to degraded.
func Health(d pkgdeps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status, code := "ok", http.StatusOK
		resp := map[string]any{
			"service":        d.Name,
			"uptime_seconds": int64(time.Since(d.StartedAt).Seconds()),
		}
		if d.Repo != nil {
			for _, c := range d.Repo.All() {
				n, err := c.Count(ctx)
				if err != nil {
					status, code = "degraded", http.StatusServiceUnavailable
					resp[c.Name()] = map[string]any{"error": err.Error()}
					continue
				}
				resp[c.Name()] = n
			}
		}
		resp["status"] = status
		pkghttpx.WriteJSON(w, code, resp)
	}
}
