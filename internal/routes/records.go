package routes

import (
	"io"
	"net/http"

	"github.com/derschnepf/Synergy-app/internal/repos"

	pkghttpx "github.com/derschnepf/Synergy-app/pkg/httpx"
)

// Handlers shared by every collection; movies.go and restaurants.go bind them.

type decodeFunc[T any] func(io.Reader) (T, error)

func listRecords[T repos.Record[T]](c *repos.Collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := c.ListJSON(r.Context())
		if err != nil {
			pkghttpx.WriteError(w, r, toHTTPError(c.Kind(), "list", err))
			return
		}
		pkghttpx.WriteRawJSON(w, http.StatusOK, b)
	}
}

func createRecord[T repos.Record[T]](c *repos.Collection[T], decode decodeFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := decode(limitBody(w, r))
		if err != nil {
			pkghttpx.WriteError(w, r, toHTTPError(c.Kind(), "create", err))
			return
		}
		created, err := c.Create(r.Context(), rec)
		if err != nil {
			pkghttpx.WriteError(w, r, toHTTPError(c.Kind(), "create", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, created)
	}
}

func updateRecord[T repos.Record[T]](c *repos.Collection[T], decode decodeFunc[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, he := pathID(r)
		if he != nil {
			pkghttpx.WriteError(w, r, he)
			return
		}
		rec, err := decode(limitBody(w, r))
		if err != nil {
			pkghttpx.WriteError(w, r, toHTTPError(c.Kind(), "update", err))
			return
		}
		updated, err := c.Update(r.Context(), id, rec)
		if err != nil {
			pkghttpx.WriteError(w, r, toHTTPError(c.Kind(), "update", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, updated)
	}
}

func deleteRecord[T repos.Record[T]](c *repos.Collection[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, he := pathID(r)
		if he != nil {
			pkghttpx.WriteError(w, r, he)
			return
		}
		if _, err := c.Delete(r.Context(), id); err != nil {
			pkghttpx.WriteError(w, r, toHTTPError(c.Kind(), "delete", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": c.Kind() + " deleted successfully",
		})
	}
}
