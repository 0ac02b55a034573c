package routes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/derschnepf/Synergy-app/internal/model"
	"github.com/derschnepf/Synergy-app/internal/repos"
	"github.com/derschnepf/Synergy-app/internal/store"

	pkghttpx "github.com/derschnepf/Synergy-app/pkg/httpx"
)

// MaxBodyBytes bounds record bodies.
const MaxBodyBytes = 1 << 20

func limitBody(w http.ResponseWriter, r *http.Request) io.Reader {
	return http.MaxBytesReader(w, r.Body, MaxBodyBytes)
}

// pathID parses the {id} segment.
func pathID(r *http.Request) (int64, *pkghttpx.HTTPError) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkghttpx.Unprocessable("invalid id", err).
			WithDetails("fields", []model.FieldError{{Field: "id", Message: "id must be an integer"}})
	}
	return id, nil
}

// toHTTPError maps domain errors to API errors. kind names the entity in messages.
func toHTTPError(kind, action string, err error) *pkghttpx.HTTPError {
	var verr *model.ValidationError
	var mbe *http.MaxBytesError
	switch {
	case errors.As(err, &mbe):
		return pkghttpx.TooLarge("request body too large", err)
	case errors.As(err, &verr):
		return pkghttpx.Unprocessable("invalid "+kind, err).WithDetails("fields", verr.Fields)
	case errors.Is(err, repos.ErrNotFound):
		return pkghttpx.NotFound(kind+" not found", err)
	case errors.Is(err, repos.ErrDuplicateID):
		return pkghttpx.Conflict(kind+" with this id already exists", err)
	case errors.Is(err, repos.ErrIDMismatch):
		return pkghttpx.Unprocessable("id in body does not match id in path", err).
			WithDetails("fields", []model.FieldError{{Field: "id", Message: "id must match the id in the path"}})
	case errors.Is(err, store.ErrCorrupt):
		return pkghttpx.Internal(kind+" store is corrupt", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkghttpx.Unavailable("request cancelled", err)
	default:
		return pkghttpx.Internal("failed to "+action+" "+kind, err)
	}
}
