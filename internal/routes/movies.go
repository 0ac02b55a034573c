package routes

import (
	"net/http"

	"github.com/derschnepf/Synergy-app/internal/model"

	pkgdeps "github.com/derschnepf/Synergy-app/pkg/deps"
)

// Movies handles GET /movies
func Movies(d pkgdeps.ServerDeps) http.HandlerFunc {
	return listRecords(d.Repo.Movies)
}

// CreateMovie handles POST /movies
func CreateMovie(d pkgdeps.ServerDeps) http.HandlerFunc {
	return createRecord(d.Repo.Movies, model.DecodeMovie)
}

// UpdateMovie handles PUT /movies/{id}
func UpdateMovie(d pkgdeps.ServerDeps) http.HandlerFunc {
	return updateRecord(d.Repo.Movies, model.DecodeMovie)
}

// DeleteMovie handles DELETE /movies/{id}
func DeleteMovie(d pkgdeps.ServerDeps) http.HandlerFunc {
	return deleteRecord(d.Repo.Movies)
}
