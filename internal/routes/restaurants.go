package routes

import (
	"net/http"

	"github.com/derschnepf/Synergy-app/internal/model"

	pkgdeps "github.com/derschnepf/Synergy-app/pkg/deps"
)

// Restaurants handles GET /restaurants
func Restaurants(d pkgdeps.ServerDeps) http.HandlerFunc {
	return listRecords(d.Repo.Restaurants)
}

// CreateRestaurant handles POST /restaurants
func CreateRestaurant(d pkgdeps.ServerDeps) http.HandlerFunc {
	return createRecord(d.Repo.Restaurants, model.DecodeRestaurant)
}

// UpdateRestaurant handles PUT /restaurants/{id}
func UpdateRestaurant(d pkgdeps.ServerDeps) http.HandlerFunc {
	return updateRecord(d.Repo.Restaurants, model.DecodeRestaurant)
}

// DeleteRestaurant handles DELETE /restaurants/{id}
func DeleteRestaurant(d pkgdeps.ServerDeps) http.HandlerFunc {
	return deleteRecord(d.Repo.Restaurants)
}
