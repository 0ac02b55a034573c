package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derschnepf/Synergy-app/internal/model"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	out := map[string]string{}
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestDecodeMovieAppliesDefaults(t *testing.T) {
	m, err := model.DecodeMovie(strings.NewReader(`{"id":1,"title":"Dune","image":"dune.png"}`))
	require.NoError(t, err)
	assert.Equal(t, model.Movie{
		ID:            1,
		Title:         "Dune",
		Image:         "dune.png",
		Genres:        []string{},
		Type:          "Film",
		ImagePosition: "center",
	}, m)
}

func TestDecodeMovieKeepsSuppliedValues(t *testing.T) {
	body := `{"id":4,"title":"Frieren","image":"f.png","ratingDavid":9,"ratingLena":-3,
		"seen":true,"genres":["Fantasy","Adventure"],"releaseYear":"2023","createdDate":"2024-01-02",
		"type":"Anime","imagePosition":"30% 70%","extra":"ignored"}`
	m, err := model.DecodeMovie(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 9, m.RatingDavid)
	assert.Equal(t, -3, m.RatingLena)
	assert.True(t, m.Seen)
	assert.Equal(t, []string{"Fantasy", "Adventure"}, m.Genres)
	assert.Equal(t, "Anime", m.Type)
	assert.Equal(t, "30% 70%", m.ImagePosition)
}

func TestDecodeMovieAcceptsUnconventionalType(t *testing.T) {
	m, err := model.DecodeMovie(strings.NewReader(`{"id":1,"title":"x","image":"y","type":"Documentary"}`))
	require.NoError(t, err)
	assert.Equal(t, "Documentary", m.Type)
}

func TestDecodeMovieNullOptionalGetsDefault(t *testing.T) {
	m, err := model.DecodeMovie(strings.NewReader(`{"id":1,"title":"x","image":"y","type":null,"genres":null}`))
	require.NoError(t, err)
	assert.Equal(t, model.TypeFilm, m.Type)
	assert.Equal(t, []string{}, m.Genres)
}

func TestDecodeMovieEmptyTitleIsAccepted(t *testing.T) {
	_, err := model.DecodeMovie(strings.NewReader(`{"id":1,"title":"","image":""}`))
	require.NoError(t, err)
}

func TestDecodeMovieMissingRequired(t *testing.T) {
	_, err := model.DecodeMovie(strings.NewReader(`{"id":1,"name":"Dune","image":"dune.png"}`))
	got := fields(t, err)
	assert.Equal(t, map[string]string{"title": "title is required"}, got)
}

func TestDecodeMovieWrongTypes(t *testing.T) {
	_, err := model.DecodeMovie(strings.NewReader(`{"id":"one","title":"Dune","image":"dune.png","seen":"yes","genres":["a",2]}`))
	got := fields(t, err)
	assert.Equal(t, "id must be an integer", got["id"])
	assert.Equal(t, "seen must be a boolean", got["seen"])
	assert.Equal(t, "genres must be a list of strings", got["genres"])
	assert.NotContains(t, got, "title")
}

func TestDecodeMovieFractionalID(t *testing.T) {
	_, err := model.DecodeMovie(strings.NewReader(`{"id":1.5,"title":"Dune","image":"dune.png"}`))
	assert.Contains(t, fields(t, err), "id")
}

func TestDecodeMovieMalformedBody(t *testing.T) {
	for _, body := range []string{``, `{`, `[1,2]`, `"dune"`} {
		_, err := model.DecodeMovie(strings.NewReader(body))
		got := fields(t, err)
		assert.Contains(t, got, "body", "body %q", body)
	}
}

func TestDecodeRestaurantAppliesDefaults(t *testing.T) {
	r, err := model.DecodeRestaurant(strings.NewReader(`{"id":3,"name":"Noma","image":"noma.png"}`))
	require.NoError(t, err)
	assert.Equal(t, model.Restaurant{
		ID:            3,
		Name:          "Noma",
		Image:         "noma.png",
		Cuisine:       []string{},
		ImagePosition: "center",
	}, r)
}

func TestDecodeRestaurantMissingFields(t *testing.T) {
	_, err := model.DecodeRestaurant(strings.NewReader(`{"title":"Dune"}`))
	got := fields(t, err)
	assert.Len(t, got, 3)
	assert.Contains(t, got, "id")
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "image")
	assert.Contains(t, err.Error(), "invalid restaurant")
}

func TestWithDefaults(t *testing.T) {
	m := model.Movie{ID: 1}.WithDefaults()
	assert.NotNil(t, m.Genres)
	assert.Empty(t, m.Type)

	r := model.Restaurant{ID: 1, Price: model.PriceHigh}.WithDefaults()
	assert.Equal(t, model.PriceHigh, r.Price)
	assert.NotNil(t, r.Cuisine)
}

func TestUnmarshalStoredMovieDefaultsOnlyMissingKeys(t *testing.T) {
	var ms []model.Movie
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":1,"title":"a","image":"a.png"},
		{"id":2,"title":"b","image":"b.png","type":"","imagePosition":"","genres":null},
		{"id":3,"title":"c","image":"c.png","type":null,"imagePosition":"top"}
	]`), &ms))
	require.Len(t, ms, 3)

	assert.Equal(t, model.TypeFilm, ms[0].Type)
	assert.Equal(t, model.DefaultImagePosition, ms[0].ImagePosition)
	assert.Equal(t, []string{}, ms[0].Genres)

	assert.Equal(t, "", ms[1].Type)
	assert.Equal(t, "", ms[1].ImagePosition)
	assert.Equal(t, []string{}, ms[1].Genres)

	assert.Equal(t, model.TypeFilm, ms[2].Type)
	assert.Equal(t, "top", ms[2].ImagePosition)
}

func TestUnmarshalStoredRestaurantKeepsEmptyPosition(t *testing.T) {
	var r model.Restaurant
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Noma","image":"n.png","imagePosition":""}`), &r))
	assert.Equal(t, "", r.ImagePosition)
	assert.Equal(t, []string{}, r.Cuisine)

	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"name":"Geranium","image":"g.png"}`), &r))
	assert.Equal(t, model.DefaultImagePosition, r.ImagePosition)
}

func TestUnmarshalStoredMovieWrongTypeFails(t *testing.T) {
	var m model.Movie
	assert.Error(t, json.Unmarshal([]byte(`{"id":"one"}`), &m))
}

func TestDecodeMovieKeysAreCaseSensitive(t *testing.T) {
	_, err := model.DecodeMovie(strings.NewReader(`{"ID":1,"TITLE":"Dune","IMAGE":"dune.png"}`))
	got := fields(t, err)
	assert.Equal(t, map[string]string{
		"id":    "id is required",
		"title": "title is required",
		"image": "image is required",
	}, got)
}

func TestDecodeMovieMiscasedKeyIsIgnored(t *testing.T) {
	m, err := model.DecodeMovie(strings.NewReader(`{"id":1,"title":"Dune","image":"d.png","Seen":"yes","Type":"Anime"}`))
	require.NoError(t, err)
	assert.False(t, m.Seen)
	assert.Equal(t, model.TypeFilm, m.Type)
}
