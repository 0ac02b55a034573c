package model

import "encoding/json"

// Conventional movie types. Any text is accepted; these are what the frontend offers.
const (
	TypeFilm  = "Film"
	TypeSerie = "Serie"
	TypeAnime = "Anime"
)

// Conventional restaurant price bands.
const (
	PriceLow  = "Low"
	PriceMid  = "Mid"
	PriceHigh = "High"
)

const DefaultImagePosition = "center"

// Kind names used in messages and metrics.
const (
	KindMovie      = "Movie"
	KindRestaurant = "Restaurant"
)

type Movie struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Image         string   `json:"image"`
	RatingDavid   int      `json:"ratingDavid"`
	RatingLena    int      `json:"ratingLena"`
	Seen          bool     `json:"seen"`
	Genres        []string `json:"genres"`
	ReleaseYear   string   `json:"releaseYear"`
	CreatedDate   string   `json:"createdDate"`
	Type          string   `json:"type"` // Film, Serie, Anime
	ImagePosition string   `json:"imagePosition"`
}

func (m Movie) RecordID() int64 { return m.ID }

// UnmarshalJSON fills defaults for keys that are absent or null. Explicit empty strings are kept.
func (m *Movie) UnmarshalJSON(b []byte) error {
	type plain Movie
	v := plain{Genres: []string{}, Type: TypeFilm, ImagePosition: DefaultImagePosition}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Movie(v).WithDefaults()
	return nil
}

// WithDefaults turns a null genre list into an empty one.
func (m Movie) WithDefaults() Movie {
	if m.Genres == nil {
		m.Genres = []string{}
	}
	return m
}

type Restaurant struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	RatingDavid   int      `json:"ratingDavid"`
	RatingLena    int      `json:"ratingLena"`
	Visited       bool     `json:"visited"`
	City          string   `json:"city"`
	Cuisine       []string `json:"cuisine"`
	Price         string   `json:"price"` // Low, Mid, High
	CreatedDate   string   `json:"createdDate"`
	ImagePosition string   `json:"imagePosition"`
}

func (r Restaurant) RecordID() int64 { return r.ID }

func (r *Restaurant) UnmarshalJSON(b []byte) error {
	type plain Restaurant
	v := plain{Cuisine: []string{}, ImagePosition: DefaultImagePosition}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = Restaurant(v).WithDefaults()
	return nil
}

func (r Restaurant) WithDefaults() Restaurant {
	if r.Cuisine == nil {
		r.Cuisine = []string{}
	}
	return r
}
