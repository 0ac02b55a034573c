package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report json keys, not Go field names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := jsonName(f)
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldError describes one offending field of a record body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a body cannot be turned into a typed record.
type ValidationError struct {
	Kind   string
	Fields []FieldError
	Err    error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", strings.ToLower(e.Kind), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) add(field, msg string) {
	for _, f := range e.Fields {
		if f.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

type moviePayload struct {
	ID            *int64   `json:"id" validate:"required"`
	Title         *string  `json:"title" validate:"required"`
	Image         *string  `json:"image" validate:"required"`
	RatingDavid   *int     `json:"ratingDavid"`
	RatingLena    *int     `json:"ratingLena"`
	Seen          *bool    `json:"seen"`
	Genres        []string `json:"genres"`
	ReleaseYear   *string  `json:"releaseYear"`
	CreatedDate   *string  `json:"createdDate"`
	Type          *string  `json:"type"`
	ImagePosition *string  `json:"imagePosition"`
}

type restaurantPayload struct {
	ID            *int64   `json:"id" validate:"required"`
	Name          *string  `json:"name" validate:"required"`
	Image         *string  `json:"image" validate:"required"`
	RatingDavid   *int     `json:"ratingDavid"`
	RatingLena    *int     `json:"ratingLena"`
	Visited       *bool    `json:"visited"`
	City          *string  `json:"city"`
	Cuisine       []string `json:"cuisine"`
	Price         *string  `json:"price"`
	CreatedDate   *string  `json:"createdDate"`
	ImagePosition *string  `json:"imagePosition"`
}

// DecodeMovie reads one movie body, applying defaults to optional fields.
func DecodeMovie(r io.Reader) (Movie, error) {
	var p moviePayload
	if err := decodePayload(r, KindMovie, &p); err != nil {
		return Movie{}, err
	}
	m := Movie{
		ID:            *p.ID,
		Title:         *p.Title,
		Image:         *p.Image,
		RatingDavid:   deref(p.RatingDavid, 0),
		RatingLena:    deref(p.RatingLena, 0),
		Seen:          deref(p.Seen, false),
		Genres:        p.Genres,
		ReleaseYear:   deref(p.ReleaseYear, ""),
		CreatedDate:   deref(p.CreatedDate, ""),
		Type:          deref(p.Type, TypeFilm),
		ImagePosition: deref(p.ImagePosition, DefaultImagePosition),
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}
	return m, nil
}

// DecodeRestaurant reads one restaurant body, applying defaults to optional fields.
func DecodeRestaurant(r io.Reader) (Restaurant, error) {
	var p restaurantPayload
	if err := decodePayload(r, KindRestaurant, &p); err != nil {
		return Restaurant{}, err
	}
	rs := Restaurant{
		ID:            *p.ID,
		Name:          *p.Name,
		Image:         *p.Image,
		RatingDavid:   deref(p.RatingDavid, 0),
		RatingLena:    deref(p.RatingLena, 0),
		Visited:       deref(p.Visited, false),
		City:          deref(p.City, ""),
		Cuisine:       p.Cuisine,
		Price:         deref(p.Price, ""),
		CreatedDate:   deref(p.CreatedDate, ""),
		ImagePosition: deref(p.ImagePosition, DefaultImagePosition),
	}
	if rs.Cuisine == nil {
		rs.Cuisine = []string{}
	}
	return rs, nil
}

func decodePayload(r io.Reader, kind string, dst any) error {
	verr := &ValidationError{Kind: kind}

	body, err := io.ReadAll(r)
	if err != nil {
		verr.Err = err
		verr.add("body", "body could not be read")
		return verr
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		verr.add("body", "body must be a JSON object")
		return verr
	}
	// encoding/json matches keys case-insensitively; only exact keys count, others are unknown.
	known := exactKeys(raw, dst)
	b, err := json.Marshal(known)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		var te *json.UnmarshalTypeError
		if !errors.As(err, &te) {
			verr.add("body", "body must be a JSON object")
			return verr
		}
		// Unmarshal only reports the first mismatch.
		typeErrors(known, dst, verr)
		if len(verr.Fields) == 0 {
			verr.add("body", "body must be a JSON object")
			return verr
		}
	}

	if err := validate.Struct(dst); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			for _, fe := range ves {
				verr.add(fe.Field(), fmt.Sprintf("%s is required", fe.Field()))
			}
		} else {
			return err
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
}

// exactKeys keeps the entries of raw whose key is a json tag of dst's struct type.
func exactKeys(raw map[string]json.RawMessage, dst any) map[string]json.RawMessage {
	t := reflect.TypeOf(dst).Elem()
	out := make(map[string]json.RawMessage, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		if msg, ok := raw[name]; ok {
			out[name] = msg
		}
	}
	return out
}

// typeErrors decodes each key on its own against the matching payload field
// and records a field error for every mismatch.
func typeErrors(raw map[string]json.RawMessage, dst any, verr *ValidationError) {
	t := reflect.TypeOf(dst).Elem()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		msg, ok := raw[name]
		if !ok {
			continue
		}
		v := reflect.New(f.Type)
		if err := json.Unmarshal(msg, v.Interface()); err != nil {
			verr.add(name, fmt.Sprintf("%s must be %s", name, describe(f.Type)))
		}
	}
}

func describe(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		return "an integer"
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Slice:
		return "a list of strings"
	default:
		return "valid"
	}
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
