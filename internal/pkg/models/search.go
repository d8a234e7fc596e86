package models

import (
	"time"
)

// SearchQuery carries ride search criteria. Location coordinates are
// optional and independent of the location text; matching rules for the
// combinations live in the search usecase.
type SearchQuery struct {
	FromLocation string      `json:"from_location,omitempty" query:"from_location"`
	FromCoord    *Coordinate `json:"from_coord,omitempty"`
	ToLocation   string      `json:"to_location,omitempty" query:"to_location"`
	ToCoord      *Coordinate `json:"to_coord,omitempty"`

	DepartureDate *time.Time `json:"departure_date,omitempty"`
	Passengers    *int       `json:"passengers,omitempty"`
	MaxPrice      *float64   `json:"max_price,omitempty"`
	RadiusKm      int        `json:"radius_km"`
	AllowSmoking  bool       `json:"allow_smoking"`
	AllowPets     bool       `json:"allow_pets"`
}

// HasLocation reports whether the query names at least one endpoint,
// which is what makes a search meaningful enough to run and record.
func (q *SearchQuery) HasLocation() bool {
	return q.FromLocation != "" || q.ToLocation != ""
}

// SearchHistoryEntry is a snapshot of a past query kept in the session
type SearchHistoryEntry struct {
	FromLocation string      `json:"from_location,omitempty"`
	FromCoord    *Coordinate `json:"from_coord,omitempty"`
	ToLocation   string      `json:"to_location,omitempty"`
	ToCoord      *Coordinate `json:"to_coord,omitempty"`

	DepartureDate *time.Time `json:"departure_date,omitempty"`
	Passengers    *int       `json:"passengers,omitempty"`
	MaxPrice      *float64   `json:"max_price,omitempty"`
	RadiusKm      int        `json:"radius_km"`
	AllowSmoking  bool       `json:"allow_smoking"`
	AllowPets     bool       `json:"allow_pets"`

	SearchedAt time.Time `json:"searched_at"`
}

// SearchResult is the outcome of a search request. History is populated
// instead of Trips when the query named no location.
type SearchResult struct {
	Trips   []*Trip              `json:"trips"`
	History []SearchHistoryEntry `json:"history,omitempty"`
}
