package domain

import "strings"

// Catalog entities are immutable once loaded; all monetary values are in
// whole currency units (INR), durations in hours, ratings clamped to 1..5.

type Attraction struct {
	ID          string
	Name        string
	Destination string
	Lat, Lng    float64
	EntryFee    float64 // per person
	Duration    float64 // hours
	Rating      float64
	Category    string // sightseeing|food|activity|...
}

type Hotel struct {
	ID            string
	Name          string
	Area          string
	PricePerNight float64
	Rating        float64
}

type Restaurant struct {
	ID            string
	Name          string
	Cuisine       string
	CostPerPerson float64
	Rating        float64
}

func (r Restaurant) Vegetarian() bool {
	return strings.EqualFold(r.Cuisine, "vegetarian")
}

type Coords struct{ Lat, Lng float64 }

type Catalog struct {
	Destination string
	Center      *Coords
	Attractions []Attraction
	Hotels      []Hotel
	Restaurants []Restaurant
}

type DestinationSummary struct {
	Name        string `json:"name"`
	Attractions int    `json:"attractions"`
	Hotels      int    `json:"hotels"`
	Restaurants int    `json:"restaurants"`
}
