// Package search resolves property searches: the store evaluates the text and
// type match, numeric ranges and the map radius are applied to what it returns.
package search

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
)

// Point is a map position
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Filter is a parsed property search
type Filter struct {
	Query       model.PropertyQuery
	MinPrice    *float64
	MaxPrice    *float64
	MinBedrooms *int
	RadiusKm    float64
	// Center overrides geocoding of the search term
	Center *Point
}

// ParseFilter reads a filter from query parameters. Unparseable and non-finite
// values leave the matching bound unset, as does the "all" placeholder.
func ParseFilter(values url.Values) Filter {
	f := Filter{
		Query: model.PropertyQuery{
			Search: values.Get("search"),
			Type:   values.Get("type"),
		},
		MinPrice:    parseFloat(values.Get("minPrice")),
		MaxPrice:    parseFloat(values.Get("maxPrice")),
		MinBedrooms: parseInt(values.Get("bedrooms")),
	}

	if r := parseFloat(values.Get("radiusKm")); r != nil && *r > 0 {
		f.RadiusKm = *r
	}

	lat, lng := parseFloat(values.Get("lat")), parseFloat(values.Get("lng"))
	if lat != nil && lng != nil {
		f.Center = &Point{Lat: *lat, Lng: *lng}
	}
	return f
}

// Match reports whether p satisfies the numeric bounds
func (f Filter) Match(p model.Property) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	return true
}

// Apply keeps the properties that satisfy the numeric bounds, and when center is
// set and a radius was asked for, lie within RadiusKm of it. Order is preserved.
func (f Filter) Apply(properties []model.Property, center *Point) []model.Property {
	out := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if !f.Match(p) {
			continue
		}
		if center != nil && f.RadiusKm > 0 &&
			Distance(center.Lat, center.Lng, p.Location.Lat, p.Location.Lng) > f.RadiusKm {
			continue
		}
		out = append(out, p)
	}
	return out
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, model.TypeAll) {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, model.TypeAll) {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
