package search

import (
	"context"
	"fmt"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"go.uber.org/zap"
)

// Geocoder turns a free-text place into a point. A nil point with a nil error
// means nothing matched.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*Point, error)
}

// Result is a resolved search
type Result struct {
	Properties []model.Property
	Center     *Point
}

// Resolver runs property searches
type Resolver struct {
	properties repository.PropertyRepository
	geocoder   Geocoder
}

// NewResolver creates a resolver. geocoder may be nil to disable map centering.
func NewResolver(properties repository.PropertyRepository, geocoder Geocoder) *Resolver {
	return &Resolver{properties: properties, geocoder: geocoder}
}

// Resolve fetches the properties matching the store query, then applies the
// numeric ranges and radius. Geocoding failures only leave the center empty.
func (r *Resolver) Resolve(ctx context.Context, f Filter) (*Result, error) {
	properties, err := r.properties.Find(ctx, f.Query)
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}

	center := f.Center
	if center == nil {
		center = r.locate(ctx, f.Query.SearchTerm())
	}

	return &Result{
		Properties: f.Apply(properties, center),
		Center:     center,
	}, nil
}

func (r *Resolver) locate(ctx context.Context, term string) *Point {
	if r.geocoder == nil || term == "" {
		return nil
	}
	point, err := r.geocoder.Geocode(ctx, term)
	if err != nil {
		logger.FromContext(ctx).Warn("Geocoding failed", zap.String("query", term), zap.Error(err))
		return nil
	}
	return point
}

// GeocoderFunc adapts a function to the Geocoder interface
type GeocoderFunc func(ctx context.Context, query string) (*Point, error)

// Geocode calls f
func (f GeocoderFunc) Geocode(ctx context.Context, query string) (*Point, error) {
	return f(ctx, query)
}
