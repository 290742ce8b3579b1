package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"github.com/Gnanasekark/Online-property-listing/internal/search"
	"github.com/Gnanasekark/Online-property-listing/pkg/geocoder"
	"github.com/Gnanasekark/Online-property-listing/pkg/jwtutil"
	"github.com/Gnanasekark/Online-property-listing/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PlaceFinder geocodes free text. A nil place with a nil error means no match.
type PlaceFinder interface {
	Search(ctx context.Context, query string) (*geocoder.Place, error)
}

// ImageStore persists uploaded listing images
type ImageStore interface {
	SaveAll(files []*multipart.FileHeader) ([]string, error)
	RemoveAll(publicPaths []string)
}

// Options wires the handler dependencies
type Options struct {
	Store *repository.Store
	JWT   *jwtutil.JWTUtil
	// Places may be nil to disable geocoding
	Places    PlaceFinder
	Images    ImageStore
	MaxImages int
}

// Handler serves the listing API
type Handler struct {
	users      repository.UserRepository
	properties repository.PropertyRepository
	messages   repository.MessageRepository
	jwt        *jwtutil.JWTUtil
	places     PlaceFinder
	images     ImageStore
	maxImages  int
	resolver   *search.Resolver
}

// New creates a handler
func New(opts Options) *Handler {
	h := &Handler{
		users:      opts.Store.Users,
		properties: opts.Store.Properties,
		messages:   opts.Store.Messages,
		jwt:        opts.JWT,
		places:     opts.Places,
		images:     opts.Images,
		maxImages:  opts.MaxImages,
	}
	if h.maxImages <= 0 {
		h.maxImages = 5
	}

	var geo search.Geocoder
	if h.places != nil {
		geo = search.GeocoderFunc(h.geocode)
	}
	h.resolver = search.NewResolver(h.properties, geo)
	return h
}

// geocode looks a place up and counts the outcome
func (h *Handler) geocode(ctx context.Context, query string) (*search.Point, error) {
	place, err := h.places.Search(ctx, query)
	switch {
	case err != nil:
		prometheus.GeocodeCounter.WithLabelValues("error").Inc()
		return nil, err
	case place == nil:
		prometheus.GeocodeCounter.WithLabelValues("miss").Inc()
		return nil, nil
	default:
		prometheus.GeocodeCounter.WithLabelValues("hit").Inc()
		return &search.Point{Lat: place.Lat, Lng: place.Lng}, nil
	}
}

// storeError writes the response for a repository failure
func storeError(c echo.Context, log *zap.Logger, err error, notFound, failure string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFound})
	}
	log.Error(failure, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": failure})
}

// bindAndValidate binds the request into req and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.New("invalid request")
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}
