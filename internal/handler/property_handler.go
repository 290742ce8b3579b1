package handler

import (
	"context"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Gnanasekark/Online-property-listing/internal/middleware"
	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/search"
	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"github.com/Gnanasekark/Online-property-listing/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// PropertyForm is the multipart form used to create and edit listings.
// Numbers arrive as text and are parsed leniently.
type PropertyForm struct {
	Title       string `form:"title" validate:"required"`
	Type        string `form:"type" validate:"required"`
	Description string `form:"description"`
	Price       string `form:"price" validate:"required"`
	SquareFeet  string `form:"squareFeet"`
	Bedrooms    string `form:"bedrooms"`
	Bathrooms   string `form:"bathrooms"`
	Lat         string `form:"lat"`
	Lng         string `form:"lng"`
	Address     string `form:"address"`
	City        string `form:"city"`
	State       string `form:"state"`
}

// apply copies the form onto p. Coordinates that are missing, zero or
// unparseable keep the values p already has.
func (f PropertyForm) apply(p *model.Property) error {
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || !finite(price) || price < 0 {
		return fmt.Errorf("price must be a non-negative number")
	}

	p.Title = strings.TrimSpace(f.Title)
	p.Type = strings.TrimSpace(f.Type)
	p.Description = f.Description
	p.Price = price
	p.SquareFeet = floatOrZero(f.SquareFeet)
	p.Bedrooms = intOrZero(f.Bedrooms)
	p.Bathrooms = intOrZero(f.Bathrooms)

	loc := model.Location{
		Address: strings.TrimSpace(f.Address),
		City:    strings.TrimSpace(f.City),
		State:   strings.TrimSpace(f.State),
		Lat:     p.Location.Lat,
		Lng:     p.Location.Lng,
	}
	if v := floatOrZero(f.Lat); v != 0 {
		loc.Lat = v
	}
	if v := floatOrZero(f.Lng); v != 0 {
		loc.Lng = v
	}
	p.Location = loc.WithDefaults()
	return nil
}

// floatOrZero parses s, treating text, NaN and infinities as zero
func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !finite(v) {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func intOrZero(s string) int {
	return int(floatOrZero(s))
}

// uploadedImages returns the files sent as "images"; non multipart requests have none
func uploadedImages(c echo.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

// bindProperty parses the form and stores any uploaded images
func (h *Handler) bindProperty(c echo.Context, p *model.Property) (stored []string, status int, err error) {
	var form PropertyForm
	if err := bindAndValidate(c, &form); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if err := form.apply(p); err != nil {
		return nil, http.StatusBadRequest, err
	}

	files := uploadedImages(c)
	if len(files) > h.maxImages {
		return nil, http.StatusBadRequest, fmt.Errorf("at most %d images are allowed", h.maxImages)
	}
	if len(files) == 0 || h.images == nil {
		return nil, 0, nil
	}

	stored, err = h.images.SaveAll(files)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return stored, 0, nil
}

// CreateProperty publishes a listing owned by the caller
func (h *Handler) CreateProperty(c echo.Context) error {
	log := logger.FromEcho(c)
	claims := middleware.ClaimsFromContext(c)

	property := &model.Property{OwnerID: claims.UserID}
	images, status, err := h.bindProperty(c, property)
	if err != nil {
		log.Warn("Invalid property request", zap.Error(err))
		return c.JSON(status, echo.Map{"error": err.Error()})
	}
	property.Images = datatypes.JSONSlice[string](images)
	if property.Images == nil {
		property.Images = datatypes.JSONSlice[string]{}
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.properties.Create(c.Request().Context(), property); err != nil {
		h.discardImages(images)
		log.Error("Failed to create property", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create property"})
	}

	prometheus.PropertyOperationCounter.WithLabelValues("create").Inc()
	log.Info("Property created",
		zap.String("property_id", property.ID),
		zap.String("owner_id", property.OwnerID),
		zap.Int("images", len(property.Images)))

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Property added successfully",
		"property": property,
	})
}

// ListProperties returns the store matches with their owners' contact details,
// narrowed by the numeric filters
func (h *Handler) ListProperties(c echo.Context) error {
	log := logger.FromEcho(c)
	ctx := c.Request().Context()
	filter := search.ParseFilter(c.QueryParams())

	defer prometheus.TrackDBOperation("query")(time.Now())
	properties, err := h.properties.Find(ctx, filter.Query)
	if err != nil {
		log.Error("Failed to list properties", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch properties"})
	}

	listings, err := h.withOwners(ctx, filter.Apply(properties, filter.Center))
	if err != nil {
		log.Error("Failed to load property owners", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, listings)
}

// SearchProperties runs the full search, geocoding the term for the map center
func (h *Handler) SearchProperties(c echo.Context) error {
	log := logger.FromEcho(c)
	ctx := c.Request().Context()
	filter := search.ParseFilter(c.QueryParams())

	result, err := h.resolver.Resolve(ctx, filter)
	if err != nil {
		log.Error("Failed to search properties", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to search properties"})
	}

	listings, err := h.withOwners(ctx, result.Properties)
	if err != nil {
		log.Error("Failed to load property owners", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to search properties"})
	}

	prometheus.PropertyOperationCounter.WithLabelValues("search").Inc()
	prometheus.SearchResultsHistogram.Observe(float64(len(listings)))
	log.Debug("Search resolved",
		zap.String("search", filter.Query.SearchTerm()),
		zap.Int("count", len(listings)),
		zap.Bool("centered", result.Center != nil))

	return c.JSON(http.StatusOK, echo.Map{
		"properties": listings,
		"count":      len(listings),
		"center":     result.Center,
	})
}

// withOwners joins each property with its owner. Missing owners are reported as unavailable.
func (h *Handler) withOwners(ctx context.Context, properties []model.Property) ([]model.PropertyListing, error) {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, p := range properties {
		if p.OwnerID != "" && !seen[p.OwnerID] {
			seen[p.OwnerID] = true
			ids = append(ids, p.OwnerID)
		}
	}

	users, err := h.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	owners := make(map[string]*model.User, len(users))
	for i := range users {
		owners[users[i].ID] = &users[i]
	}

	listings := make([]model.PropertyListing, 0, len(properties))
	for _, p := range properties {
		listings = append(listings, model.NewPropertyListing(p, owners[p.OwnerID]))
	}
	return listings, nil
}

// MyProperties lists the caller's own listings
func (h *Handler) MyProperties(c echo.Context) error {
	claims := middleware.ClaimsFromContext(c)

	properties, err := h.properties.FindByOwner(c.Request().Context(), claims.UserID)
	if err != nil {
		logger.FromEcho(c).Error("Failed to list owner properties", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

// GetProperty returns one listing
func (h *Handler) GetProperty(c echo.Context) error {
	property, err := h.properties.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return storeError(c, logger.FromEcho(c), err, "property not found", "failed to fetch property")
	}
	return c.JSON(http.StatusOK, property)
}

// ownedProperty loads the property in the path and checks the caller owns it.
// It writes the response itself when the check fails.
func (h *Handler) ownedProperty(c echo.Context) (*model.Property, bool, error) {
	log := logger.FromEcho(c)
	claims := middleware.ClaimsFromContext(c)

	property, err := h.properties.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return nil, false, storeError(c, log, err, "property not found", "failed to fetch property")
	}
	if !property.OwnedBy(claims.UserID) {
		log.Warn("Property ownership check failed",
			zap.String("property_id", property.ID),
			zap.String("user_id", claims.UserID))
		prometheus.RecordOwnershipDenied("property")
		return nil, false, c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized to modify this property"})
	}
	return property, true, nil
}

// UpdateProperty edits a listing. New images replace the old ones.
func (h *Handler) UpdateProperty(c echo.Context) error {
	log := logger.FromEcho(c)

	property, ok, err := h.ownedProperty(c)
	if !ok {
		return err
	}

	images, status, err := h.bindProperty(c, property)
	if err != nil {
		log.Warn("Invalid property update", zap.Error(err))
		return c.JSON(status, echo.Map{"error": err.Error()})
	}

	var replaced []string
	if len(images) > 0 {
		replaced = []string(property.Images)
		property.Images = datatypes.JSONSlice[string](images)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.properties.Update(c.Request().Context(), property); err != nil {
		h.discardImages(images)
		return storeError(c, log, err, "property not found", "failed to update property")
	}
	h.discardImages(replaced)

	prometheus.PropertyOperationCounter.WithLabelValues("update").Inc()
	log.Info("Property updated", zap.String("property_id", property.ID))

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  "Property updated",
		"property": property,
	})
}

// DeleteProperty removes a listing and its images
func (h *Handler) DeleteProperty(c echo.Context) error {
	log := logger.FromEcho(c)

	property, ok, err := h.ownedProperty(c)
	if !ok {
		return err
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.properties.Delete(c.Request().Context(), property.ID); err != nil {
		return storeError(c, log, err, "property not found", "failed to delete property")
	}
	h.discardImages(property.Images)

	prometheus.PropertyOperationCounter.WithLabelValues("delete").Inc()
	log.Info("Property deleted", zap.String("property_id", property.ID))

	return c.JSON(http.StatusOK, echo.Map{"message": "Property deleted"})
}

func (h *Handler) discardImages(paths []string) {
	if h.images != nil && len(paths) > 0 {
		h.images.RemoveAll(paths)
	}
}
