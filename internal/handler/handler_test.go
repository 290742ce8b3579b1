package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"github.com/Gnanasekark/Online-property-listing/internal/repository/gormstore"
	"github.com/Gnanasekark/Online-property-listing/pkg/database"
	"github.com/Gnanasekark/Online-property-listing/pkg/geocoder"
	"github.com/Gnanasekark/Online-property-listing/pkg/jwtutil"
	"github.com/Gnanasekark/Online-property-listing/pkg/storage"
	"github.com/Gnanasekark/Online-property-listing/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"
)

type fakePlaces struct {
	place *geocoder.Place
	err   error
}

func (f *fakePlaces) Search(context.Context, string) (*geocoder.Place, error) {
	return f.place, f.err
}

type testApp struct {
	e         *echo.Echo
	store     *repository.Store
	jwt       *jwtutil.JWTUtil
	places    *fakePlaces
	uploadDir string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), logger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.MigrateModels(db, gormstore.Models()...))

	uploadDir := t.TempDir()
	images, err := storage.NewImageStore(uploadDir, "/uploads", 1<<20)
	require.NoError(t, err)

	app := &testApp{
		e:         echo.New(),
		store:     gormstore.New(db),
		jwt:       jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: "handler-test", ExpirationHours: 1}),
		places:    &fakePlaces{},
		uploadDir: uploadDir,
	}
	app.e.Validator = validate.New()

	New(Options{
		Store:     app.store,
		JWT:       app.jwt,
		Places:    app.places,
		Images:    images,
		MaxImages: 2,
	}).Register(app.e)
	return app
}

// user creates an account directly in the store and returns it with a token
func (a *testApp) user(t *testing.T, name, role string) (*model.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &model.User{Name: name, Email: strings.ToLower(name) + "@example.com", Password: string(hash), Role: role}
	require.NoError(t, a.store.Users.Create(context.Background(), u))

	token, err := a.jwt.GenerateToken(u.ID, u.Email, u.Name, u.Role)
	require.NoError(t, err)
	return u, token
}

func (a *testApp) do(t *testing.T, method, target string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) doJSON(t *testing.T, method, target string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	return a.do(t, method, target, body, echo.MIMEApplicationJSON, token)
}

// propertyForm encodes fields and images as multipart/form-data
func propertyForm(t *testing.T, fields map[string]string, images map[string]string) (io.Reader, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, content := range images {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type createPropertyResponse struct {
	Message  string         `json:"message"`
	Property model.Property `json:"property"`
}

func (a *testApp) createProperty(t *testing.T, token string, fields map[string]string, images map[string]string) model.Property {
	t.Helper()
	body, ct := propertyForm(t, fields, images)
	rec := a.do(t, http.MethodPost, "/api/properties/add", body, ct, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[createPropertyResponse](t, rec).Property
}

func TestHealthAndRoot(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/health", nil, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/", nil, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "running")
}

func TestSignupAndLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.doJSON(t, http.MethodPost, "/api/auth/signup", echo.Map{
		"name": "Bea", "email": "Bea@Example.com", "password": "pw",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	signup := decode[struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}](t, rec)
	assert.NotEmpty(t, signup.Token)
	assert.Equal(t, model.RoleBuyer, signup.User["role"], "role defaults to buyer")
	assert.Equal(t, "bea@example.com", signup.User["email"])
	assert.NotContains(t, signup.User, "password")

	claims, err := app.jwt.ValidateToken(signup.Token)
	require.NoError(t, err)
	assert.Equal(t, signup.User["id"], claims.UserID)

	rec = app.doJSON(t, http.MethodPost, "/api/auth/signup", echo.Map{
		"name": "Bea again", "email": "bea@example.com", "password": "pw",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/auth/signup", echo.Map{
		"name": "Eve", "email": "eve@example.com", "password": "pw", "role": "admin",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/auth/login", echo.Map{"email": "bea@example.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/auth/login", echo.Map{"email": "nobody@example.com", "password": "pw"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/auth/login", echo.Map{"email": "BEA@example.com", "password": "pw"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[struct {
		Token string `json:"token"`
	}](t, rec).Token

	rec = app.do(t, http.MethodGet, "/api/auth/me", nil, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bea", decode[model.User](t, rec).Name)

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodGet, "/api/auth/me", nil, "", "").Code)
}

func TestPropertyLifecycle(t *testing.T) {
	app := newTestApp(t)
	owner, ownerToken := app.user(t, "Olive", model.RoleOwner)
	_, otherToken := app.user(t, "Oscar", model.RoleOwner)
	_, buyerToken := app.user(t, "Bob", model.RoleBuyer)

	fields := map[string]string{
		"title": "Sea view flat", "type": "apartment", "price": "250000",
		"bedrooms": "2", "lat": "19.07", "lng": "72.87", "city": "Mumbai",
	}

	// buyers cannot list
	body, ct := propertyForm(t, fields, nil)
	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodPost, "/api/properties/add", body, ct, buyerToken).Code)

	// anonymous callers cannot list
	body, ct = propertyForm(t, fields, nil)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/api/properties/add", body, ct, "").Code)

	// required fields
	body, ct = propertyForm(t, map[string]string{"title": "No price", "type": "villa"}, nil)
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/api/properties/add", body, ct, ownerToken).Code)

	// too many images
	body, ct = propertyForm(t, fields, map[string]string{"a.png": "a", "b.png": "b", "c.png": "c"})
	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodPost, "/api/properties/add", body, ct, ownerToken).Code)

	// prices must be finite
	for _, price := range []string{"Inf", "-Inf", "NaN", "Infinity"} {
		body, ct = propertyForm(t, map[string]string{"title": "Bad price", "type": "villa", "price": price}, nil)
		rec := app.do(t, http.MethodPost, "/api/properties/add", body, ct, ownerToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code, price)
	}

	// other non-finite numbers are stored as zero and the listing stays readable
	odd := app.createProperty(t, ownerToken, map[string]string{
		"title": "Odd numbers", "type": "villa", "price": "10",
		"squareFeet": "Inf", "bedrooms": "NaN", "lat": "NaN", "lng": "-Infinity",
	}, nil)
	assert.Zero(t, odd.SquareFeet)
	assert.Zero(t, odd.Bedrooms)
	assert.Zero(t, odd.Location.Lat)
	assert.Zero(t, odd.Location.Lng)

	rec := app.do(t, http.MethodGet, "/api/properties", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decode[[]model.PropertyListing](t, rec), 1)
	assert.Equal(t, http.StatusOK, app.do(t, http.MethodDelete, "/api/properties/"+odd.ID, nil, "", ownerToken).Code)

	created := app.createProperty(t, ownerToken, fields, map[string]string{"front.png": "png-bytes"})
	assert.Equal(t, owner.ID, created.OwnerID)
	assert.Equal(t, 250000.0, created.Price)
	assert.Equal(t, 2, created.Bedrooms)
	assert.Equal(t, "Mumbai", created.Location.City)
	assert.Equal(t, model.NotAvailable, created.Location.State)
	assert.Equal(t, model.NotAvailable, created.Location.Address)
	require.Len(t, created.Images, 1)
	assert.True(t, strings.HasPrefix(created.Images[0], "/uploads/"))
	oldImage := filepath.Join(app.uploadDir, filepath.Base(created.Images[0]))
	assert.FileExists(t, oldImage)

	rec = app.do(t, http.MethodGet, "/api/properties/"+created.ID, nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sea view flat", decode[model.Property](t, rec).Title)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/properties/missing", nil, "", "").Code)

	// someone else's listing
	update := map[string]string{"title": "Hijacked", "type": "apartment", "price": "1"}
	body, ct = propertyForm(t, update, nil)
	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodPut, "/api/properties/"+created.ID, body, ct, otherToken).Code)
	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodDelete, "/api/properties/"+created.ID, nil, "", otherToken).Code)

	// owner update keeps coordinates when none are sent and replaces images
	update = map[string]string{"title": "Renovated flat", "type": "apartment", "price": "300000", "lat": "0", "lng": "bogus"}
	body, ct = propertyForm(t, update, map[string]string{"new.jpg": "jpg-bytes"})
	rec = app.do(t, http.MethodPut, "/api/properties/"+created.ID, body, ct, ownerToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decode[createPropertyResponse](t, rec).Property
	assert.Equal(t, "Renovated flat", updated.Title)
	assert.Equal(t, 300000.0, updated.Price)
	assert.Equal(t, 19.07, updated.Location.Lat)
	assert.Equal(t, 72.87, updated.Location.Lng)
	require.Len(t, updated.Images, 1)
	assert.NotEqual(t, created.Images[0], updated.Images[0])
	assert.NoFileExists(t, oldImage)

	rec = app.do(t, http.MethodGet, "/api/properties/mine", nil, "", ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Property](t, rec), 1)

	rec = app.do(t, http.MethodGet, "/api/properties/mine", nil, "", otherToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Property](t, rec))

	assert.Equal(t, http.StatusOK, app.do(t, http.MethodDelete, "/api/properties/"+created.ID, nil, "", ownerToken).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/properties/"+created.ID, nil, "", "").Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodDelete, "/api/properties/"+created.ID, nil, "", ownerToken).Code)

	entries, err := os.ReadDir(app.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "deleting a listing removes its images")
}

func TestListAndSearchProperties(t *testing.T) {
	app := newTestApp(t)
	owner, ownerToken := app.user(t, "Olive", model.RoleOwner)

	app.createProperty(t, ownerToken, map[string]string{
		"title": "Pune villa", "type": "villa", "price": "500", "bedrooms": "4",
		"city": "Pune", "lat": "18.52", "lng": "73.85",
	}, nil)
	app.createProperty(t, ownerToken, map[string]string{
		"title": "Small flat", "type": "apartment", "price": "100", "bedrooms": "1",
		"description": "Close to PUNE station", "lat": "18.53", "lng": "73.87",
	}, nil)
	app.createProperty(t, ownerToken, map[string]string{
		"title": "Mumbai loft", "type": "apartment", "price": "900", "bedrooms": "2",
		"city": "Mumbai", "lat": "19.07", "lng": "72.87",
	}, nil)

	// a listing whose owner account no longer exists
	orphan := &model.Property{Title: "Orphan", Type: "villa", Price: 10, OwnerID: "gone", Location: model.Location{}.WithDefaults()}
	require.NoError(t, app.store.Properties.Create(context.Background(), orphan))

	list := func(q url.Values) []model.PropertyListing {
		rec := app.do(t, http.MethodGet, "/api/properties?"+q.Encode(), nil, "", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		return decode[[]model.PropertyListing](t, rec)
	}

	assert.Len(t, list(url.Values{}), 4)
	assert.Len(t, list(url.Values{"search": {"pune"}}), 2)
	assert.Len(t, list(url.Values{"search": {"pune"}, "type": {"villa"}}), 1)
	assert.Len(t, list(url.Values{"type": {"all"}}), 4)
	assert.Len(t, list(url.Values{"search": {"   "}}), 4)
	assert.Len(t, list(url.Values{"search": {"pune"}, "minPrice": {"200"}}), 1)
	assert.Len(t, list(url.Values{"maxPrice": {"100"}}), 2)
	assert.Len(t, list(url.Values{"bedrooms": {"2"}}), 2)
	assert.Len(t, list(url.Values{"bedrooms": {"all"}, "minPrice": {"abc"}}), 4)

	var withOwner, withoutOwner *model.PropertyListing
	for _, l := range list(url.Values{"type": {"villa"}}) {
		l := l
		if l.Title == "Orphan" {
			withoutOwner = &l
		} else {
			withOwner = &l
		}
	}
	require.NotNil(t, withOwner)
	require.NotNil(t, withoutOwner)
	require.NotNil(t, withOwner.OwnerID)
	assert.Equal(t, owner.ID, *withOwner.OwnerID)
	assert.Equal(t, "Olive", withOwner.OwnerName)
	assert.Nil(t, withoutOwner.OwnerID)
	assert.Equal(t, "Unavailable", withoutOwner.OwnerName)
	assert.Equal(t, "Unavailable", withoutOwner.OwnerEmail)

	type searchResponse struct {
		Properties []model.PropertyListing `json:"properties"`
		Count      int                     `json:"count"`
		Center     *struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"center"`
	}

	app.places.place = &geocoder.Place{Lat: 18.5204, Lng: 73.8567, DisplayName: "Pune"}
	rec := app.do(t, http.MethodGet, "/api/properties/search?search=pune&radiusKm=25", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[searchResponse](t, rec)
	assert.Equal(t, 2, res.Count)
	require.NotNil(t, res.Center)
	assert.Equal(t, 18.5204, res.Center.Lat)

	// radius drops Mumbai when searching around Pune for any apartment
	app.places.place = &geocoder.Place{Lat: 18.5204, Lng: 73.8567}
	rec = app.do(t, http.MethodGet, "/api/properties/search?search=a&type=apartment&radiusKm=25", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[searchResponse](t, rec)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "Small flat", res.Properties[0].Title)

	// a non-finite explicit center is ignored
	app.places.place = nil
	rec = app.do(t, http.MethodGet, "/api/properties/search?search=pune&lat=NaN&lng=0&radiusKm=5", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res = decode[searchResponse](t, rec)
	assert.Equal(t, 2, res.Count)
	assert.Nil(t, res.Center)

	// geocoder failure never fails the search
	app.places.place, app.places.err = nil, errors.New("rate limited")
	rec = app.do(t, http.MethodGet, "/api/properties/search?search=pune", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[searchResponse](t, rec)
	assert.Equal(t, 2, res.Count)
	assert.Nil(t, res.Center)
	assert.Contains(t, rec.Body.String(), `"center":null`)
}

func TestMessageFlow(t *testing.T) {
	app := newTestApp(t)
	owner, ownerToken := app.user(t, "Olive", model.RoleOwner)
	_, otherToken := app.user(t, "Oscar", model.RoleOwner)
	buyer, buyerToken := app.user(t, "Bob", model.RoleBuyer)

	property := app.createProperty(t, ownerToken, map[string]string{"title": "Pune villa", "type": "villa", "price": "500"}, nil)

	// validation
	rec := app.doJSON(t, http.MethodPost, "/api/messages", echo.Map{"name": "Ann", "message": "hi"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.doJSON(t, http.MethodPost, "/api/messages", echo.Map{
		"name": "Ann", "email": "ann@example.com", "message": "hi", "propertyId": "missing",
	}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// anonymous enquiry; the listing decides the recipient
	rec = app.doJSON(t, http.MethodPost, "/api/messages", echo.Map{
		"name": "Ann", "email": "ann@example.com", "phone": "123", "message": "Is it available?",
		"propertyId": property.ID, "ownerId": "someone-else", "propertyTitle": "fake",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := decode[struct {
		Success bool          `json:"success"`
		Data    model.Message `json:"data"`
	}](t, rec)
	assert.True(t, first.Success)
	assert.Equal(t, model.StatusUnread, first.Data.Status)
	assert.Equal(t, owner.ID, first.Data.OwnerID)
	assert.Equal(t, "Pune villa", first.Data.PropertyTitle)
	assert.Empty(t, first.Data.UserID)

	// signed in sender is attached
	rec = app.doJSON(t, http.MethodPost, "/api/messages", echo.Map{
		"name": "Bob", "email": "bob@example.com", "message": "Can I visit?", "propertyId": property.ID,
	}, buyerToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	second := decode[struct {
		Data model.Message `json:"data"`
	}](t, rec).Data
	assert.Equal(t, buyer.ID, second.UserID)

	// listing is owner scoped
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodGet, "/api/messages", nil, "", "").Code)

	rec = app.do(t, http.MethodGet, "/api/messages", nil, "", ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Message](t, rec), 2)

	rec = app.do(t, http.MethodGet, "/api/messages", nil, "", otherToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]model.Message](t, rec))

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/api/messages?status=archived", nil, "", ownerToken).Code)

	// only the recipient may mark read
	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodPatch, "/api/messages/"+first.Data.ID+"/read", nil, "", otherToken).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodPatch, "/api/messages/missing/read", nil, "", ownerToken).Code)

	rec = app.do(t, http.MethodPatch, "/api/messages/"+first.Data.ID+"/read", nil, "", ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StatusRead, decode[model.Message](t, rec).Status)

	// marking twice is a no-op
	rec = app.do(t, http.MethodPut, "/api/messages/"+first.Data.ID+"/read", nil, "", ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StatusRead, decode[model.Message](t, rec).Status)

	rec = app.do(t, http.MethodGet, "/api/messages?status=unread", nil, "", ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	unread := decode[[]model.Message](t, rec)
	require.Len(t, unread, 1)
	assert.Equal(t, second.ID, unread[0].ID)

	rec = app.do(t, http.MethodGet, "/api/dashboard", nil, "", ownerToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalProperties":1,"totalEnquiries":2,"unreadEnquiries":1}`, rec.Body.String())

	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodGet, "/api/dashboard", nil, "", buyerToken).Code)
}

func TestGeocode(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/api/geocode", nil, "", "").Code)

	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/api/geocode?q=atlantis", nil, "", "").Code)

	app.places.err = errors.New("down")
	assert.Equal(t, http.StatusBadGateway, app.do(t, http.MethodGet, "/api/geocode?q=pune", nil, "", "").Code)

	app.places.err = nil
	app.places.place = &geocoder.Place{Lat: 18.52, Lng: 73.85, DisplayName: "Pune, India"}
	rec := app.do(t, http.MethodGet, "/api/geocode?q=pune", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"lat":18.52,"lng":73.85,"displayName":"Pune, India"}`, rec.Body.String())
}
