package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gnanasekark/Online-property-listing/internal/middleware"
	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"github.com/Gnanasekark/Online-property-listing/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=owner buyer"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) authResponse(c echo.Context, status int, user *model.User) error {
	token, err := h.jwt.GenerateToken(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		logger.FromEcho(c).Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}
	return c.JSON(status, echo.Map{"token": token, "user": user})
}

// Signup registers an account and signs the caller in
func (h *Handler) Signup(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.SignupCounter.Inc()

	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		log.Warn("Invalid signup request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	user := &model.User{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Role:  req.Role,
	}
	if user.Role == "" {
		user.Role = model.RoleBuyer
	}
	if !model.ValidRole(user.Role) {
		prometheus.RecordAuthError("invalid_role")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be owner or buyer"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		prometheus.RecordAuthError("password_hash_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}
	user.Password = string(hashed)

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.users.Create(c.Request().Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			log.Warn("User already exists", zap.String("email", user.Email))
			prometheus.RecordAuthError("email_already_exists")
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		log.Error("Failed to create user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("User registered", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return h.authResponse(c, http.StatusCreated, user)
}

// Login exchanges credentials for a token
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	user, err := h.users.FindByEmail(c.Request().Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error("Failed to look up user", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
		}
		log.Warn("User not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	log.Info("User logged in", zap.String("user_id", user.ID))
	return h.authResponse(c, http.StatusOK, user)
}

// Me returns the authenticated user's profile
func (h *Handler) Me(c echo.Context) error {
	claims := middleware.ClaimsFromContext(c)
	user, err := h.users.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return storeError(c, logger.FromEcho(c), err, "user not found", "failed to load profile")
	}
	return c.JSON(http.StatusOK, user)
}
