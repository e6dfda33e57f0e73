package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/filmcast/internal/domain/forecast"
	"github.com/yanqian/filmcast/internal/domain/locations"
	"github.com/yanqian/filmcast/internal/domain/stores"
	apperrors "github.com/yanqian/filmcast/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	forecastSvc  forecast.Service
	locationsSvc locations.Service
	storesSvc    stores.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(forecastSvc forecast.Service, locationsSvc locations.Service, storesSvc stores.Service, logger *slog.Logger) *Handler {
	return &Handler{
		forecastSvc:  forecastSvc,
		locationsSvc: locationsSvc,
		storesSvc:    storesSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Films lists the full catalog.
func (h *Handler) Films(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"films": h.forecastSvc.Catalog()})
}

// Recommend resolves weather for a location and returns matching film stocks.
func (h *Handler) Recommend(c *gin.Context) {
	var req forecast.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.forecastSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SuggestLocations returns city candidates for a partial query.
func (h *Handler) SuggestLocations(c *gin.Context) {
	cities, err := h.locationsSvc.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": cities})
}

// TrendingLocations returns the most searched locations.
func (h *Handler) TrendingLocations(c *gin.Context) {
	items, err := h.locationsSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": items})
}

// NearbyStores lists film retailers around lat/lng.
func (h *Handler) NearbyStores(c *gin.Context) {
	q, err := h.parseStoreQuery(c)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", err.Error(), err))
		return
	}

	result, err := h.storesSvc.Nearby(c.Request.Context(), q)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) parseStoreQuery(c *gin.Context) (stores.Query, error) {
	lat, err := requiredFloat(c, "lat")
	if err != nil {
		return stores.Query{}, err
	}
	lng, err := requiredFloat(c, "lng")
	if err != nil {
		return stores.Query{}, err
	}
	q := h.storesSvc.DefaultQuery(lat, lng)

	if v := c.Query("radius"); v != "" {
		if q.Radius, err = strconv.Atoi(v); err != nil {
			return stores.Query{}, errors.New("radius must be an integer")
		}
	}
	if v := c.Query("maxResults"); v != "" {
		if q.MaxResults, err = strconv.Atoi(v); err != nil {
			return stores.Query{}, errors.New("maxResults must be an integer")
		}
	}
	if v := c.Query("minRating"); v != "" {
		if q.MinRating, err = strconv.ParseFloat(v, 64); err != nil {
			return stores.Query{}, errors.New("minRating must be a number")
		}
	}
	if v := c.Query("openNow"); v != "" {
		if q.OpenNow, err = strconv.ParseBool(v); err != nil {
			return stores.Query{}, errors.New("openNow must be a boolean")
		}
	}
	if v := c.Query("fallback"); v != "" {
		if q.UseFallback, err = strconv.ParseBool(v); err != nil {
			return stores.Query{}, errors.New("fallback must be a boolean")
		}
	}
	return q, nil
}

func requiredFloat(c *gin.Context, key string) (float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, errors.New(key + " is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(key + " must be a number")
	}
	return v, nil
}

// fromDomainError maps AppError codes onto HTTP statuses. Upstream details stay in logs.
func fromDomainError(err error) *HTTPError {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
	status := http.StatusInternalServerError
	switch appErr.Code {
	case apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.CodeLocationNotFound:
		status = http.StatusNotFound
	case apperrors.CodeWeather, apperrors.CodeGeocode:
		status = http.StatusBadGateway
	}
	return NewHTTPError(status, appErr.Code, appErr.Message, err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
