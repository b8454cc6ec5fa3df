package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"travelsuggester/internal/domain"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "invalid payload: "+err.Error(), nil)
		return false
	}
	return true
}

// listQuery reads skip, limit and an optional equality filter from the query
// string. limit defaults to defaultLimit.
func listQuery(c *gin.Context, defaultLimit int, filterFields ...string) (domain.ListQuery, bool) {
	skip, ok := intQuery(c, "skip", 0)
	if !ok {
		return domain.ListQuery{}, false
	}
	limit, ok := intQuery(c, "limit", defaultLimit)
	if !ok {
		return domain.ListQuery{}, false
	}
	if skip < 0 {
		respondError(c, http.StatusBadRequest, "invalid_query", "skip must not be negative", gin.H{"field": "skip"})
		return domain.ListQuery{}, false
	}

	q := domain.ListQuery{Page: domain.Page{Offset: skip, Limit: limit}}
	for _, f := range filterFields {
		if v, ok := c.GetQuery(f); ok {
			q.Filter = &domain.Filter{Field: f, Value: v}
			break
		}
	}
	return q, true
}

func intQuery(c *gin.Context, key string, fallback int) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_query", key+" must be an integer", gin.H{"field": key})
		return 0, false
	}
	return v, true
}

func floatQuery(c *gin.Context, key string, required bool, fallback float64) (float64, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || strings.TrimSpace(raw) == "" {
		if required {
			respondError(c, http.StatusBadRequest, "invalid_query", key+" is required", gin.H{"field": key})
			return 0, false
		}
		return fallback, true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		respondError(c, http.StatusBadRequest, "invalid_query", key+" must be a number", gin.H{"field": key})
		return 0, false
	}
	return v, true
}

func stringQuery(c *gin.Context, key string) (string, bool) {
	v, ok := c.GetQuery(key)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid_query", key+" is required", gin.H{"field": key})
		return "", false
	}
	return v, true
}
