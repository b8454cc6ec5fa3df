package handlers

import (
	"errors"
	"net/http"
	"time"

	"travelsuggester/internal/services"
	"travelsuggester/internal/utils"

	"github.com/gin-gonic/gin"
)

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/token
func (h *Handler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, exp, err := h.Svc.Auth.Issue(req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrAuthDisabled):
		respondError(c, http.StatusServiceUnavailable, "auth_disabled", err.Error(), nil)
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.LogCtx(c.Request.Context(), "auth", "issue_token_denied", "username="+req.Username)
		respondError(c, http.StatusUnauthorized, "invalid_credentials", err.Error(), nil)
		return
	case err != nil:
		RespondDomainError(c, err)
		return
	}

	utils.LogCtx(c.Request.Context(), "auth", "issue_token", "username="+req.Username)
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"token_type": "Bearer",
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}
