package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gatewayauth/internal/server/metrics"
	"github.com/dmitrijs2005/gatewayauth/internal/server/models"
	"github.com/dmitrijs2005/gatewayauth/internal/server/telemetry"
	"github.com/gin-gonic/gin"
)

const profileKey = "profile"

// Authenticator is the subset of the auth service the façade calls.
type Authenticator interface {
	Register(ctx context.Context, userName, password, email string) error
	Login(ctx context.Context, userName, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Logout(ctx context.Context, refreshToken, credential string) error
	Identify(ctx context.Context, credential string) (*models.Profile, error)
}

// Handler holds the route handlers.
type Handler struct {
	auth    Authenticator
	sampler *telemetry.Sampler
	counts  func() telemetry.Counts
	metrics *metrics.Metrics
}

func NewHandler(a Authenticator, s *telemetry.Sampler, counts func() telemetry.Counts, m *metrics.Metrics) *Handler {
	return &Handler{auth: a, sampler: s, counts: counts, metrics: m}
}

type registerRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type profileResponse struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBadBody(c, err)
		return
	}

	err := h.auth.Register(c.Request.Context(), req.UserName, req.Password, req.Email)
	h.metrics.RecordAuth("register", err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, statusResponse{Status: "registered"})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBadBody(c, err)
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.UserName, req.Password)
	h.metrics.RecordAuth("login", err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBadBody(c, err)
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	h.metrics.RecordAuth("refresh", err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (h *Handler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBadBody(c, err)
		return
	}

	err := h.auth.Logout(c.Request.Context(), req.RefreshToken, c.GetHeader("Authorization"))
	h.metrics.RecordAuth("logout", err)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Handler) Me(c *gin.Context) {
	p := c.MustGet(profileKey).(*models.Profile)
	c.JSON(http.StatusOK, profileResponse{UserName: p.UserName, Email: p.Email, Role: p.Role})
}

func (h *Handler) CurrentMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.sampler.Current())
}

func (h *Handler) Status(c *gin.Context) {
	var counts telemetry.Counts
	if h.counts != nil {
		counts = h.counts()
	}
	c.JSON(http.StatusOK, h.sampler.Status(counts))
}

// requireAuth identifies the caller from the Authorization header and stores
// the profile under profileKey.
func (h *Handler) requireAuth(c *gin.Context) {
	p, err := h.auth.Identify(c.Request.Context(), c.GetHeader("Authorization"))
	h.metrics.RecordAuth("identify", err)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.Set(profileKey, p)
	c.Next()
}
