package stub

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const stubAccessToken = "stub-access-token"

type Handler struct {
	marketplace *Marketplace
}

func NewHandler(marketplace *Marketplace) *Handler {
	return &Handler{marketplace: marketplace}
}

// Register mounts the fake PostgREST, OAuth and FCM endpoints plus the seeding API.
func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/stub/reset", h.HandleReset)
	r.POST("/stub/seed", h.HandleSeed)
	r.GET("/stub/stats", h.HandleStats)

	r.GET("/rest/v1/profiles", h.HandleProfiles)
	r.GET("/rest/v1/fcm_tokens", h.HandleTokens)
	r.POST("/token", h.HandleAccessToken)
	r.POST("/v1/projects/:project/*action", h.HandleSend)
}

func (h *Handler) HandleReset(c *gin.Context) {
	h.marketplace.ResetAll()

	slog.Info("reset data")

	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}

func (h *Handler) HandleSeed(c *gin.Context) {
	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.marketplace.Seed(req)

	slog.Info("seeded data",
		slog.Int("profile_count", len(req.Profiles)),
		slog.Int("token_count", len(req.Tokens)),
		slog.Int("failing_count", len(req.FailTokens)),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":        "seeded",
		"profile_count": len(req.Profiles),
		"token_count":   len(req.Tokens),
	})
}

func (h *Handler) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketplace.Stats())
}

// GET /rest/v1/profiles?profile_type=eq.provider&service_type=cs.{"plumbing"}
func (h *Handler) HandleProfiles(c *gin.Context) {
	if !authorized(c) {
		return
	}

	profileType := strings.TrimPrefix(c.Query("profile_type"), "eq.")

	var contains []string
	if raw := c.Query("service_type"); raw != "" {
		inner, ok := unwrap(raw, "cs.{", "}")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unsupported service_type filter"})
			return
		}
		contains = parseList(inner)
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	c.JSON(http.StatusOK, h.marketplace.Profiles(profileType, contains, limit))
}

// GET /rest/v1/fcm_tokens?user_id=in.("u1","u2")
func (h *Handler) HandleTokens(c *gin.Context) {
	if !authorized(c) {
		return
	}

	inner, ok := unwrap(c.Query("user_id"), "in.(", ")")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unsupported user_id filter"})
		return
	}

	c.JSON(http.StatusOK, h.marketplace.Tokens(parseList(inner)))
}

func (h *Handler) HandleAccessToken(c *gin.Context) {
	if c.PostForm("grant_type") != "urn:ietf:params:oauth:grant-type:jwt-bearer" || c.PostForm("assertion") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_grant"})
		return
	}

	h.marketplace.IssueAccessToken()

	c.JSON(http.StatusOK, accessTokenResponse{
		AccessToken: stubAccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   3600,
	})
}

// POST /v1/projects/:project/messages:send
func (h *Handler) HandleSend(c *gin.Context) {
	if c.Param("action") != "/messages:send" {
		c.Status(http.StatusNotFound)
		return
	}
	if c.GetHeader("Authorization") != "Bearer "+stubAccessToken {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": 401, "status": "UNAUTHENTICATED"}})
		return
	}

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": 400, "status": "INVALID_ARGUMENT"}})
		return
	}

	if !h.marketplace.Deliver(req.Message.Token) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{
			"code":    404,
			"message": "Requested entity was not found.",
			"status":  "NOT_FOUND",
		}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": "projects/" + c.Param("project") + "/messages/" + req.Message.Token})
}

func authorized(c *gin.Context) bool {
	if c.GetHeader("apikey") == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No API key found in request"})
		return false
	}
	return true
}

func unwrap(raw, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(raw, prefix) || !strings.HasSuffix(raw, suffix) {
		return "", false
	}
	return raw[len(prefix) : len(raw)-len(suffix)], true
}

// parseList splits a PostgREST list body, honouring double quotes and backslash escapes.
func parseList(inner string) []string {
	var (
		values  []string
		current strings.Builder
		quoted  bool
		escaped bool
	)

	for _, r := range inner {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case r == ',' && !quoted:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 || len(values) > 0 {
		values = append(values, current.String())
	}

	return values
}
