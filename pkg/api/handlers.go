package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"onboarding-backend/pkg/middleware"
	"onboarding-backend/pkg/models"
	"onboarding-backend/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.SubmissionService
	dashboardService  services.DashboardService
	sessions          services.SessionStore
	validate          *validator.Validate
	logger            *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	submissionService services.SubmissionService,
	dashboardService services.DashboardService,
	sessions services.SessionStore,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		dashboardService:  dashboardService,
		sessions:          sessions,
		validate:          validator.New(),
		logger:            logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Onboarding API is running.",
	})
}

// HandleSubmit processes a completed onboarding form. The pipeline's
// side effects are best-effort; a well-formed payload always gets a
// success envelope.
func (h *Handlers) HandleSubmit(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("error reading request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Error reading request"})
		return
	}

	var sub models.Submission
	if err := json.Unmarshal(body, &sub); err != nil {
		h.logger.Error("error parsing submission JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid JSON format"})
		return
	}

	if err := h.validate.Struct(sub); err != nil {
		h.logger.Warn("submission failed validation", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": validationMessage(err)})
		return
	}

	h.submissionService.ProcessSubmission(sub)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Onboarding submitted successfully.",
	})
}

// HandleLogin exchanges the dashboard password for a session token.
func (h *Handlers) HandleLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid JSON format"})
		return
	}

	token, err := h.sessions.Issue(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			h.logger.Info("dashboard login: failed attempt")
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Incorrect password."})
			return
		}
		h.logger.Error("dashboard login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	h.logger.Info("dashboard login: success")
	c.JSON(http.StatusOK, gin.H{"status": "success", "token": token})
}

// HandleLogout revokes the presented token, if any. Always succeeds.
func (h *Handlers) HandleLogout(c *gin.Context) {
	if token := c.GetHeader(middleware.TokenHeader); token != "" {
		h.sessions.Revoke(token)
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// HandleListClients returns every client in the directory tab.
func (h *Handlers) HandleListClients(c *gin.Context) {
	clients, err := h.dashboardService.ListClients()
	if err != nil {
		h.logger.Error("error loading clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "clients": clients})
}

// HandleClientDetails returns the full submission for one client, or a
// null details field when no submission matches the name.
func (h *Handlers) HandleClientDetails(c *gin.Context) {
	details, err := h.dashboardService.ClientDetails(c.Param("name"))
	if err != nil {
		h.logger.Error("error loading client details", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "details": details})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return "Invalid field: " + first.Field()
	}
	return "Invalid submission"
}
