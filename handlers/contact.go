package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkhaus/models"
	"inkhaus/services/intake"
	"inkhaus/services/validation"
)

// ContactHandler exposes the general-contact wizard endpoints. Same shape
// as the booking flow, minus file staging.
type ContactHandler struct {
	Service intake.IntakeService
	Logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(svc intake.IntakeService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Service: svc, Logger: logger}
}

func contactSessionView(sess *models.ContactSession) gin.H {
	step := intake.ContactStepAt(sess.StepIndex)
	missing := validation.ContactMissingFields(sess.Form)
	if missing == nil {
		missing = []string{}
	}
	return gin.H{
		"session":       sess,
		"step":          string(step),
		"stepCount":     len(intake.ContactSteps),
		"missingFields": missing,
		"canAdvance":    intake.CanAdvanceContact(step, sess.Form),
	}
}

// StartSession creates a new contact wizard session.
func (h *ContactHandler) StartSession(c *gin.Context) {
	sess, err := h.Service.CreateContactSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create contact session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contactSessionView(sess))
}

// GetSession returns the current session state.
func (h *ContactHandler) GetSession(c *gin.Context) {
	sess, err := h.Service.GetContactSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, contactSessionView(sess))
}

// UpdateSession applies a partial form update.
func (h *ContactHandler) UpdateSession(c *gin.Context) {
	var update intake.ContactFormUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	sess, err := h.Service.GetContactSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact session not found or expired"})
		return
	}

	sess.Form = intake.ApplyContactUpdate(sess.Form, update)
	if err := h.Service.SaveContactSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contact session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contactSessionView(sess))
}

// Advance moves the wizard forward one step if the gate passes.
func (h *ContactHandler) Advance(c *gin.Context) {
	ctx := c.Request.Context()
	sess, err := h.Service.GetContactSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact session not found or expired"})
		return
	}

	step := intake.ContactStepAt(sess.StepIndex)
	if !intake.CanAdvanceContact(step, sess.Form) {
		c.JSON(http.StatusConflict, gin.H{"error": "current step is incomplete", "step": string(step)})
		return
	}

	sess.StepIndex = intake.NextStepIndex(sess.StepIndex, len(intake.ContactSteps))
	if err := h.Service.SaveContactSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contact session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contactSessionView(sess))
}

// Back moves the wizard back one step; a no-op at the first step.
func (h *ContactHandler) Back(c *gin.Context) {
	ctx := c.Request.Context()
	sess, err := h.Service.GetContactSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact session not found or expired"})
		return
	}

	sess.StepIndex = intake.PrevStepIndex(sess.StepIndex, len(intake.ContactSteps))
	if err := h.Service.SaveContactSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contact session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contactSessionView(sess))
}

// Submit runs the contact submission pipeline.
func (h *ContactHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	sess, err := h.Service.GetContactSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact session not found or expired"})
		return
	}

	submitErr := h.Service.SubmitContact(ctx, sess)
	if saveErr := h.Service.SaveContactSession(ctx, sess); saveErr != nil {
		h.Logger.Warn("failed to persist contact session after submit", zap.Error(saveErr))
	}
	if submitErr != nil {
		c.JSON(intakeErrorStatus(submitErr), contactSessionView(sess))
		return
	}
	c.JSON(http.StatusOK, contactSessionView(sess))
}

// CancelSession discards the session.
func (h *ContactHandler) CancelSession(c *gin.Context) {
	if err := h.Service.DeleteContactSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel contact session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact session cancelled"})
}
