package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"inkhaus/models"
	"inkhaus/services/intake"
	"inkhaus/services/validation"
	"inkhaus/utils"
)

// BookingHandler exposes the booking wizard session endpoints.
type BookingHandler struct {
	Service intake.IntakeService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc intake.IntakeService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// bookingSessionView decorates a session with the derived state the client
// renders: step info, the consolidated missing-field list, readiness, and
// whether the current step's gate passes. All of it is recomputed from the
// form on every response, never stored.
func bookingSessionView(sess *models.BookingSession) gin.H {
	step := intake.BookingStepAt(sess.StepIndex)
	missing := validation.BookingMissingFields(sess.Form)
	if missing == nil {
		missing = []string{}
	}
	files := make([]gin.H, 0, len(sess.Form.StagedFiles))
	for _, f := range sess.Form.StagedFiles {
		files = append(files, gin.H{"name": f.Name, "size": utils.FormatBytes(f.Size)})
	}
	return gin.H{
		"session":       sess,
		"step":          string(step),
		"stepCount":     len(intake.BookingSteps),
		"missingFields": missing,
		"readiness":     validation.ReadinessPercent(sess.Form),
		"canAdvance":    intake.CanAdvanceBooking(step, sess.Form),
		"stagedFiles":   files,
	}
}

// StartSession creates a new booking wizard session with default values.
func (h *BookingHandler) StartSession(c *gin.Context) {
	sess, err := h.Service.CreateBookingSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sess, err := h.Service.GetBookingSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// UpdateSession applies a partial form update to the session. Slider
// values are clamped server-side so the budget ordering invariant holds
// no matter what the client sends.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var update intake.BookingFormUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	sess, err := h.Service.GetBookingSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	sess.Form = intake.ApplyBookingUpdate(sess.Form, update)
	if err := h.Service.SaveBookingSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// ToggleStyleTag adds or removes one style tag.
func (h *BookingHandler) ToggleStyleTag(c *gin.Context) {
	var input struct {
		Tag string `json:"tag" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	sess, err := h.Service.GetBookingSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	sess.Form = intake.ToggleStyleTag(sess.Form, input.Tag)
	if err := h.Service.SaveBookingSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// Advance moves the wizard forward one step if the current step's gate
// passes. The last step never advances; it submits instead.
func (h *BookingHandler) Advance(c *gin.Context) {
	ctx := c.Request.Context()
	sess, err := h.Service.GetBookingSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	step := intake.BookingStepAt(sess.StepIndex)
	if !intake.CanAdvanceBooking(step, sess.Form) {
		c.JSON(http.StatusConflict, gin.H{"error": "current step is incomplete", "step": string(step)})
		return
	}

	sess.StepIndex = intake.NextStepIndex(sess.StepIndex, len(intake.BookingSteps))
	if err := h.Service.SaveBookingSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// Back moves the wizard back one step; a no-op at the first step.
func (h *BookingHandler) Back(c *gin.Context) {
	ctx := c.Request.Context()
	sess, err := h.Service.GetBookingSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	sess.StepIndex = intake.PrevStepIndex(sess.StepIndex, len(intake.BookingSteps))
	if err := h.Service.SaveBookingSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// AddFiles stages reference images for the session. Selections beyond the
// cap are silently dropped; first-come files win.
func (h *BookingHandler) AddFiles(c *gin.Context) {
	ctx := c.Request.Context()
	sess, err := h.Service.GetBookingSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "files not provided", "details": err.Error()})
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "files not provided"})
		return
	}

	// Only stage what fits under the cap; anything past it would be
	// truncated anyway and would orphan a temp file.
	room := intake.MaxStagedFiles - len(sess.Form.StagedFiles)
	if room < 0 {
		room = 0
	}
	staged := make([]models.StagedFile, 0, len(fileHeaders))
	for i, fh := range fileHeaders {
		if i >= room {
			break
		}
		tempPath := filepath.Join(os.TempDir(), uuid.New().String()+"_"+filepath.Base(fh.Filename))
		if err := c.SaveUploadedFile(fh, tempPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
			return
		}
		staged = append(staged, models.StagedFile{
			Name:     fh.Filename,
			Size:     fh.Size,
			TempPath: tempPath,
		})
	}

	sess.Form = intake.AddFiles(sess.Form, staged)
	if err := h.Service.SaveBookingSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// RemoveFile drops one staged file by position. Out-of-range is a no-op.
func (h *BookingHandler) RemoveFile(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file index"})
		return
	}

	ctx := c.Request.Context()
	sess, err := h.Service.GetBookingSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	if index >= 0 && index < len(sess.Form.StagedFiles) {
		if p := sess.Form.StagedFiles[index].TempPath; p != "" {
			os.Remove(p)
		}
	}
	sess.Form = intake.RemoveFile(sess.Form, index)
	if err := h.Service.SaveBookingSession(ctx, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// Submit runs the submission pipeline. The session (including its failure
// status and message) is persisted either way, and the form is untouched
// on failure so the identical submission can be retried.
func (h *BookingHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	sess, err := h.Service.GetBookingSession(ctx, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	submitErr := h.Service.SubmitBooking(ctx, sess)
	if saveErr := h.Service.SaveBookingSession(ctx, sess); saveErr != nil {
		h.Logger.Warn("failed to persist booking session after submit", zap.Error(saveErr))
	}
	if submitErr != nil {
		c.JSON(intakeErrorStatus(submitErr), bookingSessionView(sess))
		return
	}
	c.JSON(http.StatusOK, bookingSessionView(sess))
}

// CancelSession discards the session and its staged files.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.DeleteBookingSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

// intakeErrorStatus maps pipeline failures to HTTP statuses: local
// preconditions are client errors, upstream failures are gateway errors.
func intakeErrorStatus(err error) int {
	if ie, ok := err.(*intake.IntakeError); ok {
		switch ie.Code {
		case "consentRequired":
			return http.StatusBadRequest
		case "configMissing":
			return http.StatusInternalServerError
		}
	}
	return http.StatusBadGateway
}
