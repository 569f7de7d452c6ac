// File: intake/pipeline.go
package intake

import (
	"context"

	"go.uber.org/zap"

	"inkhaus/models"
	"inkhaus/utils"
)

// SubmitBooking runs the booking submission pipeline against the session:
// optional file upload, then the relay POST, then best-effort rollback by
// key if the relay fails after files were stored. The session's status and
// last error are updated in place; the caller persists the session.
//
// Each of the two network calls is attempted exactly once. The form itself
// is never modified, so a failed submission can be retried as-is.
func (s *DefaultIntakeService) SubmitBooking(ctx context.Context, sess *models.BookingSession) error {
	logger := utils.GetLogger()

	if !sess.Form.Agree {
		return s.failBooking(sess, NewConsentError())
	}
	if s.BookingEndpoint == "" {
		return s.failBooking(sess, NewConfigError("booking relay endpoint is not configured"))
	}

	// Upload staged references first; the relay payload depends on the
	// resulting URLs.
	var uploaded []models.UploadedFile
	var rollbackKeys []string
	if len(sess.Form.StagedFiles) > 0 {
		sess.Status = models.StatusUploading
		results, err := s.Storage.UploadStagedFiles(ctx, sess.Form.StagedFiles)
		if err != nil {
			return s.failBooking(sess, NewUploadError("file upload failed, please try again"))
		}
		if len(results) == 0 {
			// Nothing was stored, so there is nothing to roll back.
			return s.failBooking(sess, NewUploadError("file upload failed, please try again"))
		}

		// Rollback tracks every key the storage service handed back.
		// The payload additionally drops records missing a URL or key,
		// without treating them as failures.
		for _, r := range results {
			if r.Key != "" {
				rollbackKeys = append(rollbackKeys, r.Key)
			}
			if r.Key != "" && r.URL != "" {
				uploaded = append(uploaded, r)
			}
		}
	}

	sess.Status = models.StatusSubmitting
	payload := BuildBookingPayload(sess.Form, uploaded)

	if err := s.Relay.Send(ctx, s.BookingEndpoint, payload); err != nil {
		// Uploaded references are orphaned storage if the relay rejects
		// the submission; reclaim them by key. This cleanup's own failure
		// is logged and swallowed so the user sees the relay error only.
		if len(rollbackKeys) > 0 {
			if _, delErr := s.Storage.DeleteFiles(ctx, rollbackKeys); delErr != nil {
				logger.Warn("intake: rollback cleanup failed",
					zap.Strings("keys", rollbackKeys), zap.Error(delErr))
			}
		}
		return s.failBooking(sess, NewRelayError(err.Error()))
	}

	cleanupStagedFiles(sess.Form.StagedFiles)
	sess.Status = models.StatusSucceeded
	sess.LastError = ""
	return nil
}

// SubmitContact runs the contact submission pipeline. No files, one relay
// POST.
func (s *DefaultIntakeService) SubmitContact(ctx context.Context, sess *models.ContactSession) error {
	if !sess.Form.Agree {
		return s.failContact(sess, NewConsentError())
	}
	if s.ContactEndpoint == "" {
		return s.failContact(sess, NewConfigError("contact relay endpoint is not configured"))
	}

	sess.Status = models.StatusSubmitting
	if err := s.Relay.Send(ctx, s.ContactEndpoint, BuildContactPayload(sess.Form)); err != nil {
		return s.failContact(sess, NewRelayError(err.Error()))
	}

	sess.Status = models.StatusSucceeded
	sess.LastError = ""
	return nil
}

func (s *DefaultIntakeService) failBooking(sess *models.BookingSession, err error) error {
	sess.Status = models.StatusFailed
	sess.LastError = errMessage(err)
	return err
}

func (s *DefaultIntakeService) failContact(sess *models.ContactSession, err error) error {
	sess.Status = models.StatusFailed
	sess.LastError = errMessage(err)
	return err
}

func errMessage(err error) string {
	if ie, ok := err.(*IntakeError); ok {
		return ie.Message
	}
	return err.Error()
}
