package models

// SubmissionStatus tracks where a session is in the submission pipeline.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusUploading  SubmissionStatus = "uploading"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSucceeded  SubmissionStatus = "succeeded"
	StatusFailed     SubmissionStatus = "failed"
)

// BookingSession holds wizard state between steps for a booking request.
type BookingSession struct {
	SessionID string           `json:"sessionId"`
	StepIndex int              `json:"stepIndex"`
	Form      BookingForm      `json:"form"`
	Status    SubmissionStatus `json:"status"`
	LastError string           `json:"lastError,omitempty"`
}

// ContactSession holds wizard state for the general-contact flow.
type ContactSession struct {
	SessionID string           `json:"sessionId"`
	StepIndex int              `json:"stepIndex"`
	Form      ContactForm      `json:"form"`
	Status    SubmissionStatus `json:"status"`
	LastError string           `json:"lastError,omitempty"`
}
