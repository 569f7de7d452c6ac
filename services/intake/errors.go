package intake

import "fmt"

type IntakeError struct {
	Code    string
	Message string
}

func (e *IntakeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConsentError() error {
	return &IntakeError{
		Code:    "consentRequired",
		Message: "terms must be agreed to before submitting",
	}
}

func NewConfigError(msg string) error {
	return &IntakeError{
		Code:    "configMissing",
		Message: msg,
	}
}

func NewUploadError(msg string) error {
	return &IntakeError{
		Code:    "uploadFailed",
		Message: msg,
	}
}

func NewRelayError(msg string) error {
	return &IntakeError{
		Code:    "relayFailed",
		Message: msg,
	}
}
