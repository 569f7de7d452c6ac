// File: intake/steps.go
package intake

import (
	"inkhaus/models"
	"inkhaus/services/validation"
)

// CanAdvanceBooking is the per-step advancement gate for the booking
// wizard. Each step checks only its own fields; fields belonging to other
// steps never block the current one.
func CanAdvanceBooking(step Step, f models.BookingForm) bool {
	switch step {
	case StepContact:
		return validation.IsRequired(f.Name) &&
			validation.IsValidEmail(f.Email) &&
			validation.IsValidPhone(f.Phone)
	case StepDesign:
		return validation.IsRequired(f.Idea) && validation.IsRequired(f.Placement)
	case StepRefs:
		// References are encouraged, never required.
		return true
	case StepReview:
		return f.Agree
	}
	return false
}

// CanAdvanceContact is the advancement gate for the contact wizard.
func CanAdvanceContact(step Step, f models.ContactForm) bool {
	switch step {
	case StepContact:
		return validation.IsRequired(f.Name) &&
			validation.IsValidEmail(f.Email) &&
			validation.IsValidPhone(f.Phone)
	case StepMessage:
		return validation.IsRequired(f.Subject) && validation.IsRequired(f.Message)
	case StepReview:
		return f.Agree
	}
	return false
}

// NextStepIndex moves the cursor forward one step, clamped to the last
// step. The review step never advances; it submits instead.
func NextStepIndex(index, stepCount int) int {
	return clamp(index+1, 0, stepCount-1)
}

// PrevStepIndex moves the cursor back one step; a no-op at the first step.
func PrevStepIndex(index, stepCount int) int {
	return clamp(index-1, 0, stepCount-1)
}

// BookingStepAt returns the step identifier for a cursor position.
func BookingStepAt(index int) Step {
	return BookingSteps[clamp(index, 0, len(BookingSteps)-1)]
}

// ContactStepAt returns the contact-flow step for a cursor position.
func ContactStepAt(index int) Step {
	return ContactSteps[clamp(index, 0, len(ContactSteps)-1)]
}
