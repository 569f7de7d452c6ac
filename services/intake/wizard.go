// File: intake/wizard.go
package intake

import (
	"inkhaus/models"
)

// Step identifies one wizard step.
type Step string

const (
	StepContact Step = "contact"
	StepDesign  Step = "design"
	StepRefs    Step = "refs"
	StepMessage Step = "message"
	StepReview  Step = "review"
)

// BookingSteps is the fixed step order for the booking wizard.
var BookingSteps = []Step{StepContact, StepDesign, StepRefs, StepReview}

// ContactSteps is the fixed step order for the general-contact wizard.
var ContactSteps = []Step{StepContact, StepMessage, StepReview}

// StyleTags is the selectable style catalog.
var StyleTags = []string{
	"Fine-line",
	"Dark floral",
	"Lettering",
	"Ornamental",
	"Cyber / glitch",
	"Anime",
	"Realism",
	"Traditional",
	"Neo-trad",
	"Minimal",
	"Abstract",
}

// Placements is the fixed placement catalog.
var Placements = []string{
	"Forearm",
	"Upper arm",
	"Bicep",
	"Hand",
	"Wrist",
	"Chest",
	"Ribs",
	"Back",
	"Shoulder",
	"Thigh",
	"Calf",
	"Ankle",
	"Neck",
	"Other",
}

// Slider bounds. Budget and size values are silently clamped to stay legal.
const (
	MinSizeInches = 1
	MaxSizeInches = 14
	MinBudget     = 50
	MaxBudget     = 1500
	BudgetStep    = 25
)

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// DefaultBookingForm returns the initial form values for a new session.
func DefaultBookingForm() models.BookingForm {
	return models.BookingForm{
		ContactMethod:  models.ContactByEmail,
		StyleTags:      []string{},
		Placement:      "Forearm",
		SizeInches:     5,
		ColorDirection: models.ColorBlackwork,
		StagedFiles:    []models.StagedFile{},
		BudgetMin:      150,
		BudgetMax:      450,
	}
}

// DefaultContactForm returns the initial contact form values.
func DefaultContactForm() models.ContactForm {
	return models.ContactForm{
		ContactMethod: models.ContactByEmail,
		Reason:        models.ReasonGeneral,
	}
}

// BookingFormUpdate is a partial update; nil fields are left untouched.
type BookingFormUpdate struct {
	Name          *string                `json:"name,omitempty"`
	Email         *string                `json:"email,omitempty"`
	Phone         *string                `json:"phone,omitempty"`
	ContactMethod *models.ContactMethod  `json:"contactMethod,omitempty"`
	Idea          *string                `json:"idea,omitempty"`
	Placement     *string                `json:"placement,omitempty"`
	SizeInches    *int                   `json:"sizeInches,omitempty"`
	ColorDir      *models.ColorDirection `json:"colorDirection,omitempty"`
	References    *string                `json:"references,omitempty"`
	BudgetMin     *int                   `json:"budgetMin,omitempty"`
	BudgetMax     *int                   `json:"budgetMax,omitempty"`
	Availability  *string                `json:"availability,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
	Agree         *bool                  `json:"agree,omitempty"`
}

// ApplyBookingUpdate returns a new form with the update applied. Size and
// budget values are clamped so that the budget ordering invariant
// (min < max, one step apart at minimum) holds after every update.
func ApplyBookingUpdate(f models.BookingForm, u BookingFormUpdate) models.BookingForm {
	if u.Name != nil {
		f.Name = *u.Name
	}
	if u.Email != nil {
		f.Email = *u.Email
	}
	if u.Phone != nil {
		f.Phone = *u.Phone
	}
	if u.ContactMethod != nil {
		f.ContactMethod = *u.ContactMethod
	}
	if u.Idea != nil {
		f.Idea = *u.Idea
	}
	if u.Placement != nil {
		f.Placement = *u.Placement
	}
	if u.SizeInches != nil {
		f.SizeInches = clamp(*u.SizeInches, MinSizeInches, MaxSizeInches)
	}
	if u.ColorDir != nil {
		f.ColorDirection = *u.ColorDir
	}
	if u.References != nil {
		f.References = *u.References
	}
	if u.BudgetMin != nil {
		f.BudgetMin = clamp(*u.BudgetMin, MinBudget, MaxBudget)
	}
	if u.BudgetMax != nil {
		f.BudgetMax = clamp(*u.BudgetMax, MinBudget, MaxBudget)
	}
	if u.BudgetMin != nil || u.BudgetMax != nil {
		if f.BudgetMin > f.BudgetMax-BudgetStep {
			f.BudgetMin = f.BudgetMax - BudgetStep
		}
		if f.BudgetMax < f.BudgetMin+BudgetStep {
			f.BudgetMax = f.BudgetMin + BudgetStep
		}
	}
	if u.Availability != nil {
		f.Availability = *u.Availability
	}
	if u.Notes != nil {
		f.Notes = *u.Notes
	}
	if u.Agree != nil {
		f.Agree = *u.Agree
	}
	return f
}

// ContactFormUpdate is the contact-flow partial update.
type ContactFormUpdate struct {
	Name          *string               `json:"name,omitempty"`
	Email         *string               `json:"email,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	ContactMethod *models.ContactMethod `json:"contactMethod,omitempty"`
	Reason        *models.ContactReason `json:"reason,omitempty"`
	Subject       *string               `json:"subject,omitempty"`
	Message       *string               `json:"message,omitempty"`
	Availability  *string               `json:"availability,omitempty"`
	Agree         *bool                 `json:"agree,omitempty"`
}

// ApplyContactUpdate returns a new form with the update applied.
func ApplyContactUpdate(f models.ContactForm, u ContactFormUpdate) models.ContactForm {
	if u.Name != nil {
		f.Name = *u.Name
	}
	if u.Email != nil {
		f.Email = *u.Email
	}
	if u.Phone != nil {
		f.Phone = *u.Phone
	}
	if u.ContactMethod != nil {
		f.ContactMethod = *u.ContactMethod
	}
	if u.Reason != nil {
		f.Reason = *u.Reason
	}
	if u.Subject != nil {
		f.Subject = *u.Subject
	}
	if u.Message != nil {
		f.Message = *u.Message
	}
	if u.Availability != nil {
		f.Availability = *u.Availability
	}
	if u.Agree != nil {
		f.Agree = *u.Agree
	}
	return f
}

// ToggleStyleTag adds the tag if absent, removes it if present.
func ToggleStyleTag(f models.BookingForm, tag string) models.BookingForm {
	for i, t := range f.StyleTags {
		if t == tag {
			tags := make([]string, 0, len(f.StyleTags)-1)
			tags = append(tags, f.StyleTags[:i]...)
			tags = append(tags, f.StyleTags[i+1:]...)
			f.StyleTags = tags
			return f
		}
	}
	tags := make([]string, 0, len(f.StyleTags)+1)
	tags = append(tags, f.StyleTags...)
	tags = append(tags, tag)
	f.StyleTags = tags
	return f
}
