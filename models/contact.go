package models

// ContactReason categorizes a general-contact message.
type ContactReason string

const (
	ReasonGeneral   ContactReason = "general"
	ReasonBooking   ContactReason = "booking"
	ReasonAftercare ContactReason = "aftercare"
	ReasonCollab    ContactReason = "collab"
	ReasonOther     ContactReason = "other"
)

// ContactForm holds the general-contact request. Same validation shape as
// BookingForm, independent lifecycle.
type ContactForm struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	ContactMethod ContactMethod `json:"contactMethod"`

	Reason  ContactReason `json:"reason"`
	Subject string        `json:"subject"`
	Message string        `json:"message"`

	Availability string `json:"availability"`

	Agree bool `json:"agree"`
}
