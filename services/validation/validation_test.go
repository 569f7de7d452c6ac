package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inkhaus/models"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jo@studio.ink"))
	assert.True(t, IsValidEmail("  jo@studio.ink  "), "surrounding whitespace is trimmed")
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("   "))
	assert.False(t, IsValidEmail("jo@studio"), "missing dot in domain")
	assert.False(t, IsValidEmail("jo studio@ink.com"), "whitespace inside address")
	assert.False(t, IsValidEmail("@studio.ink"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("5551234567"))
	assert.True(t, IsValidPhone("(555) 123-4567"), "formatting characters are stripped")
	assert.True(t, IsValidPhone("+1 555 123 4567"))
	assert.False(t, IsValidPhone("555-1234"), "too few digits")
	assert.False(t, IsValidPhone(""))
	assert.False(t, IsValidPhone("call me maybe"))
}

func TestIsRequired(t *testing.T) {
	assert.True(t, IsRequired("x"))
	assert.False(t, IsRequired(""))
	assert.False(t, IsRequired("   \t"))
}

func TestBookingMissingFields(t *testing.T) {
	empty := models.BookingForm{}
	assert.Equal(t, []string{"name", "email", "phone", "idea"}, BookingMissingFields(empty))

	complete := models.BookingForm{
		Name:  "Riley",
		Email: "riley@example.com",
		Phone: "5551234567",
		Idea:  "dark floral sleeve",
	}
	assert.Empty(t, BookingMissingFields(complete))

	// A whitespace-only name is missing, not present.
	blank := complete
	blank.Name = "   "
	assert.Equal(t, []string{"name"}, BookingMissingFields(blank))

	// Invalid values count the same as absent ones.
	badEmail := complete
	badEmail.Email = "not-an-email"
	assert.Equal(t, []string{"email"}, BookingMissingFields(badEmail))
}

func TestContactMissingFields(t *testing.T) {
	empty := models.ContactForm{}
	assert.Equal(t, []string{"name", "email", "phone", "subject", "message"}, ContactMissingFields(empty))

	complete := models.ContactForm{
		Name:    "Riley",
		Email:   "riley@example.com",
		Phone:   "5551234567",
		Subject: "aftercare",
		Message: "Is peeling on day 4 normal?",
	}
	assert.Empty(t, ContactMissingFields(complete))
}

func TestReadinessPercent(t *testing.T) {
	assert.Equal(t, 0, ReadinessPercent(models.BookingForm{}))
	assert.Equal(t, 50, ReadinessPercent(models.BookingForm{
		Name:  "Riley",
		Email: "riley@example.com",
	}))
	assert.Equal(t, 100, ReadinessPercent(models.BookingForm{
		Name:  "Riley",
		Email: "riley@example.com",
		Phone: "5551234567",
		Idea:  "script on forearm",
	}))
}
