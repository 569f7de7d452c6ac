package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inkhaus/models"
)

func completeBookingContact() models.BookingForm {
	f := DefaultBookingForm()
	f.Name = "Riley"
	f.Email = "riley@example.com"
	f.Phone = "5551234567"
	return f
}

func TestCanAdvanceBookingPerStep(t *testing.T) {
	empty := DefaultBookingForm()
	assert.False(t, CanAdvanceBooking(StepContact, empty))

	withContact := completeBookingContact()
	assert.True(t, CanAdvanceBooking(StepContact, withContact))

	// The design step only checks its own fields; contact fields don't
	// block it and vice versa.
	assert.False(t, CanAdvanceBooking(StepDesign, withContact))
	withIdea := withContact
	withIdea.Idea = "dagger through a rose"
	assert.True(t, CanAdvanceBooking(StepDesign, withIdea))
	assert.True(t, CanAdvanceBooking(StepDesign, ApplyBookingUpdate(empty, BookingFormUpdate{Idea: strPtr("dagger")})))

	// References are optional.
	assert.True(t, CanAdvanceBooking(StepRefs, empty))

	// Review gates on consent alone.
	assert.False(t, CanAdvanceBooking(StepReview, withIdea))
	agreed := withIdea
	agreed.Agree = true
	assert.True(t, CanAdvanceBooking(StepReview, agreed))
}

func TestCanAdvanceContactPerStep(t *testing.T) {
	f := DefaultContactForm()
	assert.False(t, CanAdvanceContact(StepContact, f))

	f.Name = "Riley"
	f.Email = "riley@example.com"
	f.Phone = "5551234567"
	assert.True(t, CanAdvanceContact(StepContact, f))

	assert.False(t, CanAdvanceContact(StepMessage, f))
	f.Subject = "walk-ins"
	f.Message = "Do you take walk-ins on weekends?"
	assert.True(t, CanAdvanceContact(StepMessage, f))

	assert.False(t, CanAdvanceContact(StepReview, f))
	f.Agree = true
	assert.True(t, CanAdvanceContact(StepReview, f))
}

func TestStepNavigationClamps(t *testing.T) {
	n := len(BookingSteps)

	assert.Equal(t, 1, NextStepIndex(0, n))
	assert.Equal(t, n-1, NextStepIndex(n-1, n), "last step never advances past itself")
	assert.Equal(t, 0, PrevStepIndex(0, n), "back from the first step is a no-op")
	assert.Equal(t, n-2, PrevStepIndex(n-1, n))
}

func TestStepAtClampsOutOfRangeCursor(t *testing.T) {
	assert.Equal(t, StepContact, BookingStepAt(-3))
	assert.Equal(t, StepReview, BookingStepAt(42))
	assert.Equal(t, StepRefs, BookingStepAt(2))

	assert.Equal(t, StepContact, ContactStepAt(0))
	assert.Equal(t, StepMessage, ContactStepAt(1))
	assert.Equal(t, StepReview, ContactStepAt(99))
}
