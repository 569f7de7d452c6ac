// Package validation holds the pure field predicates shared by the booking
// and contact intake flows. Nothing here has side effects; missing-field
// sets are recomputed from a form snapshot on every change, never stored.
package validation

import (
	"regexp"
	"strings"

	"inkhaus/models"
)

// Deliberately simple shape check: local part, "@", domain, ".", tail.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var nonDigits = regexp.MustCompile(`[^\d]`)

// IsValidEmail reports whether s looks like an email address after trimming.
func IsValidEmail(s string) bool {
	e := strings.TrimSpace(s)
	if e == "" {
		return false
	}
	return emailPattern.MatchString(e)
}

// IsValidPhone strips all non-digit characters and requires at least 10
// digits (US-friendly).
func IsValidPhone(s string) bool {
	p := nonDigits.ReplaceAllString(s, "")
	return len(p) >= 10
}

// IsRequired reports whether s is non-empty after trimming.
func IsRequired(s string) bool {
	return strings.TrimSpace(s) != ""
}

// BookingMissingFields returns the names of required booking fields that are
// missing or invalid. The check always covers every required field for the
// final submission, regardless of the wizard's current step, so the review
// step can show a consolidated blocker list.
func BookingMissingFields(f models.BookingForm) []string {
	var m []string
	if !IsRequired(f.Name) {
		m = append(m, "name")
	}
	if !IsValidEmail(f.Email) {
		m = append(m, "email")
	}
	if !IsValidPhone(f.Phone) {
		m = append(m, "phone")
	}
	if !IsRequired(f.Idea) {
		m = append(m, "idea")
	}
	return m
}

// ContactMissingFields is the contact-flow counterpart of
// BookingMissingFields.
func ContactMissingFields(f models.ContactForm) []string {
	var m []string
	if !IsRequired(f.Name) {
		m = append(m, "name")
	}
	if !IsValidEmail(f.Email) {
		m = append(m, "email")
	}
	if !IsValidPhone(f.Phone) {
		m = append(m, "phone")
	}
	if !IsRequired(f.Subject) {
		m = append(m, "subject")
	}
	if !IsRequired(f.Message) {
		m = append(m, "message")
	}
	return m
}

// ReadinessPercent is the share of satisfied booking essentials, 0-100.
// Drives the "% ready" badge on the booking summary.
func ReadinessPercent(f models.BookingForm) int {
	const total = 4 // name, email, phone, idea
	missing := len(BookingMissingFields(f))
	return (total - missing) * 100 / total
}
