// File: intake/payload.go
package intake

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"inkhaus/models"
)

// NoUploadedFiles is the literal placeholder used when a booking is
// submitted without reference uploads.
const NoUploadedFiles = "No uploaded files"

// BuildBookingPayload flattens the form and upload results into the
// key-value payload the relay expects. Uploaded files are rendered as an
// HTML anchor list so the relayed email links straight to each reference.
func BuildBookingPayload(f models.BookingForm, uploaded []models.UploadedFile) url.Values {
	payload := url.Values{}
	payload.Set("formType", "booking")
	payload.Set("name", f.Name)
	payload.Set("email", f.Email)
	payload.Set("phone", f.Phone)
	payload.Set("contactMethod", string(f.ContactMethod))
	payload.Set("idea", f.Idea)
	payload.Set("styleTags", strings.Join(f.StyleTags, ", "))
	payload.Set("placement", f.Placement)
	payload.Set("sizeInches", strconv.Itoa(f.SizeInches))
	payload.Set("isColor", string(f.ColorDirection))
	payload.Set("references", f.References)
	payload.Set("budgetMin", strconv.Itoa(f.BudgetMin))
	payload.Set("budgetMax", strconv.Itoa(f.BudgetMax))
	payload.Set("availability", f.Availability)
	payload.Set("notes", f.Notes)
	payload.Set("originalFileCount", strconv.Itoa(len(f.StagedFiles)))
	payload.Set("uploadedFileCount", strconv.Itoa(len(uploaded)))
	payload.Set("uploadedFileUrls", renderUploadedLinks(uploaded))
	return payload
}

// BuildContactPayload flattens the contact form for the relay.
func BuildContactPayload(f models.ContactForm) url.Values {
	payload := url.Values{}
	payload.Set("formType", "contact")
	payload.Set("name", f.Name)
	payload.Set("email", f.Email)
	payload.Set("phone", f.Phone)
	payload.Set("contactMethod", string(f.ContactMethod))
	payload.Set("reason", string(f.Reason))
	payload.Set("subject", f.Subject)
	payload.Set("message", f.Message)
	payload.Set("availability", f.Availability)
	return payload
}

func renderUploadedLinks(uploaded []models.UploadedFile) string {
	if len(uploaded) == 0 {
		return NoUploadedFiles
	}
	links := make([]string, 0, len(uploaded))
	for _, u := range uploaded {
		links = append(links, fmt.Sprintf(
			`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`, u.URL, u.Name))
	}
	return strings.Join(links, "<br/>")
}
