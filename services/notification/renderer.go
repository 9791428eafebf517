package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"pioneertravel/models"
	"pioneertravel/services/booking"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Renderer turns a stored inquiry into the business and customer emails.
type Renderer struct {
	CompanyName      string
	SiteURL          string
	PhoneCountryCode string
}

type businessView struct {
	Company       string
	CategoryLabel string
	TripType      string
	Name          string
	Email         string
	EmailHref     template.URL
	Phone         string
	PhoneHref     template.URL
	Rows          []booking.Row
}

type customerView struct {
	Company string
	Name    string
	Kind    string
	Summary string
	SiteURL string
}

// BusinessSubject is the subject line of the internal notification.
func (r Renderer) BusinessSubject(b *models.BookingInquiry) string {
	return fmt.Sprintf("New %s Booking Inquiry from %s", b.Type.Title(), b.Name)
}

// CustomerSubject is the subject line of the acknowledgment.
func (r Renderer) CustomerSubject(b *models.BookingInquiry) string {
	return fmt.Sprintf("Thank You for Your %s Booking Inquiry - %s", b.Type.Title(), r.CompanyName)
}

// RenderBusinessNotification lists every populated field of the inquiry.
func (r Renderer) RenderBusinessNotification(b *models.BookingInquiry) (string, error) {
	category := booking.CategoryFor(b.Type)
	view := businessView{
		Company:       r.CompanyName,
		CategoryLabel: category.Label,
		TripType:      tripTypeLabel(b),
		Name:          b.Name,
		Email:         b.Email,
		EmailHref:     template.URL("mailto:" + b.Email),
		Phone:         b.Phone,
		PhoneHref:     template.URL("tel:" + r.PhoneCountryCode + strings.TrimSpace(b.Phone)),
		Rows:          category.Rows(b),
	}
	return execute("business", view)
}

// RenderCustomerAcknowledgment thanks the customer and echoes what they asked about.
func (r Renderer) RenderCustomerAcknowledgment(b *models.BookingInquiry) (string, error) {
	category := booking.CategoryFor(b.Type)
	view := customerView{
		Company: r.CompanyName,
		Name:    b.Name,
		Kind:    strings.ToLower(b.Type.Title()),
		Summary: category.Summary(b),
		SiteURL: r.SiteURL,
	}
	return execute("customer", view)
}

// tripTypeLabel is empty for packages, which never show a trip type row.
func tripTypeLabel(b *models.BookingInquiry) string {
	if b.Type == models.BookingTypePackage {
		return ""
	}
	if b.TripType == models.TripTypeInternational {
		return "International"
	}
	return "National (Domestic)"
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", name, err)
	}
	return buf.String(), nil
}
