package booking

import (
	"strconv"
	"strings"

	"pioneertravel/models"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindCount
)

// field describes one payload key: how it is coerced, which constraints apply
// once present, the messages shown to the customer and where it lands on the
// stored record.
type field struct {
	key      string
	kind     fieldKind
	required bool
	tag      string // validator tag applied to a present, correctly typed value
	messages map[string]string
	lower    bool
	target   func(b *models.BookingInquiry) any
}

// Row is one labelled line of the business notification.
type Row struct {
	Label string
	Value string
}

type display struct {
	label string
	key   string
}

// Category is one variant of the booking union: its rule list (checked in
// order), its collection and how its record is presented in email.
type Category struct {
	Type       models.BookingType
	Collection string
	Label      string

	fields  []field
	display []display
	summary func(b *models.BookingInquiry) string
}

// Rows returns the populated category-specific fields in presentation order.
func (c *Category) Rows(b *models.BookingInquiry) []Row {
	var rows []Row
	for _, d := range c.display {
		f, ok := c.lookup(d.key)
		if !ok {
			continue
		}
		if v := fieldValue(f, b); v != "" {
			rows = append(rows, Row{Label: d.label, Value: v})
		}
	}
	return rows
}

// Summary is the short human phrase for the customer acknowledgment
// ("Goa", "Delhi to Dubai", ...). Empty when nothing useful was submitted.
func (c *Category) Summary(b *models.BookingInquiry) string {
	if c.summary == nil {
		return ""
	}
	return c.summary(b)
}

func (c *Category) lookup(key string) (field, bool) {
	for _, f := range c.fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

func fieldValue(f field, b *models.BookingInquiry) string {
	if f.target == nil {
		return ""
	}
	switch p := f.target(b).(type) {
	case *string:
		return *p
	case *int:
		if *p == 0 {
			return ""
		}
		return strconv.Itoa(*p)
	}
	return ""
}

func textField(key, label string, required bool, target func(*models.BookingInquiry) *string) field {
	f := field{
		key:      key,
		kind:     kindText,
		required: required,
		messages: map[string]string{
			"base": "* " + label + " Must Be String",
		},
		target: func(b *models.BookingInquiry) any { return target(b) },
	}
	if required {
		f.tag = "required"
		f.messages["required"] = "* " + label + " Is Required"
	}
	return f
}

func countField(key, label, unit string, target func(*models.BookingInquiry) *int) field {
	return field{
		key:      key,
		kind:     kindCount,
		required: true,
		tag:      "min=1",
		messages: map[string]string{
			"base":     "* " + label + " Must Be Number",
			"min":      "* Please enter at least 1 " + unit,
			"required": "* " + label + " is required",
		},
		target: func(b *models.BookingInquiry) any { return target(b) },
	}
}

func commonFields(t models.BookingType) []field {
	email := textField("email", "Email", true, func(b *models.BookingInquiry) *string { return &b.Email })
	email.tag = "required,email"
	email.lower = true
	email.messages["required"] = "* Email is required"
	email.messages["email"] = "* Email Must Be A Valid Email"

	return []field{
		textField("name", "Name", true, func(b *models.BookingInquiry) *string { return &b.Name }),
		textField("phone", "Phone", true, func(b *models.BookingInquiry) *string { return &b.Phone }),
		email,
		{
			key:  "tripType",
			kind: kindText,
			tag:  "oneof=" + models.TripTypeDomestic + " " + models.TripTypeInternational,
			messages: map[string]string{
				"base":  "* Trip Type Must Be String",
				"oneof": "* Trip Type Must Be domestic or international",
			},
			target: func(b *models.BookingInquiry) any { return &b.TripType },
		},
		{
			key:  "type",
			kind: kindText,
			tag:  "oneof=" + string(t),
			messages: map[string]string{
				"base":  "* Booking Type Must Be String",
				"oneof": "* Booking Type Must Be " + string(t),
			},
		},
	}
}

func withCommon(t models.BookingType, specific ...field) []field {
	return append(commonFields(t), specific...)
}

var packageCategory = &Category{
	Type:       models.BookingTypePackage,
	Collection: "packagebookings",
	Label:      "📦 Package",
	fields: withCommon(models.BookingTypePackage,
		countField("persons", "Number of persons", "person", func(b *models.BookingInquiry) *int { return &b.Persons }),
		textField("destination", "Destination", false, func(b *models.BookingInquiry) *string { return &b.Destination }),
		textField("budget", "Budget", false, func(b *models.BookingInquiry) *string { return &b.Budget }),
		textField("date", "Date", false, func(b *models.BookingInquiry) *string { return &b.Date }),
		textField("tourDetails", "Tour Details", false, func(b *models.BookingInquiry) *string { return &b.TourDetails }),
		textField("packageName", "Package Name", false, func(b *models.BookingInquiry) *string { return &b.PackageName }),
		textField("packagePrice", "Package Price", false, func(b *models.BookingInquiry) *string { return &b.PackagePrice }),
		textField("packageDuration", "Package Duration", false, func(b *models.BookingInquiry) *string { return &b.PackageDuration }),
	),
	display: []display{
		{"Number of Persons", "persons"},
		{"Destination", "destination"},
		{"Budget Per Person", "budget"},
		{"Preferred Travel Date", "date"},
		{"Package Name", "packageName"},
		{"Package Price", "packagePrice"},
		{"Package Duration", "packageDuration"},
		{"Tour Related Details", "tourDetails"},
	},
	summary: func(b *models.BookingInquiry) string {
		if b.PackageName != "" {
			return b.PackageName
		}
		return b.Destination
	},
}

var flightCategory = &Category{
	Type:       models.BookingTypeFlight,
	Collection: "flightbookings",
	Label:      "✈️ Flight",
	fields: withCommon(models.BookingTypeFlight,
		textField("from", "From (Source)", true, func(b *models.BookingInquiry) *string { return &b.From }),
		textField("to", "To (Destination)", true, func(b *models.BookingInquiry) *string { return &b.To }),
		textField("date", "Travel Date", true, func(b *models.BookingInquiry) *string { return &b.Date }),
		countField("persons", "Passengers", "passenger", func(b *models.BookingInquiry) *int { return &b.Persons }),
		textField("budget", "Budget", false, func(b *models.BookingInquiry) *string { return &b.Budget }),
	),
	display: []display{
		{"From (Source)", "from"},
		{"To (Destination)", "to"},
		{"Travel Date", "date"},
		{"Passengers", "persons"},
		{"Budget", "budget"},
	},
	summary: func(b *models.BookingInquiry) string {
		return strings.TrimSpace(b.From + " to " + b.To)
	},
}

var hotelsCategory = &Category{
	Type:       models.BookingTypeHotels,
	Collection: "hotelsbookings",
	Label:      "🏨 Hotels",
	fields: withCommon(models.BookingTypeHotels,
		textField("location", "Location", true, func(b *models.BookingInquiry) *string { return &b.Location }),
		textField("checkIn", "Check-in Date", true, func(b *models.BookingInquiry) *string { return &b.CheckIn }),
		textField("checkOut", "Check-out Date", true, func(b *models.BookingInquiry) *string { return &b.CheckOut }),
		countField("rooms", "Rooms", "room", func(b *models.BookingInquiry) *int { return &b.Rooms }),
		countField("adults", "Adults", "adult", func(b *models.BookingInquiry) *int { return &b.Adults }),
		textField("budget", "Budget", false, func(b *models.BookingInquiry) *string { return &b.Budget }),
	),
	display: []display{
		{"Location", "location"},
		{"Check-in Date", "checkIn"},
		{"Check-out Date", "checkOut"},
		{"Rooms", "rooms"},
		{"Adults", "adults"},
		{"Budget", "budget"},
	},
	summary: func(b *models.BookingInquiry) string {
		return b.Location
	},
}

var categories = map[models.BookingType]*Category{
	models.BookingTypePackage: packageCategory,
	models.BookingTypeFlight:  flightCategory,
	models.BookingTypeHotels:  hotelsCategory,
}

// CategoryFor returns the category for t, falling back to package.
func CategoryFor(t models.BookingType) *Category {
	if c, ok := categories[t]; ok {
		return c
	}
	return packageCategory
}

// Categories lists every category, package first.
func Categories() []*Category {
	return []*Category{packageCategory, flightCategory, hotelsCategory}
}

// resolveCategory picks the rule set from the raw "type" value. Missing or
// unrecognised values get the package rules.
func resolveCategory(raw any) *Category {
	s, ok := raw.(string)
	if !ok {
		return packageCategory
	}
	return CategoryFor(models.BookingType(s))
}
