package models

import "time"

// BookingType is the inquiry category. It selects the rule set, the
// collection and the email layout.
type BookingType string

const (
	BookingTypePackage BookingType = "package"
	BookingTypeFlight  BookingType = "flight"
	BookingTypeHotels  BookingType = "hotels"
)

// Title returns the capitalised name used in subjects ("Package").
func (t BookingType) Title() string {
	switch t {
	case BookingTypeFlight:
		return "Flight"
	case BookingTypeHotels:
		return "Hotels"
	default:
		return "Package"
	}
}

const (
	TripTypeDomestic      = "domestic"
	TripTypeInternational = "international"
)

// BookingInquiry is one stored booking-inquiry form submission.
// Category fields not relevant to Type are left empty and omitted from storage.
type BookingInquiry struct {
	ID       string      `bson:"id" json:"id"`
	Type     BookingType `bson:"type" json:"type"`
	Name     string      `bson:"name" json:"name"`
	Email    string      `bson:"email" json:"email"`
	Phone    string      `bson:"phone" json:"phone"`
	TripType string      `bson:"tripType" json:"tripType"`

	Persons int    `bson:"persons,omitempty" json:"persons,omitempty"`
	Budget  string `bson:"budget,omitempty" json:"budget,omitempty"`
	Date    string `bson:"date,omitempty" json:"date,omitempty"`

	// package
	Destination     string `bson:"destination,omitempty" json:"destination,omitempty"`
	TourDetails     string `bson:"tourDetails,omitempty" json:"tourDetails,omitempty"`
	PackageName     string `bson:"packageName,omitempty" json:"packageName,omitempty"`
	PackagePrice    string `bson:"packagePrice,omitempty" json:"packagePrice,omitempty"`
	PackageDuration string `bson:"packageDuration,omitempty" json:"packageDuration,omitempty"`

	// flight
	From string `bson:"from,omitempty" json:"from,omitempty"`
	To   string `bson:"to,omitempty" json:"to,omitempty"`

	// hotels
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	CheckIn  string `bson:"checkIn,omitempty" json:"checkIn,omitempty"`
	CheckOut string `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
	Rooms    int    `bson:"rooms,omitempty" json:"rooms,omitempty"`
	Adults   int    `bson:"adults,omitempty" json:"adults,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
