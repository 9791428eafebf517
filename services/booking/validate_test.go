package booking

import (
	"encoding/json"
	"testing"

	"pioneertravel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadOf(t *testing.T, raw string) map[string]any {
	t.Helper()
	p, err := decodePayload([]byte(raw))
	require.NoError(t, err)
	return p
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want models.BookingType
	}{
		{"missing", nil, models.BookingTypePackage},
		{"package", "package", models.BookingTypePackage},
		{"flight", "flight", models.BookingTypeFlight},
		{"hotels", "hotels", models.BookingTypeHotels},
		{"unknown", "cruise", models.BookingTypePackage},
		{"not a string", json.Number("3"), models.BookingTypePackage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCategory(tt.raw).Type)
		})
	}
}

func TestBuild_Package(t *testing.T) {
	p := payloadOf(t, `{
		"type": "package",
		"name": "  Asha Rao ",
		"email": "Asha@Example.com",
		"phone": "9876543210",
		"persons": 2,
		"destination": "Goa",
		"budget": "",
		"unknownField": "ignored"
	}`)

	inquiry, verr := packageCategory.Build(p)
	require.Nil(t, verr)

	assert.Equal(t, models.BookingTypePackage, inquiry.Type)
	assert.Equal(t, "Asha Rao", inquiry.Name)
	assert.Equal(t, "asha@example.com", inquiry.Email)
	assert.Equal(t, 2, inquiry.Persons)
	assert.Equal(t, "Goa", inquiry.Destination)
	assert.Empty(t, inquiry.Budget)
	assert.Equal(t, models.TripTypeDomestic, inquiry.TripType)
}

func TestBuild_Coercion(t *testing.T) {
	tests := []struct {
		name    string
		persons string
		want    int
		message string
	}{
		{"numeric string", `"3"`, 3, ""},
		{"padded numeric string", `" 4 "`, 4, ""},
		{"integer", `5`, 5, ""},
		{"integral float", `6.0`, 6, ""},
		{"non-numeric string", `"abc"`, 0, "* Number of persons Must Be Number"},
		{"fraction", `2.5`, 0, "* Number of persons Must Be Number"},
		{"boolean", `true`, 0, "* Number of persons Must Be Number"},
		{"empty string", `""`, 0, "* Number of persons is required"},
		{"zero", `0`, 0, "* Please enter at least 1 person"},
		{"negative string", `"-2"`, 0, "* Please enter at least 1 person"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := payloadOf(t, `{"name":"Asha","email":"asha@example.com","phone":"9876543210","persons":`+tt.persons+`}`)
			inquiry, verr := packageCategory.Build(p)
			if tt.message != "" {
				require.NotNil(t, verr)
				assert.Equal(t, "persons", verr.Field)
				assert.Equal(t, tt.message, verr.Message)
				return
			}
			require.Nil(t, verr)
			assert.Equal(t, tt.want, inquiry.Persons)
		})
	}
}

func TestBuild_FirstViolationWins(t *testing.T) {
	tests := []struct {
		name     string
		category *Category
		body     string
		field    string
		message  string
	}{
		{
			name:     "missing everything reports name",
			category: packageCategory,
			body:     `{}`,
			field:    "name",
			message:  "* Name Is Required",
		},
		{
			name:     "name wrong type",
			category: packageCategory,
			body:     `{"name":42,"email":"a@b.co","phone":"9876543210","persons":1}`,
			field:    "name",
			message:  "* Name Must Be String",
		},
		{
			name:     "invalid email",
			category: packageCategory,
			body:     `{"name":"A","email":"not-an-email","phone":"9876543210","persons":1}`,
			field:    "email",
			message:  "* Email Must Be A Valid Email",
		},
		{
			name:     "phone before email",
			category: packageCategory,
			body:     `{"name":"A","email":"bad"}`,
			field:    "phone",
			message:  "* Phone Is Required",
		},
		{
			name:     "trip type enum",
			category: flightCategory,
			body:     `{"name":"A","email":"a@b.co","phone":"9876543210","tripType":"space"}`,
			field:    "tripType",
			message:  "* Trip Type Must Be domestic or international",
		},
		{
			name:     "unknown type falls back to package and fails",
			category: resolveCategory("cruise"),
			body:     `{"type":"cruise","name":"A","email":"a@b.co","phone":"9876543210","persons":1}`,
			field:    "type",
			message:  "* Booking Type Must Be package",
		},
		{
			name:     "flight missing route reports from",
			category: flightCategory,
			body:     `{"type":"flight","name":"Ravi","email":"ravi@x.com","phone":"9876543210","persons":"1"}`,
			field:    "from",
			message:  "* From (Source) Is Required",
		},
		{
			name:     "flight missing to",
			category: flightCategory,
			body:     `{"type":"flight","name":"Ravi","email":"ravi@x.com","phone":"9876543210","from":"Delhi","date":"2026-12-01","persons":1}`,
			field:    "to",
			message:  "* To (Destination) Is Required",
		},
		{
			name:     "flight passengers",
			category: flightCategory,
			body:     `{"type":"flight","name":"Ravi","email":"ravi@x.com","phone":"9876543210","from":"Delhi","to":"Dubai","date":"2026-12-01"}`,
			field:    "persons",
			message:  "* Passengers is required",
		},
		{
			name:     "hotels zero rooms",
			category: hotelsCategory,
			body:     `{"type":"hotels","name":"Meera","email":"meera@example.com","phone":"9876543210","location":"Jaipur","checkIn":"2026-11-01","checkOut":"2026-11-04","rooms":0,"adults":2}`,
			field:    "rooms",
			message:  "* Please enter at least 1 room",
		},
		{
			name:     "hotels adults string",
			category: hotelsCategory,
			body:     `{"type":"hotels","name":"Meera","email":"meera@example.com","phone":"9876543210","location":"Jaipur","checkIn":"2026-11-01","checkOut":"2026-11-04","rooms":"1","adults":"two"}`,
			field:    "adults",
			message:  "* Adults Must Be Number",
		},
		{
			name:     "blank required text",
			category: hotelsCategory,
			body:     `{"type":"hotels","name":"Meera","email":"meera@example.com","phone":"9876543210","location":"   "}`,
			field:    "location",
			message:  "* Location Is Required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inquiry, verr := tt.category.Build(payloadOf(t, tt.body))
			assert.Nil(t, inquiry)
			require.NotNil(t, verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestBuild_HotelsAndFlight(t *testing.T) {
	hotel, verr := hotelsCategory.Build(payloadOf(t, `{
		"type":"hotels","name":"Meera","email":"meera@example.com","phone":"9876543210",
		"tripType":"international","location":"Bali","checkIn":"2026-11-01","checkOut":"2026-11-04",
		"rooms":"2","adults":3,"budget":"50k","persons":9,"destination":"ignored"
	}`))
	require.Nil(t, verr)
	assert.Equal(t, models.BookingTypeHotels, hotel.Type)
	assert.Equal(t, models.TripTypeInternational, hotel.TripType)
	assert.Equal(t, 2, hotel.Rooms)
	assert.Equal(t, 3, hotel.Adults)
	assert.Equal(t, "50k", hotel.Budget)
	assert.Zero(t, hotel.Persons, "fields of other categories are not carried")
	assert.Empty(t, hotel.Destination)

	flight, verr := flightCategory.Build(payloadOf(t, `{
		"type":"flight","name":"Ravi","email":"ravi@x.com","phone":"9876543210",
		"from":"Delhi","to":"Dubai","date":"2026-12-01","persons":"1"
	}`))
	require.Nil(t, verr)
	assert.Equal(t, "Delhi", flight.From)
	assert.Equal(t, "Dubai", flight.To)
	assert.Equal(t, 1, flight.Persons)
}

func TestCategory_RowsAndSummary(t *testing.T) {
	b := &models.BookingInquiry{
		Type:        models.BookingTypePackage,
		Persons:     2,
		Destination: "Goa",
		TourDetails: "Beach stay",
	}
	rows := packageCategory.Rows(b)
	assert.Equal(t, []Row{
		{Label: "Number of Persons", Value: "2"},
		{Label: "Destination", Value: "Goa"},
		{Label: "Tour Related Details", Value: "Beach stay"},
	}, rows)
	assert.Equal(t, "Goa", packageCategory.Summary(b))

	b.PackageName = "Goa Getaway"
	assert.Equal(t, "Goa Getaway", packageCategory.Summary(b))

	f := &models.BookingInquiry{From: "Delhi", To: "Dubai"}
	assert.Equal(t, "Delhi to Dubai", flightCategory.Summary(f))

	h := &models.BookingInquiry{Location: "Jaipur"}
	assert.Equal(t, "Jaipur", hotelsCategory.Summary(h))
	assert.Empty(t, hotelsCategory.Rows(&models.BookingInquiry{}))
}

func TestDecodePayload_Invalid(t *testing.T) {
	for _, body := range []string{``, `not json`, `[1,2]`, `null`, `"text"`} {
		_, err := decodePayload([]byte(body))
		require.Error(t, err, body)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid request body", verr.Message)
	}
}
