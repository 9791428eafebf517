package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"pioneertravel/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// errWrongType marks a value that could not be coerced to the field's kind.
var errWrongType = errors.New("wrong type")

// coerce normalises a raw JSON value for f. It returns (nil, nil) when the
// value counts as absent.
func coerce(f field, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	switch f.kind {
	case kindText:
		s, ok := raw.(string)
		if !ok {
			return nil, errWrongType
		}
		s = strings.TrimSpace(s)
		if f.lower {
			s = strings.ToLower(s)
		}
		return s, nil
	case kindCount:
		return coerceCount(raw)
	}
	return nil, errWrongType
}

// coerceCount accepts JSON integers and numeric strings ("3"). Empty strings
// count as absent; fractional or non-numeric values are rejected.
func coerceCount(raw any) (any, error) {
	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil || f != math.Trunc(f) {
				return nil, errWrongType
			}
			n = int64(f)
		}
		return int(n), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, errWrongType
		}
		return int(v), nil
	case int:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errWrongType
		}
		return n, nil
	}
	return nil, errWrongType
}

// check validates one present value against the field's tag and returns the
// customer-facing message of the first failed constraint.
func check(f field, value any) string {
	if f.tag == "" {
		return ""
	}
	err := validate.Var(value, f.tag)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := f.messages[verrs[0].Tag()]; ok {
			return msg
		}
		return fmt.Sprintf("* %s failed on %s", f.key, verrs[0].Tag())
	}
	return fmt.Sprintf("* %s is invalid", f.key)
}

// Build coerces and validates payload against the category's rules in their
// declared order and, on success, projects it onto a new BookingInquiry.
// The first violation wins.
func (c *Category) Build(payload map[string]any) (*models.BookingInquiry, *ValidationError) {
	inquiry := &models.BookingInquiry{
		Type:     c.Type,
		TripType: models.TripTypeDomestic,
	}

	for _, f := range c.fields {
		value, err := coerce(f, payload[f.key])
		if err != nil {
			return nil, &ValidationError{Field: f.key, Message: f.messages["base"]}
		}
		if value == nil {
			if f.required {
				return nil, &ValidationError{Field: f.key, Message: f.messages["required"]}
			}
			continue
		}
		if msg := check(f, value); msg != "" {
			return nil, &ValidationError{Field: f.key, Message: msg}
		}
		assign(f, inquiry, value)
	}
	return inquiry, nil
}

func assign(f field, b *models.BookingInquiry, value any) {
	if f.target == nil {
		return
	}
	switch p := f.target(b).(type) {
	case *string:
		if s, ok := value.(string); ok && s != "" {
			*p = s
		}
	case *int:
		if n, ok := value.(int); ok {
			*p = n
		}
	}
}
