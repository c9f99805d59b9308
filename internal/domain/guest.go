package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/diagnosis/wallet-pass/internal/utils"
)

// Field names a guest form field as it appears in the request body.
type Field string

const (
	FieldGuestName    Field = "guestName"
	FieldGuestType    Field = "guestType"
	FieldUnit         Field = "unit"
	FieldRoom         Field = "room"
	FieldCheckIn      Field = "checkIn"
	FieldCheckOut     Field = "checkOut"
	FieldParking      Field = "parking"
	FieldCompanions   Field = "companions"
	FieldPet          Field = "pet"
	FieldAmenities    Field = "amenities"
	FieldBarcodeValue Field = "barcodeValue"
)

const (
	GuestTypeGuest    = "guest"
	GuestTypeResident = "resident"
)

// GuestInput is the caller-supplied guest data. Every value is an already
// trimmed string; empty means absent.
type GuestInput struct {
	GuestName    string `json:"guestName" validate:"required"`
	GuestType    string `json:"guestType,omitempty"`
	Unit         string `json:"unit,omitempty"`
	Room         string `json:"room" validate:"required"`
	CheckIn      string `json:"checkIn,omitempty"`
	CheckOut     string `json:"checkOut,omitempty"`
	Parking      string `json:"parking,omitempty"`
	Companions   string `json:"companions,omitempty"`
	Pet          string `json:"pet,omitempty"`
	Amenities    string `json:"amenities,omitempty"`
	BarcodeValue string `json:"barcodeValue,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// GuestInputFromMap reads guest fields out of a decoded JSON object. Only
// string and number values are taken; anything else counts as absent.
func GuestInputFromMap(body map[string]any) GuestInput {
	var in GuestInput
	for field, dst := range in.fields() {
		*dst = stringValue(body[string(field)])
	}
	return in
}

// Value returns the input value for field, or "" for unknown fields.
func (g GuestInput) Value(field Field) string {
	if p, ok := g.fields()[field]; ok {
		return *p
	}
	return ""
}

// Validate checks the required fields and returns a *ValidationError naming
// every one that is missing.
func (g GuestInput) Validate() error {
	err := validate.Struct(g)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Reason: err.Error()}
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, fe.Field())
	}
	return &ValidationError{Fields: missing}
}

func (g *GuestInput) fields() map[Field]*string {
	return map[Field]*string{
		FieldGuestName:    &g.GuestName,
		FieldGuestType:    &g.GuestType,
		FieldUnit:         &g.Unit,
		FieldRoom:         &g.Room,
		FieldCheckIn:      &g.CheckIn,
		FieldCheckOut:     &g.CheckOut,
		FieldParking:      &g.Parking,
		FieldCompanions:   &g.Companions,
		FieldPet:          &g.Pet,
		FieldAmenities:    &g.Amenities,
		FieldBarcodeValue: &g.BarcodeValue,
	}
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return utils.NormalizeString(val)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}
