package wallet

import (
	"fmt"
	"sort"

	"github.com/diagnosis/wallet-pass/internal/domain"
)

// SubheaderMode selects how the guest type becomes the pass subheader.
type SubheaderMode string

const (
	// SubheaderAccess maps "guest" to "Guest Access" and everything else
	// to "Resident Access".
	SubheaderAccess SubheaderMode = "access"
	// SubheaderVerbatim copies the guest type as typed.
	SubheaderVerbatim SubheaderMode = "verbatim"
)

const (
	SubheaderGuestAccess    = "Guest Access"
	SubheaderResidentAccess = "Resident Access"
)

// ParseSubheaderMode accepts the mode names used in configuration.
func ParseSubheaderMode(s string) (SubheaderMode, error) {
	switch m := SubheaderMode(s); m {
	case SubheaderAccess, SubheaderVerbatim:
		return m, nil
	}
	return "", fmt.Errorf("unknown subheader mode %q", s)
}

const (
	DefaultClassSuffix = "digital_door_pass"
	DefaultLanguage    = "en-US"
	BarcodeTypeQR      = "QR_CODE"
)

// Text module keys referenced by the class card template.
const (
	SlotUnit       = "unit"
	SlotRoom       = "room"
	SlotCheckIn    = "check-in"
	SlotCheckOut   = "check-out"
	SlotParking    = "parking"
	SlotCompanions = "companions"
	SlotPet        = "pet"
	SlotAmenities  = "amenities"
)

// Slot is one text module on the pass.
type Slot struct {
	Key     string
	Label   string
	Field   domain.Field
	Default string
}

// Template holds the branding and defaults of one pass design.
type Template struct {
	Name               string
	ClassSuffix        string
	CardTitle          string
	LogoURI            string
	LogoDescription    string
	HeroURI            string
	HeroDescription    string
	HexBackgroundColor string
	GenericType        string
	Language           string

	HeaderDefault    string
	Subheader        SubheaderMode
	SubheaderDefault string

	// BarcodeAltText falls back to the guest name when empty.
	BarcodeAltText string

	Slots []Slot
}

const (
	TemplateDigitalDoor    = "digital-door"
	TemplateHotelGuestPass = "hotel-guest-pass"
)

const (
	googleLogoURI = "https://storage.googleapis.com/wallet-lab-tools-codelab-artifacts-public/pass_google_logo.jpg"
	heroImageURI  = "https://storage.googleapis.com/wallet-lab-tools-codelab-artifacts-public/google-io-hero-demo-only.jpg"
)

// DigitalDoor is the standalone server pass.
func DigitalDoor() Template {
	return Template{
		Name:               TemplateDigitalDoor,
		ClassSuffix:        DefaultClassSuffix,
		CardTitle:          "Digital Door PH",
		LogoURI:            googleLogoURI,
		LogoDescription:    "Digital Door PH Logo",
		HexBackgroundColor: "#518849",
		Language:           DefaultLanguage,
		HeaderDefault:      "Guest Name",
		Subheader:          SubheaderVerbatim,
		SubheaderDefault:   "Guest",
		BarcodeAltText:     "Please show this to concierge",
		Slots: []Slot{
			{Key: SlotUnit, Label: "Unit", Field: domain.FieldUnit, Default: "N/A"},
			{Key: SlotRoom, Label: "Room", Field: domain.FieldRoom, Default: "N/A"},
			{Key: SlotCheckIn, Label: "Check-in", Field: domain.FieldCheckIn, Default: "N/A"},
			{Key: SlotCheckOut, Label: "Check-out", Field: domain.FieldCheckOut, Default: "N/A"},
			{Key: SlotParking, Label: "Parking", Field: domain.FieldParking, Default: "N/A"},
			{Key: SlotCompanions, Label: "Companions", Field: domain.FieldCompanions, Default: "0"},
			{Key: SlotPet, Label: "Pet", Field: domain.FieldPet, Default: "NO"},
			{Key: SlotAmenities, Label: "Amenities", Field: domain.FieldAmenities, Default: "NO"},
		},
	}
}

// HotelGuestPass is the serverless deployment's pass.
func HotelGuestPass() Template {
	return Template{
		Name:               TemplateHotelGuestPass,
		ClassSuffix:        DefaultClassSuffix,
		CardTitle:          "Hotel Guest Pass",
		LogoURI:            googleLogoURI,
		LogoDescription:    "Hotel Logo",
		HeroURI:            heroImageURI,
		HeroDescription:    "Hotel Image",
		HexBackgroundColor: "#4285f4",
		GenericType:        "GENERIC_TYPE_UNSPECIFIED",
		Language:           DefaultLanguage,
		HeaderDefault:      "Guest",
		Subheader:          SubheaderAccess,
		SubheaderDefault:   "Guest",
		Slots: []Slot{
			{Key: SlotUnit, Label: "Unit", Field: domain.FieldUnit, Default: "N/A"},
			{Key: SlotRoom, Label: "Room", Field: domain.FieldRoom, Default: "N/A"},
			{Key: SlotCheckIn, Label: "Check-in", Field: domain.FieldCheckIn, Default: "N/A"},
			{Key: SlotCheckOut, Label: "Check-out", Field: domain.FieldCheckOut, Default: "N/A"},
			{Key: SlotParking, Label: "Parking", Field: domain.FieldParking, Default: "Not assigned"},
			{Key: SlotCompanions, Label: "Companions", Field: domain.FieldCompanions, Default: "0"},
			{Key: SlotPet, Label: "Pets Allowed", Field: domain.FieldPet, Default: "No"},
			{Key: SlotAmenities, Label: "Amenities Access", Field: domain.FieldAmenities, Default: "No"},
		},
	}
}

var templates = map[string]func() Template{
	TemplateDigitalDoor:    DigitalDoor,
	TemplateHotelGuestPass: HotelGuestPass,
}

// LookupTemplate returns a fresh copy of the named preset.
func LookupTemplate(name string) (Template, error) {
	fn, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown pass template %q (known: %v)", name, TemplateNames())
	}
	return fn(), nil
}

func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t Template) validate() error {
	if t.ClassSuffix == "" {
		return fmt.Errorf("template %q: class suffix is required", t.Name)
	}
	if _, err := ParseSubheaderMode(string(t.Subheader)); err != nil {
		return fmt.Errorf("template %q: %w", t.Name, err)
	}
	seen := make(map[string]bool, len(t.Slots))
	for _, s := range t.Slots {
		if s.Key == "" || seen[s.Key] {
			return fmt.Errorf("template %q: slot keys must be unique and non-empty", t.Name)
		}
		seen[s.Key] = true
	}
	return nil
}
