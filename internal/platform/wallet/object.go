package wallet

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/walletobjects/v1"

	"github.com/diagnosis/wallet-pass/internal/domain"
)

// Builder turns guest input into generic wallet objects. It is immutable
// after NewBuilder and safe for concurrent use.
type Builder struct {
	namespace string
	tmpl      Template
	newID     func() string
	now       func() time.Time
}

type Option func(*Builder)

// WithIDSource replaces the random object id generator.
func WithIDSource(fn func() string) Option {
	return func(b *Builder) { b.newID = fn }
}

// WithClock replaces the time source used for fallback barcode values.
func WithClock(fn func() time.Time) Option {
	return func(b *Builder) { b.now = fn }
}

func NewBuilder(namespace string, tmpl Template, opts ...Option) (*Builder, error) {
	if namespace == "" {
		return nil, errors.New("wallet: issuer namespace is required")
	}
	if err := tmpl.validate(); err != nil {
		return nil, fmt.Errorf("wallet: %w", err)
	}
	if tmpl.Language == "" {
		tmpl.Language = DefaultLanguage
	}
	tmpl.Slots = append([]Slot(nil), tmpl.Slots...)

	b := &Builder{
		namespace: namespace,
		tmpl:      tmpl,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *Builder) ClassID() string {
	return b.namespace + "." + b.tmpl.ClassSuffix
}

func (b *Builder) Template() Template {
	t := b.tmpl
	t.Slots = append([]Slot(nil), b.tmpl.Slots...)
	return t
}

// Build fills the template with in. Callers validate required fields first.
func (b *Builder) Build(in domain.GuestInput) *walletobjects.GenericObject {
	t := b.tmpl

	modules := make([]*walletobjects.TextModuleData, 0, len(t.Slots))
	for _, s := range t.Slots {
		modules = append(modules, &walletobjects.TextModuleData{
			Id:     s.Key,
			Header: s.Label,
			Body:   orDefault(in.Value(s.Field), s.Default),
		})
	}

	obj := &walletobjects.GenericObject{
		Id:                 b.namespace + "." + b.newID(),
		ClassId:            b.ClassID(),
		GenericType:        t.GenericType,
		HexBackgroundColor: t.HexBackgroundColor,
		CardTitle:          b.localized(t.CardTitle),
		Header:             b.localized(orDefault(in.GuestName, t.HeaderDefault)),
		Subheader:          b.localized(b.subheader(in.GuestType)),
		Logo:               b.image(t.LogoURI, t.LogoDescription),
		HeroImage:          b.image(t.HeroURI, t.HeroDescription),
		TextModulesData:    modules,
		Barcode: &walletobjects.Barcode{
			Type:          BarcodeTypeQR,
			Value:         b.barcodeValue(in),
			AlternateText: orDefault(t.BarcodeAltText, orDefault(in.GuestName, "Guest Pass")),
		},
	}
	return obj
}

func (b *Builder) subheader(guestType string) string {
	if b.tmpl.Subheader == SubheaderAccess {
		if guestType == domain.GuestTypeGuest {
			return SubheaderGuestAccess
		}
		return SubheaderResidentAccess
	}
	return orDefault(guestType, b.tmpl.SubheaderDefault)
}

func (b *Builder) barcodeValue(in domain.GuestInput) string {
	if in.BarcodeValue != "" {
		return in.BarcodeValue
	}
	return fmt.Sprintf("GUEST:%s:ROOM:%s:%d", in.GuestName, in.Room, b.now().UnixMilli())
}

func (b *Builder) localized(value string) *walletobjects.LocalizedString {
	return &walletobjects.LocalizedString{
		DefaultValue: &walletobjects.TranslatedString{
			Language: b.tmpl.Language,
			Value:    value,
		},
	}
}

func (b *Builder) image(uri, description string) *walletobjects.Image {
	if uri == "" {
		return nil
	}
	return &walletobjects.Image{
		SourceUri:          &walletobjects.ImageUri{Uri: uri},
		ContentDescription: b.localized(description),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
