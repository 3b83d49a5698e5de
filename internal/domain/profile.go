package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the professional category of a profile. The set is closed:
// registration assigns exactly one role and it never changes afterwards.
type Role string

const (
	RolePhotographer Role = "photographer"
	RoleModel        Role = "model"
	RoleMakeupArtist Role = "makeup_artist"
	RoleStylist      Role = "stylist"
	RoleProducer     Role = "producer"
)

// Roles lists every valid role in declaration order.
var Roles = []Role{RolePhotographer, RoleModel, RoleMakeupArtist, RoleStylist, RoleProducer}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RolePhotographer, RoleModel, RoleMakeupArtist, RoleStylist, RoleProducer:
		return true
	}
	return false
}

// SubscriptionTier affects featured ranking, never filter eligibility.
type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

type Profile struct {
	ID               uuid.UUID        `json:"id" db:"id"`
	Username         string           `json:"username" db:"username"`
	FullName         string           `json:"full_name" db:"full_name"`
	Role             Role             `json:"role" db:"role"`
	Bio              string           `json:"bio" db:"bio"`
	Location         string           `json:"location" db:"location"`
	AvatarURL        string           `json:"avatar_url" db:"avatar_url"`
	CoverURL         string           `json:"cover_url" db:"cover_url"`
	SubscriptionTier SubscriptionTier `json:"subscription_tier" db:"subscription_tier"`
	Attributes       RoleAttributes   `json:"attributes" db:"-"`
	PortfolioCount   int              `json:"portfolio_count" db:"portfolio_count"`
	PortfolioPreview string           `json:"portfolio_preview,omitempty" db:"portfolio_preview"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// UnmarshalJSON decodes a profile wholesale, dispatching the attribute bag
// on the role field so Go consumers of the API get the typed variant back.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	aux := struct {
		*alias
		Attributes json.RawMessage `json:"attributes"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.Attributes) == 0 || string(aux.Attributes) == "null" {
		p.Attributes = nil
		return nil
	}
	attrs, err := DecodeAttributes(p.Role, aux.Attributes)
	if err != nil {
		return err
	}
	p.Attributes = attrs
	return nil
}

// PortfolioImage is an ordered image attached to a profile. Search only
// consumes the count and the first image; management lives elsewhere.
type PortfolioImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	AltText   string    `json:"alt_text" db:"alt_text"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
}

// RoleAttributes is the role-keyed variant of extra profile data. Each role
// carries a different attribute set; the accessors return zero values for
// variants that lack a field, so filter predicates no-op instead of crashing
// when a filter does not apply to the active variant.
type RoleAttributes interface {
	// SpecialtyTags returns the variant's specialty (or model type) array.
	SpecialtyTags() []string
	// ExperienceLevel returns "" for roles without an experience field.
	ExperienceLevel() string
	// TravelAvailability returns nil for roles without a travel flag.
	TravelAvailability() *bool
	// StudioAccess returns nil for roles without a studio flag.
	StudioAccess() *bool
	// BudgetRange returns "" for roles without a budget field.
	BudgetRange() string
}

type PhotographerAttributes struct {
	Specialties []string `json:"specialties,omitempty"`
	Experience  string   `json:"experience_level,omitempty"`
	Studio      *bool    `json:"studio_access,omitempty"`
}

func (a PhotographerAttributes) SpecialtyTags() []string   { return a.Specialties }
func (a PhotographerAttributes) ExperienceLevel() string   { return a.Experience }
func (a PhotographerAttributes) TravelAvailability() *bool { return nil }
func (a PhotographerAttributes) StudioAccess() *bool       { return a.Studio }
func (a PhotographerAttributes) BudgetRange() string       { return "" }

type ModelAttributes struct {
	ModelTypes   []string `json:"model_types,omitempty"`
	HeightCM     int      `json:"height_cm,omitempty"`
	Measurements string   `json:"measurements,omitempty"`
	HairColor    string   `json:"hair_color,omitempty"`
	EyeColor     string   `json:"eye_color,omitempty"`
	Experience   string   `json:"experience_level,omitempty"`
	Travel       *bool    `json:"travel_availability,omitempty"`
}

func (a ModelAttributes) SpecialtyTags() []string   { return a.ModelTypes }
func (a ModelAttributes) ExperienceLevel() string   { return a.Experience }
func (a ModelAttributes) TravelAvailability() *bool { return a.Travel }
func (a ModelAttributes) StudioAccess() *bool       { return nil }
func (a ModelAttributes) BudgetRange() string       { return "" }

type MakeupArtistAttributes struct {
	Specialties   []string `json:"specialties,omitempty"`
	KitHighlights []string `json:"kit_highlights,omitempty"`
	Experience    string   `json:"experience_level,omitempty"`
	Travel        *bool    `json:"travel_availability,omitempty"`
}

func (a MakeupArtistAttributes) SpecialtyTags() []string   { return a.Specialties }
func (a MakeupArtistAttributes) ExperienceLevel() string   { return a.Experience }
func (a MakeupArtistAttributes) TravelAvailability() *bool { return a.Travel }
func (a MakeupArtistAttributes) StudioAccess() *bool       { return nil }
func (a MakeupArtistAttributes) BudgetRange() string       { return "" }

type StylistAttributes struct {
	Specialties   []string `json:"specialties,omitempty"`
	IndustryFocus []string `json:"industry_focus,omitempty"`
	Travel        *bool    `json:"travel_availability,omitempty"`
}

func (a StylistAttributes) SpecialtyTags() []string   { return a.Specialties }
func (a StylistAttributes) ExperienceLevel() string   { return "" }
func (a StylistAttributes) TravelAvailability() *bool { return a.Travel }
func (a StylistAttributes) StudioAccess() *bool       { return nil }
func (a StylistAttributes) BudgetRange() string       { return "" }

type ProducerAttributes struct {
	Specialties        []string `json:"specialties,omitempty"`
	TypicalBudgetRange string   `json:"typical_budget_range,omitempty"`
}

func (a ProducerAttributes) SpecialtyTags() []string   { return a.Specialties }
func (a ProducerAttributes) ExperienceLevel() string   { return "" }
func (a ProducerAttributes) TravelAvailability() *bool { return nil }
func (a ProducerAttributes) StudioAccess() *bool       { return nil }
func (a ProducerAttributes) BudgetRange() string       { return a.TypicalBudgetRange }

// DecodeAttributes unmarshals the stored attribute bag into the variant for
// the given role. The storage layer does not enforce the shape, so unknown
// fields are ignored and an empty bag decodes to the variant's zero value.
func DecodeAttributes(role Role, raw []byte) (RoleAttributes, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	switch role {
	case RolePhotographer:
		var a PhotographerAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode photographer attributes: %w", err)
		}
		return a, nil
	case RoleModel:
		var a ModelAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode model attributes: %w", err)
		}
		return a, nil
	case RoleMakeupArtist:
		var a MakeupArtistAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode makeup artist attributes: %w", err)
		}
		return a, nil
	case RoleStylist:
		var a StylistAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode stylist attributes: %w", err)
		}
		return a, nil
	case RoleProducer:
		var a ProducerAttributes
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("decode producer attributes: %w", err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
}
