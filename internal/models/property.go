package models

import (
	"strings"
	"time"
)

const (
	DefaultOwnerName = "Anonymous"
	DefaultTitle     = "New Solar Project"
	DefaultLocation  = "TBD"
	DefaultAreaSqFt  = 1000.0
)

// Property is a stored property record. Datastore documents only carry the
// canonical names (capacityKw, fundedLevel, pricePerPanel); mock records carry
// the wire names (capacity, fundedPercentage, price) as well. Numeric fields
// are pointers so a missing field can be told apart from zero.
type Property struct {
	ID            string     `bson:"-" json:"id,omitempty"`
	OwnerName     string     `bson:"ownerName" json:"ownerName"`
	Title         string     `bson:"title" json:"title"`
	Location      string     `bson:"location" json:"location"`
	AreaSqFt      *float64   `bson:"areaSqFt,omitempty" json:"areaSqFt,omitempty"`
	CapacityKw    *float64   `bson:"capacityKw,omitempty" json:"capacityKw,omitempty"`
	FundedLevel   *float64   `bson:"fundedLevel,omitempty" json:"fundedLevel,omitempty"`
	ROI           *float64   `bson:"roi,omitempty" json:"roi,omitempty"`
	PricePerPanel *float64   `bson:"pricePerPanel,omitempty" json:"pricePerPanel,omitempty"`
	TotalValue    *float64   `bson:"totalValue,omitempty" json:"totalValue,omitempty"`
	CreatedAt     *time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`

	// Mock store only.
	Capacity         *float64 `bson:"-" json:"capacity,omitempty"`
	FundedPercentage *float64 `bson:"-" json:"fundedPercentage,omitempty"`
	Price            *float64 `bson:"-" json:"price,omitempty"`
}

// Prepare fills in the string defaults for a new listing.
func (p *Property) Prepare() {
	p.OwnerName = strings.TrimSpace(p.OwnerName)
	if p.OwnerName == "" {
		p.OwnerName = DefaultOwnerName
	}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	p.Location = strings.TrimSpace(p.Location)
	if p.Location == "" {
		p.Location = DefaultLocation
	}
	if p.CreatedAt == nil {
		now := time.Now().UTC()
		p.CreatedAt = &now
	}
}

// WithMockFields copies the canonical values onto the wire-named fields, the
// way records in the in-memory store are kept.
func (p Property) WithMockFields() Property {
	p.Capacity = p.CapacityKw
	p.FundedPercentage = p.FundedLevel
	p.Price = p.PricePerPanel
	return p
}

// CreatePropertyRequest is the body of POST /api/properties. Every field is
// optional.
type CreatePropertyRequest struct {
	OwnerName   string          `json:"ownerName"`
	Title       string          `json:"title"`
	Location    string          `json:"location"`
	AreaSqFt    CoercibleNumber `json:"areaSqFt"`
	FundedLevel CoercibleNumber `json:"fundedLevel"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
