package services

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"sunshare/internal/models"
)

const (
	roiMinTenths  = 120
	roiSpanTenths = 60
	panelMinPrice = 400
	panelSpan     = 200
	wattsPerKw    = 1000
	dollarsPerW   = 4
)

// RandomSource supplies the draws behind roi and pricePerPanel.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom is safe for concurrent use.
var DefaultRandom RandomSource = globalRandom{}

// CapacityKw is areaSqFt / 100 rounded to one decimal.
func CapacityKw(areaSqFt float64) float64 {
	return decimal.NewFromFloat(areaSqFt).
		Div(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
}

// TotalValue is capacityKw * 1000 * 4.
func TotalValue(capacityKw float64) float64 {
	return capacityKw * wattsPerKw * dollarsPerW
}

// RandomROI is uniform over 12.0, 12.1, ..., 17.9.
func RandomROI(rng RandomSource) float64 {
	tenths := roiMinTenths + rng.IntN(roiSpanTenths)
	return decimal.New(int64(tenths), -1).InexactFloat64()
}

// RandomPricePerPanel is a uniform integer in [400, 600).
func RandomPricePerPanel(rng RandomSource) float64 {
	return float64(panelMinPrice + rng.IntN(panelSpan))
}

// NewProperty applies the coercion defaults and derives the computed fields
// for a create request. The result has no id yet.
func NewProperty(req models.CreatePropertyRequest, rng RandomSource) models.Property {
	area := models.DefaultAreaSqFt
	if v, ok := req.AreaSqFt.Value(); ok && v > 0 {
		area = v
	}

	funded := 0.0
	if v, ok := req.FundedLevel.Value(); ok {
		funded = min(max(v, 0), 100)
	}

	capacity := CapacityKw(area)

	property := models.Property{
		OwnerName:     req.OwnerName,
		Title:         req.Title,
		Location:      req.Location,
		AreaSqFt:      models.Float(area),
		CapacityKw:    models.Float(capacity),
		FundedLevel:   models.Float(funded),
		ROI:           models.Float(RandomROI(rng)),
		PricePerPanel: models.Float(RandomPricePerPanel(rng)),
		TotalValue:    models.Float(TotalValue(capacity)),
	}
	property.Prepare()
	return property
}
