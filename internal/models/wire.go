package models

// WireProperty is the client-facing property shape.
type WireProperty struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	ROI              *float64 `json:"roi,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	FundedPercentage float64  `json:"fundedPercentage"`
	Capacity         *float64 `json:"capacity,omitempty"`
	OwnerName        string   `json:"ownerName,omitempty"`
	AreaSqFt         *float64 `json:"areaSqFt,omitempty"`
}

// Normalize maps a stored record from any backend to the wire shape. The
// datastore name wins over the mock-store name; funded percentage falls back
// to 0 and other missing numbers stay absent.
func Normalize(p Property) WireProperty {
	w := WireProperty{
		ID:        p.ID,
		Title:     p.Title,
		Location:  p.Location,
		ROI:       p.ROI,
		Price:     firstOf(p.PricePerPanel, p.Price),
		Capacity:  firstOf(p.CapacityKw, p.Capacity),
		OwnerName: p.OwnerName,
		AreaSqFt:  p.AreaSqFt,
	}
	if funded := firstOf(p.FundedLevel, p.FundedPercentage); funded != nil {
		w.FundedPercentage = *funded
	}
	return w
}

// NormalizeAll keeps the input order.
func NormalizeAll(props []Property) []WireProperty {
	out := make([]WireProperty, 0, len(props))
	for _, p := range props {
		out = append(out, Normalize(p))
	}
	return out
}

func firstOf(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
