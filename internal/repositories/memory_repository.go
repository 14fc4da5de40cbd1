package repositories

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"sunshare/internal/models"
)

const MemoryBackendName = "memory"

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MemoryPropertyRepository is the volatile mock store. Records live until the
// process exits.
type MemoryPropertyRepository struct {
	mu         sync.RWMutex
	properties []models.Property
	now        func() time.Time
}

func NewMemoryPropertyRepository(seed []models.Property) *MemoryPropertyRepository {
	props := make([]models.Property, len(seed))
	copy(props, seed)
	return &MemoryPropertyRepository{properties: props, now: time.Now}
}

// NewMockPropertyRepository returns a memory store seeded with MockProperties.
func NewMockPropertyRepository() *MemoryPropertyRepository {
	return NewMemoryPropertyRepository(MockProperties())
}

func (r *MemoryPropertyRepository) Name() string {
	return MemoryBackendName
}

func (r *MemoryPropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Property, len(r.properties))
	copy(out, r.properties)
	return out, nil
}

func (r *MemoryPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	id, err := r.generateID()
	if err != nil {
		return fmt.Errorf("failed to generate property id: %w", err)
	}
	property.ID = id

	r.mu.Lock()
	r.properties = append(r.properties, property.WithMockFields())
	r.mu.Unlock()
	return nil
}

// generateID returns mock-<unix millis>-<7 base36 chars>.
func (r *MemoryPropertyRepository) generateID() (string, error) {
	suffix := make([]byte, 7)
	base := big.NewInt(int64(len(idAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", err
		}
		suffix[i] = idAlphabet[n.Int64()]
	}
	return fmt.Sprintf("mock-%d-%s", r.now().UnixMilli(), suffix), nil
}

// MockProperties is the fixed data set served when the primary datastore is
// unavailable.
func MockProperties() []models.Property {
	return []models.Property{
		mockProperty("mock-1", "Sunny Acres Solar Farm", "Austin, TX", "John Doe", 15.5, 450, 72, 25.5, 2550, 114750),
		mockProperty("mock-2", "Desert Sun Rooftop", "Phoenix, AZ", "Jane Smith", 17.2, 520, 45, 18.2, 1820, 94640),
		mockProperty("mock-3", "Valley View Panels", "Denver, CO", "Mike Johnson", 14.1, 480, 89, 42.0, 4200, 201600),
	}
}

func mockProperty(id, title, location, owner string, roi, price, funded, capacity, area, total float64) models.Property {
	p := models.Property{
		ID:            id,
		Title:         title,
		Location:      location,
		OwnerName:     owner,
		ROI:           models.Float(roi),
		PricePerPanel: models.Float(price),
		FundedLevel:   models.Float(funded),
		CapacityKw:    models.Float(capacity),
		AreaSqFt:      models.Float(area),
		TotalValue:    models.Float(total),
	}
	return p.WithMockFields()
}
