package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"sunshare/internal/models"
)

const PostgresBackendName = "postgres"

// PostgresPropertyRepository keeps each property as a JSONB document, keyed
// by a UUID.
type PostgresPropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPropertyRepository(pool *pgxpool.Pool) *PostgresPropertyRepository {
	return &PostgresPropertyRepository{pool: pool}
}

func (r *PostgresPropertyRepository) Name() string {
	return PostgresBackendName
}

func (r *PostgresPropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	query := `
		SELECT id, doc
		FROM properties
		ORDER BY seq ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var (
			id  uuid.UUID
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}

		var property models.Property
		if err := json.Unmarshal(doc, &property); err != nil {
			return nil, fmt.Errorf("failed to decode property %s: %w", id, err)
		}
		property.ID = id.String()
		properties = append(properties, property)
	}

	return properties, rows.Err()
}

func (r *PostgresPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	id := uuid.New()

	stored := *property
	stored.ID = ""
	doc, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode property: %w", err)
	}

	query := `
		INSERT INTO properties (id, doc, created_at)
		VALUES ($1, $2, $3)
	`

	if _, err := r.pool.Exec(ctx, query, id, doc, stored.CreatedAt); err != nil {
		return err
	}

	property.ID = id.String()
	return nil
}
