package inventory

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/uemerson199/hospitalcare-meta/pkg/database"
	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Repository implements the InventoryRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new inventory repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.InventoryRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// CreateMedication inserts a new medication
func (r *Repository) CreateMedication(med *types.Medication) error {
	query := `
		INSERT INTO medications (id, name, sku, description, manufacturer, dosage, unit,
		                         quantity, minimum_stock, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(query,
		med.ID,
		med.Name,
		med.SKU,
		med.Description,
		med.Manufacturer,
		med.Dosage,
		med.Unit,
		med.Quantity,
		med.MinimumStock,
		med.Price,
		med.CreatedAt,
		med.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return types.NewConflictError(types.ErrCodeDuplicateKey,
				"A medication with this SKU already exists",
				map[string]string{"sku": "sku is already in use"})
		}
		r.logger.WithError(err).Error("Failed to create medication")
		return fmt.Errorf("failed to create medication: %w", err)
	}

	r.logger.WithField("medication_id", med.ID).Info("Created medication")
	return nil
}

// GetMedicationByID retrieves a medication by ID
func (r *Repository) GetMedicationByID(id string) (*types.Medication, error) {
	query := `
		SELECT id, name, sku, description, manufacturer, dosage, unit,
		       quantity, minimum_stock, price, created_at, updated_at
		FROM medications
		WHERE id = $1`

	med := &types.Medication{}
	err := r.db.QueryRow(query, id).Scan(
		&med.ID,
		&med.Name,
		&med.SKU,
		&med.Description,
		&med.Manufacturer,
		&med.Dosage,
		&med.Unit,
		&med.Quantity,
		&med.MinimumStock,
		&med.Price,
		&med.CreatedAt,
		&med.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, "Medication not found")
		}
		r.logger.WithError(err).Error("Failed to get medication")
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}

	return med, nil
}

// ListMedications retrieves medications ordered by name, optionally filtered
// by a case-insensitive substring match on name, SKU or manufacturer
func (r *Repository) ListMedications(search string) ([]*types.Medication, error) {
	query := `
		SELECT id, name, sku, description, manufacturer, dosage, unit,
		       quantity, minimum_stock, price, created_at, updated_at
		FROM medications
		WHERE 1=1`

	args := []interface{}{}
	if search != "" {
		query += ` AND (name ILIKE '%' || $1 || '%' OR sku ILIKE '%' || $1 || '%' OR manufacturer ILIKE '%' || $1 || '%')`
		args = append(args, search)
	}

	query += " ORDER BY name ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to list medications")
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	defer rows.Close()

	var result []*types.Medication
	for rows.Next() {
		med := &types.Medication{}
		err := rows.Scan(
			&med.ID,
			&med.Name,
			&med.SKU,
			&med.Description,
			&med.Manufacturer,
			&med.Dosage,
			&med.Unit,
			&med.Quantity,
			&med.MinimumStock,
			&med.Price,
			&med.CreatedAt,
			&med.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medication: %w", err)
		}
		result = append(result, med)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating medications: %w", err)
	}

	return result, nil
}

// UpdateMedication replaces a medication's fields in a single statement
func (r *Repository) UpdateMedication(med *types.Medication) error {
	query := `
		UPDATE medications
		SET name = $2, sku = $3, description = $4, manufacturer = $5, dosage = $6,
		    unit = $7, quantity = $8, minimum_stock = $9, price = $10, updated_at = $11
		WHERE id = $1`

	result, err := r.db.Exec(query,
		med.ID,
		med.Name,
		med.SKU,
		med.Description,
		med.Manufacturer,
		med.Dosage,
		med.Unit,
		med.Quantity,
		med.MinimumStock,
		med.Price,
		med.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return types.NewConflictError(types.ErrCodeDuplicateKey,
				"A medication with this SKU already exists",
				map[string]string{"sku": "sku is already in use"})
		}
		r.logger.WithError(err).Error("Failed to update medication")
		return fmt.Errorf("failed to update medication: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "Medication not found")
	}

	r.logger.WithField("medication_id", med.ID).Info("Updated medication")
	return nil
}

// DeleteMedication removes a medication
func (r *Repository) DeleteMedication(id string) error {
	result, err := r.db.Exec(`DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		r.logger.WithError(err).Error("Failed to delete medication")
		return fmt.Errorf("failed to delete medication: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "Medication not found")
	}

	r.logger.WithField("medication_id", id).Info("Deleted medication")
	return nil
}

// AdjustStock applies a signed delta to the stored quantity in a single
// guarded statement and returns the new quantity. The guard keeps the
// quantity from going below zero under concurrent adjustments.
func (r *Repository) AdjustStock(id string, delta int) (int, error) {
	query := `
		UPDATE medications
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING quantity`

	var quantity int
	err := r.db.QueryRow(query, id, delta).Scan(&quantity)
	if err == sql.ErrNoRows {
		// The guard rejected the update or the row does not exist.
		var exists bool
		if checkErr := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM medications WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
			return 0, fmt.Errorf("failed to check medication existence: %w", checkErr)
		}
		if !exists {
			return 0, types.NewNotFoundError(types.ErrCodeNotFound, "Medication not found")
		}
		return 0, types.NewConflictError(types.ErrCodeInsufficientStock,
			"Stock adjustment would make the quantity negative", nil)
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to adjust stock")
		return 0, fmt.Errorf("failed to adjust stock: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"medication_id": id,
		"delta":         delta,
		"quantity":      quantity,
	}).Info("Adjusted stock")
	return quantity, nil
}
