package patients

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/uemerson199/hospitalcare-meta/pkg/database"
	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Repository implements the PatientRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new patient repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.PatientRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// Create inserts a new patient
func (r *Repository) Create(patient *types.Patient) error {
	query := `
		INSERT INTO patients (id, name, dob, national_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		patient.ID,
		patient.Name,
		patient.DOB,
		patient.NationalID,
		patient.CreatedAt,
		patient.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return types.NewConflictError(types.ErrCodeDuplicateKey, "National ID is already registered",
				map[string]string{"nationalId": "already in use"})
		}
		r.logger.WithError(err).Error("Failed to create patient")
		return fmt.Errorf("failed to create patient: %w", err)
	}

	r.logger.WithField("patient_id", patient.ID).Info("Created patient")
	return nil
}

// GetByID retrieves a patient by ID
func (r *Repository) GetByID(id string) (*types.Patient, error) {
	query := `
		SELECT id, name, to_char(dob, 'YYYY-MM-DD'), national_id, created_at, updated_at
		FROM patients
		WHERE id = $1`

	patient := &types.Patient{}
	err := r.db.QueryRow(query, id).Scan(
		&patient.ID,
		&patient.Name,
		&patient.DOB,
		&patient.NationalID,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, "Patient not found")
		}
		r.logger.WithError(err).Error("Failed to get patient")
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return patient, nil
}

// List retrieves patients, optionally filtered by a case-insensitive
// substring match on name or national ID
func (r *Repository) List(search string) ([]*types.Patient, error) {
	query := `
		SELECT id, name, to_char(dob, 'YYYY-MM-DD'), national_id, created_at, updated_at
		FROM patients
		WHERE 1=1`

	args := []interface{}{}
	if search != "" {
		query += ` AND (name ILIKE '%' || $1 || '%' OR national_id ILIKE '%' || $1 || '%')`
		args = append(args, search)
	}

	query += " ORDER BY name ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to list patients")
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var result []*types.Patient
	for rows.Next() {
		patient := &types.Patient{}
		err := rows.Scan(
			&patient.ID,
			&patient.Name,
			&patient.DOB,
			&patient.NationalID,
			&patient.CreatedAt,
			&patient.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		result = append(result, patient)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patients: %w", err)
	}

	return result, nil
}

// Update replaces a patient's fields in place
func (r *Repository) Update(patient *types.Patient) error {
	query := `
		UPDATE patients
		SET name = $2, dob = $3, national_id = $4, updated_at = $5
		WHERE id = $1`

	result, err := r.db.Exec(query,
		patient.ID,
		patient.Name,
		patient.DOB,
		patient.NationalID,
		patient.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return types.NewConflictError(types.ErrCodeDuplicateKey, "National ID is already registered",
				map[string]string{"nationalId": "already in use"})
		}
		r.logger.WithError(err).Error("Failed to update patient")
		return fmt.Errorf("failed to update patient: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "Patient not found")
	}

	r.logger.WithField("patient_id", patient.ID).Info("Updated patient")
	return nil
}

// Delete removes a patient
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		r.logger.WithError(err).Error("Failed to delete patient")
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "Patient not found")
	}

	r.logger.WithField("patient_id", id).Info("Deleted patient")
	return nil
}
