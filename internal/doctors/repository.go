package doctors

import (
	"database/sql"
	"fmt"

	"github.com/uemerson199/hospitalcare-meta/pkg/database"
	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Repository implements the DoctorRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new doctor repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.DoctorRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// Create inserts a new doctor
func (r *Repository) Create(doctor *types.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, specialty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		doctor.ID,
		doctor.Name,
		doctor.Specialty,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create doctor")
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	r.logger.WithField("doctor_id", doctor.ID).Info("Created doctor")
	return nil
}

// GetByID retrieves a doctor by ID
func (r *Repository) GetByID(id string) (*types.Doctor, error) {
	query := `
		SELECT id, name, specialty, created_at, updated_at
		FROM doctors
		WHERE id = $1`

	doctor := &types.Doctor{}
	err := r.db.QueryRow(query, id).Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, "Doctor not found")
		}
		r.logger.WithError(err).Error("Failed to get doctor")
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	return doctor, nil
}

// List retrieves doctors, optionally filtered by a case-insensitive
// substring match on name or specialty
func (r *Repository) List(search string) ([]*types.Doctor, error) {
	query := `
		SELECT id, name, specialty, created_at, updated_at
		FROM doctors
		WHERE 1=1`

	args := []interface{}{}
	if search != "" {
		query += ` AND (name ILIKE '%' || $1 || '%' OR specialty ILIKE '%' || $1 || '%')`
		args = append(args, search)
	}

	query += " ORDER BY specialty ASC, name ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to list doctors")
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	var result []*types.Doctor
	for rows.Next() {
		doctor := &types.Doctor{}
		err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Specialty,
			&doctor.CreatedAt,
			&doctor.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		result = append(result, doctor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctors: %w", err)
	}

	return result, nil
}

// Update replaces a doctor's fields in place
func (r *Repository) Update(doctor *types.Doctor) error {
	query := `
		UPDATE doctors
		SET name = $2, specialty = $3, updated_at = $4
		WHERE id = $1`

	result, err := r.db.Exec(query,
		doctor.ID,
		doctor.Name,
		doctor.Specialty,
		doctor.UpdatedAt,
	)

	if err != nil {
		r.logger.WithError(err).Error("Failed to update doctor")
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "Doctor not found")
	}

	r.logger.WithField("doctor_id", doctor.ID).Info("Updated doctor")
	return nil
}

// Delete removes a doctor
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		r.logger.WithError(err).Error("Failed to delete doctor")
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "Doctor not found")
	}

	r.logger.WithField("doctor_id", id).Info("Deleted doctor")
	return nil
}

// CountActiveAppointments counts the doctor's non-cancelled appointments
func (r *Repository) CountActiveAppointments(doctorID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM appointments
		WHERE doctor_id = $1 AND status <> 'CANCELLED'`

	var count int
	if err := r.db.QueryRow(query, doctorID).Scan(&count); err != nil {
		r.logger.WithError(err).Error("Failed to count doctor appointments")
		return 0, fmt.Errorf("failed to count doctor appointments: %w", err)
	}

	return count, nil
}
