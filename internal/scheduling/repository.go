package scheduling

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/uemerson199/hospitalcare-meta/pkg/database"
	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Repository implements the SchedulingRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new scheduling repository
func NewRepository(db *database.DB, log *logger.Logger) interfaces.SchedulingRepository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// CreateAppointment inserts a new appointment
func (r *Repository) CreateAppointment(apt *types.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_id, doctor_id, appointment_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		apt.ID,
		apt.PatientID,
		apt.DoctorID,
		apt.AppointmentTime,
		apt.Status,
		apt.CreatedAt,
		apt.UpdatedAt,
	)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create appointment")
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"appointment_id": apt.ID,
		"doctor_id":      apt.DoctorID,
	}).Info("Created appointment")
	return nil
}

// GetAppointmentByID retrieves an appointment by ID with the doctor name
// joined in
func (r *Repository) GetAppointmentByID(id string) (*types.Appointment, error) {
	query := `
		SELECT a.id, a.patient_id, a.doctor_id, d.name, a.appointment_time,
		       a.status, a.created_at, a.updated_at
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1`

	apt := &types.Appointment{}
	err := r.db.QueryRow(query, id).Scan(
		&apt.ID,
		&apt.PatientID,
		&apt.DoctorID,
		&apt.DoctorName,
		&apt.AppointmentTime,
		&apt.Status,
		&apt.CreatedAt,
		&apt.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(types.ErrCodeNotFound, "Appointment not found")
		}
		r.logger.WithError(err).Error("Failed to get appointment")
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return apt, nil
}

// UpdateAppointment replaces an appointment's fields in place
func (r *Repository) UpdateAppointment(apt *types.Appointment) error {
	query := `
		UPDATE appointments
		SET patient_id = $2, doctor_id = $3, appointment_time = $4, status = $5, updated_at = $6
		WHERE id = $1`

	result, err := r.db.Exec(query,
		apt.ID,
		apt.PatientID,
		apt.DoctorID,
		apt.AppointmentTime,
		apt.Status,
		apt.UpdatedAt,
	)

	if err != nil {
		r.logger.WithError(err).Error("Failed to update appointment")
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "Appointment not found")
	}

	r.logger.WithField("appointment_id", apt.ID).Info("Updated appointment")
	return nil
}

// DeleteAppointment removes an appointment permanently
func (r *Repository) DeleteAppointment(id string) error {
	result, err := r.db.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		r.logger.WithError(err).Error("Failed to delete appointment")
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "Appointment not found")
	}

	r.logger.WithField("appointment_id", id).Info("Deleted appointment")
	return nil
}

// ListAppointments retrieves appointments ordered by time ascending,
// optionally filtered by a case-insensitive substring match on patient or
// doctor name
func (r *Repository) ListAppointments(search string) ([]*types.Appointment, error) {
	query := `
		SELECT a.id, a.patient_id, a.doctor_id, d.name, a.appointment_time,
		       a.status, a.created_at, a.updated_at
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		JOIN patients p ON p.id = a.patient_id
		WHERE 1=1`

	args := []interface{}{}
	if search != "" {
		query += ` AND (p.name ILIKE '%' || $1 || '%' OR d.name ILIKE '%' || $1 || '%')`
		args = append(args, search)
	}

	query += " ORDER BY a.appointment_time ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to list appointments")
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var result []*types.Appointment
	for rows.Next() {
		apt := &types.Appointment{}
		err := rows.Scan(
			&apt.ID,
			&apt.PatientID,
			&apt.DoctorID,
			&apt.DoctorName,
			&apt.AppointmentTime,
			&apt.Status,
			&apt.CreatedAt,
			&apt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		result = append(result, apt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}

	return result, nil
}

// GetConflictingAppointments finds non-cancelled appointments for a doctor
// whose slot overlaps the [start, end) window. excludeID skips the
// appointment being edited.
func (r *Repository) GetConflictingAppointments(doctorID string, start, end time.Time, excludeID string) ([]*types.Appointment, error) {
	query := `
		SELECT a.id, a.patient_id, a.doctor_id, d.name, a.appointment_time,
		       a.status, a.created_at, a.updated_at
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.doctor_id = $1
		  AND a.status <> 'CANCELLED'
		  AND a.appointment_time < $3
		  AND a.appointment_time + INTERVAL '30 minutes' > $2`

	args := []interface{}{doctorID, start, end}
	if excludeID != "" {
		query += " AND a.id <> $4"
		args = append(args, excludeID)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to get conflicting appointments")
		return nil, fmt.Errorf("failed to get conflicting appointments: %w", err)
	}
	defer rows.Close()

	var result []*types.Appointment
	for rows.Next() {
		apt := &types.Appointment{}
		err := rows.Scan(
			&apt.ID,
			&apt.PatientID,
			&apt.DoctorID,
			&apt.DoctorName,
			&apt.AppointmentTime,
			&apt.Status,
			&apt.CreatedAt,
			&apt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conflicting appointment: %w", err)
		}
		result = append(result, apt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conflicting appointments: %w", err)
	}

	return result, nil
}
