package scheduling

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uemerson199/hospitalcare-meta/pkg/database"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	repo := &Repository{
		db:     &database.DB{DB: sqlDB},
		logger: logger.New("error"),
	}
	return repo, mock
}

func appointmentRows(apts ...*types.Appointment) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "patient_id", "doctor_id", "name", "appointment_time",
		"status", "created_at", "updated_at",
	})
	for _, apt := range apts {
		rows.AddRow(apt.ID, apt.PatientID, apt.DoctorID, apt.DoctorName,
			apt.AppointmentTime, string(apt.Status), apt.CreatedAt, apt.UpdatedAt)
	}
	return rows
}

func TestGetConflictingAppointments(t *testing.T) {
	repo, mock := newTestRepository(t)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	existing := &types.Appointment{
		ID:              "apt-1",
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		DoctorName:      "Dr. Bob",
		AppointmentTime: start.Add(-15 * time.Minute),
		Status:          types.StatusScheduled,
		CreatedAt:       start,
		UpdatedAt:       start,
	}

	mock.ExpectQuery(regexp.QuoteMeta("a.status <> 'CANCELLED'")).
		WithArgs("doctor-1", start, end).
		WillReturnRows(appointmentRows(existing))

	conflicts, err := repo.GetConflictingAppointments("doctor-1", start, end, "")

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "apt-1", conflicts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetConflictingAppointmentsExcludesID(t *testing.T) {
	repo, mock := newTestRepository(t)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("a.id <> $4")).
		WithArgs("doctor-1", start, end, "apt-1").
		WillReturnRows(appointmentRows())

	conflicts, err := repo.GetConflictingAppointments("doctor-1", start, end, "apt-1")

	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAppointmentByIDNotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN doctors d ON d.id = a.doctor_id")).
		WithArgs("missing").
		WillReturnRows(appointmentRows())

	_, err := repo.GetAppointmentByID("missing")

	require.Error(t, err)
	e := types.AsError(err)
	assert.Equal(t, types.ErrCodeNotFound, e.Code)
	assert.Equal(t, 404, e.HTTPStatus())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments")).
		WithArgs("missing", "patient-1", "doctor-1", now, string(types.StatusScheduled), now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAppointment(&types.Appointment{
		ID:              "missing",
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentTime: now,
		Status:          types.StatusScheduled,
		UpdatedAt:       now,
	})

	require.Error(t, err)
	assert.Equal(t, 404, types.AsError(err).HTTPStatus())
	assert.NoError(t, mock.ExpectationsWereMet())
}
