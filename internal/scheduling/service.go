package scheduling

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/monitoring"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// SlotDuration is the fixed length of every appointment slot.
const SlotDuration = 30 * time.Minute

// Service implements the SchedulingService interface
type Service struct {
	logger     *logger.Logger
	repository interfaces.SchedulingRepository
	patients   interfaces.PatientRepository
	doctors    interfaces.DoctorRepository
}

// NewService creates a new scheduling service
func NewService(log *logger.Logger, repository interfaces.SchedulingRepository, patients interfaces.PatientRepository, doctors interfaces.DoctorRepository) *Service {
	return &Service{
		logger:     log,
		repository: repository,
		patients:   patients,
		doctors:    doctors,
	}
}

// CreateAppointment validates and books a new appointment. The requested
// time must be in the future and the doctor's slot must be free.
func (s *Service) CreateAppointment(req *types.CreateAppointmentRequest) (*types.Appointment, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	if req.AppointmentTime.Before(time.Now()) {
		return nil, types.NewValidationError("Appointment validation failed",
			map[string]string{"appointmentTime": "appointment time must be in the future"})
	}

	patient, err := s.patients.GetByID(req.PatientID)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctors.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}

	if err := s.checkConflicts(req.DoctorID, req.AppointmentTime, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	apt := &types.Appointment{
		ID:              uuid.New().String(),
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		AppointmentTime: req.AppointmentTime,
		Status:          types.StatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repository.CreateAppointment(apt); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"appointment_id": apt.ID,
		"doctor_id":      apt.DoctorID,
		"patient_id":     apt.PatientID,
	}).Info("Booked appointment")

	return apt, nil
}

// GetAppointment retrieves an appointment by ID
func (s *Service) GetAppointment(id string) (*types.Appointment, error) {
	return s.repository.GetAppointmentByID(id)
}

// ListAppointments retrieves appointments matching an optional search term
func (s *Service) ListAppointments(search string) ([]*types.Appointment, error) {
	result, err := s.repository.ListAppointments(search)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*types.Appointment{}
	}
	return result, nil
}

// ListSchedule retrieves appointments grouped by calendar date, days in
// ascending order
func (s *Service) ListSchedule(search string) ([]*types.DaySchedule, error) {
	appointments, err := s.ListAppointments(search)
	if err != nil {
		return nil, err
	}

	schedule := []*types.DaySchedule{}
	var current *types.DaySchedule
	for _, apt := range appointments {
		date := apt.AppointmentTime.Format("2006-01-02")
		if current == nil || current.Date != date {
			current = &types.DaySchedule{Date: date}
			schedule = append(schedule, current)
		}
		current.Appointments = append(current.Appointments, apt)
	}

	return schedule, nil
}

// UpdateAppointment applies a full replacement edit. Status changes must
// follow the allowed transitions and the new slot must be free for the
// target doctor, ignoring the appointment itself.
func (s *Service) UpdateAppointment(id string, req *types.UpdateAppointmentRequest) (*types.Appointment, error) {
	if err := validateUpdateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetAppointmentByID(id)
	if err != nil {
		return nil, err
	}

	if !types.CanTransition(existing.Status, req.Status) {
		return nil, types.NewConflictError(types.ErrCodeIllegalTransition,
			"Appointment status cannot change from "+string(existing.Status)+" to "+string(req.Status), nil)
	}

	patient, err := s.patients.GetByID(req.PatientID)
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctors.GetByID(req.DoctorID)
	if err != nil {
		return nil, err
	}

	// Only cancellation frees the slot. Completed appointments still
	// occupy theirs, so edits keeping a non-cancelled status are checked.
	if req.Status != types.StatusCancelled {
		if err := s.checkConflicts(req.DoctorID, req.AppointmentTime, id); err != nil {
			return nil, err
		}
	}

	existing.PatientID = patient.ID
	existing.DoctorID = doctor.ID
	existing.DoctorName = doctor.Name
	existing.AppointmentTime = req.AppointmentTime
	existing.Status = req.Status
	existing.UpdatedAt = time.Now()

	if err := s.repository.UpdateAppointment(existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteAppointment removes an appointment permanently
func (s *Service) DeleteAppointment(id string) error {
	return s.repository.DeleteAppointment(id)
}

// checkConflicts rejects the booking when the doctor already has a
// non-cancelled appointment overlapping the requested slot
func (s *Service) checkConflicts(doctorID string, start time.Time, excludeID string) error {
	conflicts, err := s.repository.GetConflictingAppointments(doctorID, start, start.Add(SlotDuration), excludeID)
	if err != nil {
		return err
	}

	if len(conflicts) > 0 {
		monitoring.RecordAppointmentConflict()
		s.logger.WithFields(map[string]interface{}{
			"doctor_id":        doctorID,
			"appointment_time": start,
			"conflicts":        len(conflicts),
		}).Warn("Appointment slot conflict")
		return types.NewConflictError(types.ErrCodeScheduleConflict,
			"Doctor already has an appointment in this time slot", nil)
	}

	return nil
}

func validateCreateRequest(req *types.CreateAppointmentRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.PatientID) == "" {
		fields["patientId"] = "patientId is required"
	}
	if strings.TrimSpace(req.DoctorID) == "" {
		fields["doctorId"] = "doctorId is required"
	}
	if req.AppointmentTime.IsZero() {
		fields["appointmentTime"] = "appointmentTime is required"
	}

	if len(fields) > 0 {
		return types.NewValidationError("Appointment validation failed", fields)
	}

	return nil
}

func validateUpdateRequest(req *types.UpdateAppointmentRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.PatientID) == "" {
		fields["patientId"] = "patientId is required"
	}
	if strings.TrimSpace(req.DoctorID) == "" {
		fields["doctorId"] = "doctorId is required"
	}
	if req.AppointmentTime.IsZero() {
		fields["appointmentTime"] = "appointmentTime is required"
	}
	if req.Status == "" {
		fields["status"] = "status is required"
	} else if !types.ValidStatus(req.Status) {
		fields["status"] = "status is not recognized"
	}

	if len(fields) > 0 {
		return types.NewValidationError("Appointment validation failed", fields)
	}

	return nil
}
