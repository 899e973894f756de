package doctors

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Service implements the DoctorService interface
type Service struct {
	logger     *logger.Logger
	repository interfaces.DoctorRepository
}

// NewService creates a new doctor service
func NewService(log *logger.Logger, repository interfaces.DoctorRepository) *Service {
	return &Service{
		logger:     log,
		repository: repository,
	}
}

// CreateDoctor validates and persists a new doctor
func (s *Service) CreateDoctor(req *types.DoctorRequest) (*types.Doctor, error) {
	if err := validateDoctorRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	doctor := &types.Doctor{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Specialty: req.Specialty,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.Create(doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}

// GetDoctor retrieves a doctor by ID
func (s *Service) GetDoctor(id string) (*types.Doctor, error) {
	return s.repository.GetByID(id)
}

// ListDoctors retrieves doctors matching an optional search term
func (s *Service) ListDoctors(search string) ([]*types.Doctor, error) {
	result, err := s.repository.List(search)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*types.Doctor{}
	}
	return result, nil
}

// ListDoctorsBySpecialty retrieves doctors grouped by specialty. Groups
// follow the fixed specialty order; empty specialties are omitted.
func (s *Service) ListDoctorsBySpecialty(search string) ([]*types.SpecialtyGroup, error) {
	doctors, err := s.ListDoctors(search)
	if err != nil {
		return nil, err
	}

	bySpecialty := make(map[string][]*types.Doctor)
	for _, doctor := range doctors {
		bySpecialty[doctor.Specialty] = append(bySpecialty[doctor.Specialty], doctor)
	}

	groups := []*types.SpecialtyGroup{}
	for _, specialty := range types.Specialties {
		if members, ok := bySpecialty[specialty]; ok {
			groups = append(groups, &types.SpecialtyGroup{
				Specialty: specialty,
				Doctors:   members,
			})
		}
	}

	return groups, nil
}

// UpdateDoctor validates and applies an in-place update
func (s *Service) UpdateDoctor(id string, req *types.DoctorRequest) (*types.Doctor, error) {
	if err := validateDoctorRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Specialty = req.Specialty
	existing.UpdatedAt = time.Now()

	if err := s.repository.Update(existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeleteDoctor removes a doctor. Doctors with non-cancelled appointments
// cannot be deleted.
func (s *Service) DeleteDoctor(id string) error {
	count, err := s.repository.CountActiveAppointments(id)
	if err != nil {
		return err
	}

	if count > 0 {
		return types.NewConflictError(types.ErrCodeDoctorInUse,
			"Doctor has existing appointments and cannot be deleted", nil)
	}

	return s.repository.Delete(id)
}

// validateDoctorRequest validates doctor input before any persistence
func validateDoctorRequest(req *types.DoctorRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}

	if strings.TrimSpace(req.Specialty) == "" {
		fields["specialty"] = "specialty is required"
	} else if !types.ValidSpecialty(req.Specialty) {
		fields["specialty"] = "specialty is not recognized"
	}

	if len(fields) > 0 {
		return types.NewValidationError("Doctor validation failed", fields)
	}

	return nil
}
