package patients

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// Service implements the PatientService interface
type Service struct {
	logger     *logger.Logger
	repository interfaces.PatientRepository
}

// NewService creates a new patient service
func NewService(log *logger.Logger, repository interfaces.PatientRepository) *Service {
	return &Service{
		logger:     log,
		repository: repository,
	}
}

// CreatePatient validates and persists a new patient
func (s *Service) CreatePatient(req *types.PatientRequest) (*types.Patient, error) {
	if err := validatePatientRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	patient := &types.Patient{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(req.Name),
		DOB:        req.DOB,
		NationalID: req.NationalID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repository.Create(patient); err != nil {
		return nil, err
	}

	return patient, nil
}

// GetPatient retrieves a patient by ID
func (s *Service) GetPatient(id string) (*types.Patient, error) {
	return s.repository.GetByID(id)
}

// ListPatients retrieves patients matching an optional search term
func (s *Service) ListPatients(search string) ([]*types.Patient, error) {
	result, err := s.repository.List(search)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*types.Patient{}
	}
	return result, nil
}

// UpdatePatient validates and applies an in-place update
func (s *Service) UpdatePatient(id string, req *types.PatientRequest) (*types.Patient, error) {
	if err := validatePatientRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.DOB = req.DOB
	existing.NationalID = req.NationalID
	existing.UpdatedAt = time.Now()

	if err := s.repository.Update(existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// DeletePatient removes a patient
func (s *Service) DeletePatient(id string) error {
	return s.repository.Delete(id)
}

// validatePatientRequest validates patient input before any persistence
func validatePatientRequest(req *types.PatientRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}

	if strings.TrimSpace(req.DOB) == "" {
		fields["dob"] = "date of birth is required"
	} else if _, err := time.Parse("2006-01-02", req.DOB); err != nil {
		fields["dob"] = "date of birth must be in YYYY-MM-DD format"
	}

	if strings.TrimSpace(req.NationalID) == "" {
		fields["nationalId"] = "national ID is required"
	} else if !types.ValidNationalID(req.NationalID) {
		fields["nationalId"] = "national ID must be in the 123.456.789-00 format"
	}

	if len(fields) > 0 {
		return types.NewValidationError("Patient validation failed", fields)
	}

	return nil
}
