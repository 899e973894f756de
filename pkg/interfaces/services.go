package interfaces

import "github.com/uemerson199/hospitalcare-meta/pkg/types"

// AuthService defines authentication operations
type AuthService interface {
	Register(req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(credentials *types.Credentials) (*types.AuthResponse, error)
	ValidateToken(token string) (*types.UserClaims, error)
}

// PatientService defines patient management operations
type PatientService interface {
	CreatePatient(req *types.PatientRequest) (*types.Patient, error)
	GetPatient(id string) (*types.Patient, error)
	ListPatients(search string) ([]*types.Patient, error)
	UpdatePatient(id string, req *types.PatientRequest) (*types.Patient, error)
	DeletePatient(id string) error
}

// DoctorService defines doctor management operations
type DoctorService interface {
	CreateDoctor(req *types.DoctorRequest) (*types.Doctor, error)
	GetDoctor(id string) (*types.Doctor, error)
	ListDoctors(search string) ([]*types.Doctor, error)
	ListDoctorsBySpecialty(search string) ([]*types.SpecialtyGroup, error)
	UpdateDoctor(id string, req *types.DoctorRequest) (*types.Doctor, error)
	DeleteDoctor(id string) error
}

// SchedulingService defines appointment scheduling operations
type SchedulingService interface {
	CreateAppointment(req *types.CreateAppointmentRequest) (*types.Appointment, error)
	GetAppointment(id string) (*types.Appointment, error)
	ListAppointments(search string) ([]*types.Appointment, error)
	ListSchedule(search string) ([]*types.DaySchedule, error)
	UpdateAppointment(id string, req *types.UpdateAppointmentRequest) (*types.Appointment, error)
	DeleteAppointment(id string) error
}

// InventoryService defines medication inventory operations
type InventoryService interface {
	CreateMedication(req *types.MedicationRequest) (*types.Medication, error)
	GetMedication(id string) (*types.Medication, error)
	ListMedications(search string) ([]*types.Medication, error)
	UpdateMedication(id string, req *types.MedicationRequest) (*types.Medication, error)
	DeleteMedication(id string) error
	AdjustStock(id string, delta int) (*types.Medication, error)
}
