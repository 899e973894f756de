package interfaces

import (
	"time"

	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(user *types.User) error
	GetByID(id string) (*types.User, error)
	GetByUsername(username string) (*types.User, error)
}

// PatientRepository defines patient data access operations
type PatientRepository interface {
	Create(patient *types.Patient) error
	GetByID(id string) (*types.Patient, error)
	List(search string) ([]*types.Patient, error)
	Update(patient *types.Patient) error
	Delete(id string) error
}

// DoctorRepository defines doctor data access operations
type DoctorRepository interface {
	Create(doctor *types.Doctor) error
	GetByID(id string) (*types.Doctor, error)
	List(search string) ([]*types.Doctor, error)
	Update(doctor *types.Doctor) error
	Delete(id string) error
	CountActiveAppointments(doctorID string) (int, error)
}

// SchedulingRepository defines appointment data access operations
type SchedulingRepository interface {
	CreateAppointment(apt *types.Appointment) error
	GetAppointmentByID(id string) (*types.Appointment, error)
	UpdateAppointment(apt *types.Appointment) error
	DeleteAppointment(id string) error
	ListAppointments(search string) ([]*types.Appointment, error)
	GetConflictingAppointments(doctorID string, start, end time.Time, excludeID string) ([]*types.Appointment, error)
}

// InventoryRepository defines medication data access operations
type InventoryRepository interface {
	CreateMedication(med *types.Medication) error
	GetMedicationByID(id string) (*types.Medication, error)
	ListMedications(search string) ([]*types.Medication, error)
	UpdateMedication(med *types.Medication) error
	DeleteMedication(id string) error
	AdjustStock(id string, delta int) (int, error)
}
