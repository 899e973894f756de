package types

import "time"

// Doctor represents a practicing doctor
type Doctor struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Specialty string    `json:"specialty" db:"specialty"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// DoctorRequest carries doctor create and update payloads
type DoctorRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Specialties is the fixed set of recognized medical specialties
var Specialties = []string{
	"Cardiology",
	"Dermatology",
	"Endocrinology",
	"Gastroenterology",
	"Gynecology",
	"Neurology",
	"Ophthalmology",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
	"Urology",
	"General Practice",
}

// ValidSpecialty reports whether the specialty belongs to the fixed set
func ValidSpecialty(specialty string) bool {
	for _, s := range Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// SpecialtyGroup holds the doctors of a single specialty
type SpecialtyGroup struct {
	Specialty string    `json:"specialty"`
	Doctors   []*Doctor `json:"doctors"`
}
