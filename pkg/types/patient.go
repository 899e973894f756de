package types

import (
	"regexp"
	"time"
)

// nationalIDPattern matches IDs in the XXX.XXX.XXX-XX format
var nationalIDPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// Patient represents a registered patient
type Patient struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	DOB        string    `json:"dob" db:"dob"`
	NationalID string    `json:"nationalId" db:"national_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// PatientRequest carries patient create and update payloads
type PatientRequest struct {
	Name       string `json:"name"`
	DOB        string `json:"dob"`
	NationalID string `json:"nationalId"`
}

// ValidNationalID reports whether the ID matches the required format
func ValidNationalID(id string) bool {
	return nationalIDPattern.MatchString(id)
}
