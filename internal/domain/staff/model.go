package staff

import (
	"time"

	"github.com/google/uuid"
)

// Valid staff roles.
const (
	RoleDoctor        = "doctor"
	RoleNurse         = "nurse"
	RoleAdmin         = "admin"
	RoleReceptionist  = "receptionist"
	RoleLabTechnician = "lab_technician"
	RolePharmacist    = "pharmacist"
)

// Member maps to the staff table. Members identify who performed clinical
// actions (seenBy, prescribedBy, orderedBy); credentials and sessions are
// handled outside this system.
type Member struct {
	ID         uuid.UUID `db:"id" json:"id"`
	HospitalID uuid.UUID `db:"hospital_id" json:"hospitalId"`
	Email      string    `db:"email" json:"email"`
	FirstName  string    `db:"first_name" json:"firstName"`
	LastName   string    `db:"last_name" json:"lastName"`
	Phone      *string   `db:"phone" json:"phone,omitempty"`
	Role       string    `db:"role" json:"role"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
