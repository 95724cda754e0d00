package hospital

import (
	"time"

	"github.com/google/uuid"
)

// Hospital maps to the hospital table. Hospitals are the tenancy root: every
// clinical record carries a hospital id and all reads are scoped by it.
type Hospital struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	Address   *string   `db:"address" json:"address,omitempty"`
	Contact   *string   `db:"contact" json:"contact,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
