package staff

import "errors"

var (
	// ErrNotFound is returned when no staff record matches.
	ErrNotFound = errors.New("staff not found")
	// ErrDuplicateIC is returned when the IC already belongs to a staff
	// member.
	ErrDuplicateIC = errors.New("ic already registered")
)

// Staff is an employee allowed to operate the register.
type Staff struct {
	ID           int     `json:"id"`
	IC           string  `json:"ic"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Age          int     `json:"age"`
	Salary       float64 `json:"salary"`
}

// RegisterStaffRequest is the payload for signing up a staff member.
type RegisterStaffRequest struct {
	IC       string  `json:"ic"`
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Age      int     `json:"age"`
	Salary   float64 `json:"salary"`
}
