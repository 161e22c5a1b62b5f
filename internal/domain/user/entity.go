package user

import "time"

// User is the slice of the employee record this core needs: identity
// plus whether the person should appear on rosters and rollups.
type User struct {
	ID        string
	Name      string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
