package user

import "context"

type UserRepository interface {
	// ListActive returns active users ordered by name.
	ListActive(ctx context.Context) ([]User, error)
}
