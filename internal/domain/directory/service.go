package directory

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

// Invalidator is implemented by anything holding a cached directory.
// Writers that change today's status call it after committing.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// DirectoryService lists employees with their status for today
type DirectoryService interface {
	Invalidator
	List(ctx context.Context, principal user.Principal) ([]EntryResponse, error)
}
