package ports

import (
	"context"

	"github.com/google/uuid"
)

// ProjectResolverPort resolves an ingestion secret to the project it
// authenticates. Returns uuid.Nil and found=false when no project matches.
type ProjectResolverPort interface {
	ProjectIDBySecret(ctx context.Context, secret string) (id uuid.UUID, found bool, err error)
}
