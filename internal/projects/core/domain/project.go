package domain

import "github.com/google/uuid"

// Project is owned elsewhere in the product; this service only reads the
// columns it needs for ingestion auth and access resolution.
type Project struct {
	ID        uuid.UUID
	OwnerID   string
	APISecret string
}
