// Package store persists chart documents so rendered charts can be fetched
// again by ID. A file-backed store covers CLI and single-node usage; a
// Mongo-backed store covers server deployments.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/astrowheel/astrowheel/pkg/astro"
)

// ErrNotFound is returned when a document with the requested ID does not exist.
var ErrNotFound = errors.New("chart document not found")

// ChartDocument is a stored chart together with its rendered artifact.
type ChartDocument struct {
	ID        string       `json:"id" bson:"_id"`
	Chart     *astro.Chart `json:"chart" bson:"chart"`
	SVG       string       `json:"svg,omitempty" bson:"svg,omitempty"`
	Theme     string       `json:"theme,omitempty" bson:"theme,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

// NewDocument wraps a chart in a document with a fresh UUID and timestamps.
// If the chart carries its own ID it is kept.
func NewDocument(chart *astro.Chart) *ChartDocument {
	id := chart.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	return &ChartDocument{
		ID:        id,
		Chart:     chart,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChartStore persists chart documents.
type ChartStore interface {
	// Put saves or replaces a document by its ID.
	Put(ctx context.Context, doc *ChartDocument) error

	// Get retrieves a document by ID. Returns ErrNotFound when missing.
	Get(ctx context.Context, id string) (*ChartDocument, error)

	// Delete removes a document. Deleting a missing ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored documents.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
