// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Digest is the publication artifact for one pipeline run. It references
// member papers by identifier only; content is resolved against current
// paper state at render time. The member list is immutable once created.
type Digest struct {
	// ID is a generated unique identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the digest headline.
	Title string `json:"title" yaml:"title"`

	// Summary is a one-paragraph overview of the digest.
	Summary string `json:"summary" yaml:"summary"`

	// PaperIDs lists the member paper identifiers in selection order.
	PaperIDs []string `json:"paper_ids" yaml:"paper_ids"`

	// Categories lists the categories represented, in first-seen order.
	Categories []string `json:"categories" yaml:"categories"`

	// CreatedAt is the digest creation timestamp.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
