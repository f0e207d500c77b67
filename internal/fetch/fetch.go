// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves candidate papers from the literature source.
package fetch

import (
	"context"

	"github.com/pdiddy/paper-curator/pkg/types"
)

// Source retrieves candidates matching a category's keywords. The
// pipeline depends on this interface so tests can supply a mock.
type Source interface {
	Name() string
	FetchByCategory(ctx context.Context, keywords []string, maxResults int) ([]*types.Paper, error)
}
