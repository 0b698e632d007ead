// SPDX-License-Identifier: MIT

package stream

import (
	"errors"

	"github.com/katalvlaran/plexus/storage"
)

var (
	// ErrSealed is returned by mutations on a finalized stream.
	ErrSealed = storage.ErrSealed

	// ErrNotFound is returned when querying an element that was never added.
	ErrNotFound = errors.New("stream: element not found")
)
