// SPDX-License-Identifier: MIT

package storage

import "errors"

// ErrSealed is returned by any mutation attempted after Finalize.
var ErrSealed = errors.New("storage: stream is sealed")
