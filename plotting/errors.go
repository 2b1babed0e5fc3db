// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"errors"
	"fmt"
)

// A SchemaError reports a column that is missing from a dataset or
// has the wrong type.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

// A TooManyGroupsError reports that a grouping column has more
// distinct values than there are colors in the palette.
type TooManyGroupsError struct {
	Column string
	Groups int
	Max    int
}

func (e *TooManyGroupsError) Error() string {
	return fmt.Sprintf("too many groups: column %q has %d distinct values; at most %d are supported", e.Column, e.Groups, e.Max)
}

// ErrNotInitialized is returned by Display.Plot if Display.Init has
// not been called.
var ErrNotInitialized = errors.New("display not initialized")
