// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette/brewer"
)

// MaxGroups is the number of distinct groups BuildScene can color.
const MaxGroups = 3

// groupColors is the qualitative palette assigned to groups by
// position.
var groupColors = [MaxGroups]color.Color{
	brewer.Set1_3[0],
	brewer.Set1_3[1],
	brewer.Set1_3[2],
}

// groupColor returns the color of the i'th group.
func groupColor(i int) (color.Color, bool) {
	if i < 0 || i >= len(groupColors) {
		return nil, false
	}
	return groupColors[i], true
}

// cssColor formats c as a CSS rgb() color, ignoring alpha.
func cssColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
