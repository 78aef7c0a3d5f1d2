package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrBadColor is returned for color strings that are not six hex digits.
var ErrBadColor = errors.New("gamedata: invalid hex color")

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	return tcell.NewHexColor(int32(v)), nil
}
