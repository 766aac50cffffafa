package battle

import (
	"fmt"
	"strconv"
	"strings"
)

const columnLetters = "ABCDEFGHIJ"

// ParseCoord converts boundary notation like "E7" (column letter A-J, row
// number 1-10) to an internal 0-indexed coordinate.
func ParseCoord(text string) (Coord, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) < 2 {
		return Coord{}, fmt.Errorf("battle: invalid coordinate %q", text)
	}

	col := strings.IndexByte(columnLetters, text[0])
	if col < 0 {
		return Coord{}, fmt.Errorf("battle: invalid column in %q, use A-J", text)
	}

	row, err := strconv.Atoi(text[1:])
	if err != nil || row < 1 || row > GridSize {
		return Coord{}, fmt.Errorf("battle: invalid row in %q, use 1-%d", text, GridSize)
	}

	return Coord{Row: row - 1, Col: col}, nil
}

// FormatCoord converts an internal coordinate to boundary notation ("E7").
// Out-of-bounds coordinates format as "??".
func FormatCoord(c Coord) string {
	if !c.InBounds() {
		return "??"
	}
	return fmt.Sprintf("%c%d", columnLetters[c.Col], c.Row+1)
}
