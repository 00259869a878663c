package board

import (
	"fmt"
	"strings"
)

// Orientation is the side drawn at the bottom of the board.
type Orientation int

const (
	WhiteBottom Orientation = iota
	BlackBottom
)

// ParseOrientation accepts "white"/"w" and "black"/"b" (case-insensitive).
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w", "":
		return WhiteBottom, nil
	case "black", "b":
		return BlackBottom, nil
	default:
		return WhiteBottom, fmt.Errorf("board: unknown orientation %q", s)
	}
}

// String returns "white" or "black".
func (o Orientation) String() string {
	if o == BlackBottom {
		return "black"
	}
	return "white"
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == BlackBottom {
		return WhiteBottom
	}
	return BlackBottom
}

// Rows returns the squares as drawn on screen, top row first and left column
// first within a row.
func Rows(o Orientation) [Size][Size]Square {
	var rows [Size][Size]Square
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if o == BlackBottom {
				rows[row][col] = Square{File: Size - 1 - col, Rank: row + 1}
			} else {
				rows[row][col] = Square{File: col, Rank: Size - row}
			}
		}
	}
	return rows
}

// FileLabels returns file letters in display order, left to right.
func FileLabels(o Orientation) []string {
	labels := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	if o == BlackBottom {
		reverse(labels)
	}
	return labels
}

// RankLabels returns rank digits in display order, top to bottom.
func RankLabels(o Orientation) []string {
	labels := []string{"8", "7", "6", "5", "4", "3", "2", "1"}
	if o == BlackBottom {
		reverse(labels)
	}
	return labels
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
