package plot

import "github.com/google/uuid"

// DemoFigure returns the fixed bar figure used by the display helper.
func DemoFigure() *Figure {
	return &Figure{
		ID:   uuid.NewString(),
		Kind: TypeBar,
		Series: []Series{{
			Name: "y",
			Kind: TypeBar,
			X:    []any{1, 2, 3},
			Y:    []any{1, 3, 2},
		}},
		Layout: Layout{Title: "A Figure Specified By Struct Literal"},
	}
}
