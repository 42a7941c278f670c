package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name  string
		outer Rect
		w, h  int
		want  Rect
	}{
		{"even fit", NewRect(0, 0, 10, 10), 4, 2, NewRect(3, 4, 4, 2)},
		{"odd slack rounds down", NewRect(0, 0, 9, 9), 4, 2, NewRect(2, 3, 4, 2)},
		{"offset outer", NewRect(5, 5, 10, 6), 10, 6, NewRect(5, 5, 10, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outer.Centered(tt.w, tt.h); got != tt.want {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}
