package vmath

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		want           float64
	}{
		{"same point", 3, 4, 3, 4, 0},
		{"3-4-5 triangle", 0, 0, 3, 4, 5},
		{"negative coords", -1, -1, 2, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.ax, tt.ay, tt.bx, tt.by)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance() = %f, want %f", got, tt.want)
			}
			if sq := DistanceSq(tt.ax, tt.ay, tt.bx, tt.by); math.Abs(sq-tt.want*tt.want) > 1e-9 {
				t.Errorf("DistanceSq() = %f, want %f", sq, tt.want*tt.want)
			}
		})
	}
}

func TestEaseOutCubic(t *testing.T) {
	if got := EaseOutCubic(0); got != 0 {
		t.Errorf("EaseOutCubic(0) = %f, want 0", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Errorf("EaseOutCubic(1) = %f, want 1", got)
	}
	if got := EaseOutCubic(2); got != 1 {
		t.Errorf("EaseOutCubic(2) = %f, want clamped 1", got)
	}

	prev := 0.0
	for i := 1; i <= 20; i++ {
		v := EaseOutCubic(float64(i) / 20)
		if v < prev {
			t.Fatalf("EaseOutCubic not monotonic at step %d: %f < %f", i, v, prev)
		}
		prev = v
	}
}

func TestLineTraverser(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		wantSteps      int
	}{
		{"single cell", 2, 2, 2, 2, 1},
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical reversed", 0, 4, 0, 0, 5},
		{"diagonal", 0, 0, 3, 3, 4},
		{"shallow", 0, 0, 7, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt := NewLineTraverser(tt.x0, tt.y0, tt.x1, tt.y1)
			if lt.Steps() != tt.wantSteps {
				t.Errorf("Steps() = %d, want %d", lt.Steps(), tt.wantSteps)
			}

			var cells [][2]int
			for {
				x, y, ok := lt.Next()
				if !ok {
					break
				}
				cells = append(cells, [2]int{x, y})
			}

			if len(cells) != tt.wantSteps {
				t.Fatalf("visited %d cells, want %d", len(cells), tt.wantSteps)
			}
			if cells[0] != [2]int{tt.x0, tt.y0} {
				t.Errorf("first cell = %v, want (%d,%d)", cells[0], tt.x0, tt.y0)
			}
			if cells[len(cells)-1] != [2]int{tt.x1, tt.y1} {
				t.Errorf("last cell = %v, want (%d,%d)", cells[len(cells)-1], tt.x1, tt.y1)
			}
			for i := 1; i < len(cells); i++ {
				if Abs(cells[i][0]-cells[i-1][0]) > 1 || Abs(cells[i][1]-cells[i-1][1]) > 1 {
					t.Errorf("gap between %v and %v", cells[i-1], cells[i])
				}
			}
		})
	}
}
