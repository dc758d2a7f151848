package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		times  []float64
		limit  float64
		points []int
		bonus  []int
		total  int
	}{
		{"mixed", []float64{3.2, 0, 8.0}, 10, []int{10, 0, 30}, []int{10, 0, 30}, 80},
		{"all unsolved", []float64{0, 0, 0}, 10, []int{0, 0, 0}, []int{0, 0, 0}, 0},
		{"slow solves", []float64{12, 10.1}, 10, []int{10, 20}, []int{0, 0}, 30},
		{"limit inclusive", []float64{10}, 10, []int{10}, []int{10}, 20},
		{"two fast levels", []float64{1.5, 2.5}, 10, []int{10, 20}, []int{10, 20}, 60},
		{"empty", nil, 10, []int{}, []int{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.times, tt.limit)
			points := make([]int, 0, len(got.Levels))
			bonus := make([]int, 0, len(got.Levels))
			for _, l := range got.Levels {
				points = append(points, l.Points)
				bonus = append(bonus, l.Bonus)
			}
			assert.Equal(t, tt.points, points)
			assert.Equal(t, tt.bonus, bonus)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, got.Points+got.Bonus, got.Total)
		})
	}
}

func TestUnsolvedContributesNothingAtAnyPosition(t *testing.T) {
	for pos := 0; pos < 5; pos++ {
		times := []float64{1, 1, 1, 1, 1}
		times[pos] = 0
		got := Compute(times, 10)
		l := got.Levels[pos]
		assert.False(t, l.Solved())
		assert.Zero(t, l.Points)
		assert.Zero(t, l.Bonus)
		assert.Equal(t, 2*(150-(pos+1)*10), got.Total)
	}
}
