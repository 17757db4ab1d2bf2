package domain

import "testing"

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		weight float64
		height float64
		want   float64
	}{
		{70, 175, 22.9},
		{60, 150, 26.7},
		{62.5, 165, 22.9},
		{59, 165, 21.7},
		{0, 165, 0},
		{70, 0, 0},
		{70, -10, 0},
	}
	for _, tt := range tests {
		if got := CalculateBMI(tt.weight, tt.height); got != tt.want {
			t.Errorf("CalculateBMI(%v, %v) = %v, want %v", tt.weight, tt.height, got, tt.want)
		}
	}
}
