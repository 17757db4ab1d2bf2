package domain

import "math"

// CalculateBMI computes body mass index from weight in kg and height in cm,
// rounded to one decimal. CalculateBMI(70, 175) == 22.9.
func CalculateBMI(weight, height float64) float64 {
	if height <= 0 {
		return 0
	}
	m := height / 100
	return math.Round(weight/(m*m)*10) / 10
}
