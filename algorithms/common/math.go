package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic statistical functions shared across algorithms, using gonum for robustness

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Variance calculates the population variance of a slice.
// Population (not sample) variance so that single-element input is 0,
// matching the motion-consistency contract.
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0.0
	}

	mean := stat.Mean(data, nil)
	sum := 0.0
	for _, v := range data {
		diff := v - mean
		sum += diff * diff
	}
	return sum / float64(len(data))
}

// StandardDeviation calculates the population standard deviation
func StandardDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Sum adds all elements using gonum
func Sum(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Sum(data)
}

// Max returns the largest element, 0 for empty input
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// Min returns the smallest element, 0 for empty input
func Min(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Min(data)
}

// RMS calculates root mean square
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sumSquares := 0.0
	for _, val := range data {
		sumSquares += val * val
	}

	return math.Sqrt(sumSquares / float64(len(data)))
}

// Clamp limits a value to the [lo, hi] range
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
