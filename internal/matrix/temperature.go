package matrix

import (
	"math"
	"strconv"
)

// MaxTemperatureSteps bounds the number of labels a temperature range may
// produce.
const MaxTemperatureSteps = 1000

// TemperatureSteps returns how many labels TemperatureRange would yield for
// the bounds, without the MaxTemperatureSteps cap. It is 0 for an empty
// range and saturates instead of overflowing.
func TemperatureSteps(min, max, precision int) uint64 {
	if precision <= 0 || min > max {
		return 0
	}
	// the unsigned difference is exact even when max-min overflows int
	n := (uint64(max) - uint64(min)) / uint64(precision)
	if n == math.MaxUint64 {
		return n
	}
	return n + 1
}

// TemperatureRange returns the temperature labels min, min+precision, ...
// up to the largest step not above max. The labels are the matrix keys, so
// every caller must derive them here. Ranges longer than
// MaxTemperatureSteps yield nil.
func TemperatureRange(min, max, precision int) []string {
	n := TemperatureSteps(min, max, precision)
	if n == 0 || n > MaxTemperatureSteps {
		return nil
	}
	labels := make([]string, n)
	for i := range labels {
		// i*precision may wrap but the sum always lands in [min, max]
		labels[i] = strconv.Itoa(min + i*precision)
	}
	return labels
}
