// Package solverlog extracts run metrics from solver log files and
// streams lines appended to a log that is still being written.
package solverlog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	residualRE = regexp.MustCompile(`Solving for\s+([^,\s]+).*?Initial residual = ([0-9eE.+-]+)`)
	timeRE     = regexp.MustCompile(`(?m)^\s*Time\s*=\s*([0-9eE.+-]+)\s*$`)
	courantRE  = regexp.MustCompile(`(?i)Courant(?:\s+Number)?(?:\s+mean)?\s*[:=]\s*([0-9eE.+-]+).*?(?:max|maximum)\s*[:=]\s*([0-9eE.+-]+)`)
	execTimeRE = regexp.MustCompile(`(?i)ExecutionTime\s*=\s*([0-9eE.+-]+)\s*s`)
)

// Metrics aggregates the per-iteration series of one solver log.
type Metrics struct {
	Times          []float64
	Courants       []float64
	ExecutionTimes []float64
}

// ParseMetrics extracts every metric series from a log in one pass.
func ParseMetrics(text string) Metrics {
	return Metrics{
		Times:          ParseTimeSteps(text),
		Courants:       ParseCourant(text),
		ExecutionTimes: ParseExecutionTimes(text),
	}
}

// ParseResiduals maps each solved-for field to its series of initial
// residuals, in log order.
func ParseResiduals(text string) map[string][]float64 {
	residuals := make(map[string][]float64)
	for _, line := range strings.Split(text, "\n") {
		m := residualRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		residuals[m[1]] = append(residuals[m[1]], value)
	}
	return residuals
}

// ParseTimeSteps returns the simulated time of every time step.
func ParseTimeSteps(text string) []float64 {
	return matchFloats(timeRE, text, 1)
}

// ParseCourant returns the max Courant number of every time step.
func ParseCourant(text string) []float64 {
	return matchFloats(courantRE, text, 2)
}

// ParseExecutionTimes returns the cumulative execution time readings.
func ParseExecutionTimes(text string) []float64 {
	return matchFloats(execTimeRE, text, 1)
}

// ExecutionDeltas converts cumulative execution times into per-step
// durations. A restarted log resets the counter; the negative jump is
// dropped rather than reported as a negative duration.
func ExecutionDeltas(executionTimes []float64) []float64 {
	if len(executionTimes) < 2 {
		return nil
	}
	var deltas []float64
	prev := executionTimes[0]
	for _, current := range executionTimes[1:] {
		if delta := current - prev; delta >= 0 {
			deltas = append(deltas, delta)
		}
		prev = current
	}
	return deltas
}

func matchFloats(re *regexp.Regexp, text string, group int) []float64 {
	var values []float64
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(m[group], 64)
		if err != nil {
			continue
		}
		values = append(values, value)
	}
	return values
}
