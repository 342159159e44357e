package casedir

import (
	"fmt"
	"os"
	"sort"
	"strconv"
)

// TimeDirs returns the numeric time directories of a case, as named on
// disk, sorted by their time value. Equal values keep name order.
func TimeDirs(caseDir string) []string {
	entries, err := os.ReadDir(caseDir)
	if err != nil {
		return nil
	}
	type timeDir struct {
		name  string
		value float64
	}
	var times []timeDir
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		value, err := strconv.ParseFloat(e.Name(), 64)
		if err != nil {
			continue
		}
		times = append(times, timeDir{e.Name(), value})
	}
	sort.SliceStable(times, func(i, j int) bool { return times[i].value < times[j].value })
	names := make([]string, len(times))
	for i, td := range times {
		names[i] = td.name
	}
	return names
}

// LatestTime returns the highest time value of a case formatted with
// %g, or "0" when the case has no time directories.
func LatestTime(caseDir string) string {
	entries, err := os.ReadDir(caseDir)
	if err != nil {
		return "0"
	}
	latest := 0.0
	found := false
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		value, err := strconv.ParseFloat(e.Name(), 64)
		if err != nil {
			continue
		}
		if !found || value > latest {
			latest = value
			found = true
		}
	}
	if !found {
		return "0"
	}
	return fmt.Sprintf("%g", latest)
}
