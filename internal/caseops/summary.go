package caseops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foamworks/foamctl/internal/casedir"
	"github.com/foamworks/foamctl/internal/dictionary"
)

// Summary is the quick case overview shown by the info command.
type Summary struct {
	Name       string
	Path       string
	Solver     string
	Parallel   string
	Status     string
	LatestTime string
	TimeDirs   []string
	HasMesh    bool
}

// Summarize collects case metadata without modifying the case. Fields
// that cannot be determined fall back to "unknown" or "n/a".
func Summarize(ctx context.Context, svc *dictionary.Service, caseDir string) Summary {
	abs, err := filepath.Abs(caseDir)
	if err != nil {
		abs = caseDir
	}
	latest := casedir.LatestTime(abs)
	status := "ran"
	if latest == "0" || latest == "0.0" || latest == "" {
		status = "clean"
	}
	return Summary{
		Name:       filepath.Base(abs),
		Path:       abs,
		Solver:     DetectSolver(ctx, svc, abs),
		Parallel:   DetectParallel(ctx, svc, abs),
		Status:     status,
		LatestTime: latest,
		TimeDirs:   casedir.TimeDirs(abs),
		HasMesh:    HasMesh(abs),
	}
}

// DetectSolver reads the application entry from system/controlDict and
// returns its first token, or "unknown" when the dictionary or entry
// cannot be read.
func DetectSolver(ctx context.Context, svc *dictionary.Service, caseDir string) string {
	controlDict := filepath.Join(caseDir, "system", "controlDict")
	if !isFile(controlDict) {
		return "unknown"
	}
	value, err := svc.ReadEntry(ctx, controlDict, "application")
	if err != nil {
		return "unknown"
	}
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "unknown"
	}
	if solver := strings.TrimRight(fields[0], ";"); solver != "" {
		return solver
	}
	return "unknown"
}

// DetectParallel summarizes system/decomposeParDict as "N (method)", a
// lone count or method, or "n/a" without a decomposition setup.
func DetectParallel(ctx context.Context, svc *dictionary.Service, caseDir string) string {
	decomposeDict := filepath.Join(caseDir, "system", "decomposeParDict")
	if !isFile(decomposeDict) {
		return "n/a"
	}
	number, _ := readOptional(ctx, svc, decomposeDict, "numberOfSubdomains")
	method, _ := readOptional(ctx, svc, decomposeDict, "method")
	switch {
	case number != "" && method != "":
		return fmt.Sprintf("%s (%s)", number, method)
	case number != "":
		return number
	case method != "":
		return method
	}
	return "n/a"
}

// HasMesh reports whether the case carries a non-empty mesh boundary
// file.
func HasMesh(caseDir string) bool {
	info, err := os.Stat(casedir.BoundaryPath(caseDir))
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}
