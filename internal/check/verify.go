package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/foamworks/foamctl/internal/casedir"
	"github.com/foamworks/foamctl/internal/ctxlog"
	"github.com/foamworks/foamctl/internal/dictionary"
)

// FileReport collects the issues found in one checked file.
type FileReport struct {
	Path     string
	Section  string
	Skipped  bool
	Errors   []string
	Warnings []string
}

// Report is the outcome of one verify run over a case.
type Report struct {
	CaseErrors []string
	Files      []FileReport
}

// Counts sums errors and warnings across the whole report.
func (r *Report) Counts() (errors, warnings int) {
	errors = len(r.CaseErrors)
	for _, f := range r.Files {
		errors += len(f.Errors)
		warnings += len(f.Warnings)
	}
	return errors, warnings
}

// Options tune a verify run.
type Options struct {
	// Rules overrides the built-in lint rules. nil means DefaultRules.
	Rules []*Rule
	// Jobs caps how many files are checked concurrently.
	Jobs int
}

const defaultJobs = 4

// Run checks every discovered dictionary file of the case plus the
// case-level preconditions. Per-file problems land in the report; the
// returned error is reserved for a broken rule set or cancellation.
func Run(ctx context.Context, svc *dictionary.Service, caseDir string, opts Options) (*Report, error) {
	rules := opts.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = defaultJobs
	}

	report := &Report{CaseErrors: caseChecks(ctx, svc, caseDir)}

	type target struct {
		section string
		path    string
	}
	var targets []target
	sections := casedir.Discover(caseDir)
	for _, p := range sections.System {
		targets = append(targets, target{"system", p})
	}
	for _, p := range sections.Constant {
		targets = append(targets, target{"constant", p})
	}
	for _, p := range sections.Zero {
		targets = append(targets, target{"0*", p})
	}
	ctxlog.FromContext(ctx).Debug("verifying case",
		"case", caseDir, "files", len(targets), "jobs", jobs)

	report.Files = make([]FileReport, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, tgt := range targets {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fr, err := checkFile(gctx, svc, caseDir, tgt.section, tgt.path, rules)
			if err != nil {
				return err
			}
			report.Files[i] = fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

func checkFile(ctx context.Context, svc *dictionary.Service, caseDir, section, path string, rules []*Rule) (FileReport, error) {
	fr := FileReport{Path: relPath(caseDir, path), Section: section}

	if !casedir.IsFoamFile(path) {
		fr.Skipped = true
		return fr, nil
	}

	keys := svc.ListKeywords(ctx, path)
	if len(keys) == 0 {
		fr.Errors = append(fr.Errors, "no keywords parsed")
		return fr, nil
	}

	name := filepath.Base(path)
	for _, rule := range rules {
		ok, err := rule.Applies(name, section)
		if err != nil {
			return fr, err
		}
		if !ok {
			continue
		}
		var missing []string
		for _, req := range rule.Requires {
			if !slices.Contains(keys, req) {
				missing = append(missing, req)
			}
		}
		if len(missing) > 0 {
			fr.Warnings = append(fr.Warnings, rule.Message(missing))
		}
	}

	if slices.Contains(keys, "boundaryField") {
		fr.Errors = append(fr.Errors, boundaryCoverage(ctx, svc, caseDir, path)...)
	}
	return fr, nil
}

// boundaryCoverage cross-checks a field file's boundaryField block
// against the mesh patches. A ".*" wildcard entry covers everything;
// processor patches belong to the decomposition tooling and are not
// required.
func boundaryCoverage(ctx context.Context, svc *dictionary.Service, caseDir, path string) []string {
	patches, patchTypes := svc.ParseBoundaryFile(ctx, casedir.BoundaryPath(caseDir))
	if len(patches) == 0 {
		return nil
	}
	covered := svc.ListSubkeys(ctx, path, "boundaryField")
	if slices.Contains(covered, ".*") {
		return nil
	}
	var missing []string
	for _, patch := range patches {
		if strings.HasPrefix(patch, "processor") || patchTypes[patch] == "processor" {
			continue
		}
		if !slices.Contains(covered, patch) {
			missing = append(missing, patch)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []string{"boundaryField missing patches: " + strings.Join(missing, ", ")}
}

// caseChecks runs the case-level preconditions a solver run needs: a
// readable application entry and populated initial conditions.
func caseChecks(ctx context.Context, svc *dictionary.Service, caseDir string) []string {
	var errs []string

	controlDict := filepath.Join(caseDir, "system", "controlDict")
	if !isFile(controlDict) {
		errs = append(errs, "system/controlDict not found in case directory.")
	} else if app, err := svc.ReadEntry(ctx, controlDict, "application"); err != nil {
		errs = append(errs, "failed to read application from system/controlDict.")
	} else if SolverName(app) == "" {
		errs = append(errs, "application entry is empty.")
	}

	errs = append(errs, initialFieldErrors(caseDir)...)
	return errs
}

// SolverName extracts the solver binary name from an application entry
// value, or returns "" when none can be determined.
func SolverName(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], ";")
}

func initialFieldErrors(caseDir string) []string {
	var errs []string
	zeroPresent := isDir(filepath.Join(caseDir, "0"))
	if !zeroPresent {
		if isDir(filepath.Join(caseDir, "0.orig")) {
			errs = append(errs, "0/ directory missing (only 0.orig present). Copy 0.orig -> 0 first.")
		} else {
			errs = append(errs, "Missing 0/ initial conditions directory.")
			return errs
		}
	}

	fields := casedir.ListFieldFiles(caseDir)
	if len(fields) == 0 {
		errs = append(errs, "No field files detected in 0/ (or 0.orig).")
		return errs
	}
	var missing []string
	for _, req := range []string{"U", "p"} {
		if !slices.Contains(fields, req) {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		folder := "0"
		if !zeroPresent {
			folder = "0.orig"
		}
		errs = append(errs, fmt.Sprintf("Missing fields in %s: %s", folder, strings.Join(missing, ", ")))
	}
	return errs
}

func relPath(caseDir, path string) string {
	rel, err := filepath.Rel(caseDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
