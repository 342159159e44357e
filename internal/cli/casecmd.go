package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foamworks/foamctl/internal/caseops"
	"github.com/foamworks/foamctl/internal/check"
	"github.com/foamworks/foamctl/internal/parametric"
)

func (c *cli) newVerifyCmd() *cobra.Command {
	var rulesPath string
	var jobs int
	cmd := &cobra.Command{
		Use:   "verify CASE",
		Short: "Lint a case: required entries, boundary coverage, initial conditions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := check.Options{Jobs: jobs}
			if rulesPath != "" {
				rules, err := check.LoadRules(rulesPath)
				if err != nil {
					return err
				}
				opts.Rules = rules
			}

			report, err := check.Run(c.ctx(cmd), c.app.Service(), args[0], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, msg := range report.CaseErrors {
				fmt.Fprintf(out, "case: %s\n", msg)
			}
			for _, f := range report.Files {
				for _, msg := range f.Errors {
					fmt.Fprintf(out, "%s: error: %s\n", f.Path, msg)
				}
				for _, msg := range f.Warnings {
					fmt.Fprintf(out, "%s: warning: %s\n", f.Path, msg)
				}
			}

			errCount, warnCount := report.Counts()
			if errCount == 0 && warnCount == 0 {
				fmt.Fprintln(out, "no problems found")
				return nil
			}
			fmt.Fprintf(out, "%d error(s), %d warning(s)\n", errCount, warnCount)
			if errCount > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("verification found %d error(s)", errCount)}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "HCL rules file replacing the built-in lint rules")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "max files checked concurrently (0 = default)")
	return cmd
}

func (c *cli) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info CASE",
		Short: "Print a quick case overview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := caseops.Summarize(c.ctx(cmd), c.app.Service(), args[0])
			mesh := "no"
			if s.HasMesh {
				mesh = "yes"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:        %s\n", s.Name)
			fmt.Fprintf(out, "path:        %s\n", s.Path)
			fmt.Fprintf(out, "solver:      %s\n", s.Solver)
			fmt.Fprintf(out, "mesh:        %s\n", mesh)
			fmt.Fprintf(out, "parallel:    %s\n", s.Parallel)
			fmt.Fprintf(out, "status:      %s\n", s.Status)
			fmt.Fprintf(out, "latest time: %s\n", s.LatestTime)
			fmt.Fprintf(out, "time dirs:   %d\n", len(s.TimeDirs))
			return nil
		},
	}
}

func (c *cli) newParamCmd() *cobra.Command {
	var outputRoot, presetName string
	cmd := &cobra.Command{
		Use:   "param CASE [DICT ENTRY VALUE...]",
		Short: "Clone a case once per value and set the swept entry in each clone",
		Long: `Creates one sibling case folder per sweep value, named
<case>_<entry>_<value>. Runtime artifacts (processor*, log.*,
postProcessing, case.foam) are left out of the clones. The sweep comes
either from DICT ENTRY VALUE... arguments or from a named preset in the
case's ` + parametric.PresetsFile + ` file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseDir := args[0]
			var dictRel, entry string
			var values []string
			switch {
			case presetName != "":
				if len(args) > 1 {
					return errors.New("--preset takes no DICT/ENTRY/VALUE arguments")
				}
				presets, problems := parametric.ReadPresets(filepath.Join(caseDir, parametric.PresetsFile))
				for _, p := range problems {
					fmt.Fprintln(cmd.ErrOrStderr(), p)
				}
				p, ok := parametric.FindPreset(presets, presetName)
				if !ok {
					return fmt.Errorf("preset %q not found in %s", presetName, parametric.PresetsFile)
				}
				dictRel, entry, values = p.DictPath, p.Entry, p.Values
			case len(args) >= 4:
				dictRel, entry, values = args[1], args[2], args[3:]
			default:
				return errors.New("need DICT ENTRY VALUE... arguments or --preset NAME")
			}

			created, err := parametric.Build(c.ctx(cmd), c.app.Service(), caseDir, dictRel, entry, values,
				parametric.Options{OutputRoot: outputRoot})
			out := cmd.OutOrStdout()
			for _, path := range created {
				fmt.Fprintln(out, path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "created %d case(s)\n", len(created))
			return nil
		},
	}
	cmd.Flags().StringVar(&outputRoot, "output-root", "", "directory receiving the clones (default: case parent)")
	cmd.Flags().StringVar(&presetName, "preset", "", "use a sweep from the case's "+parametric.PresetsFile+" file")
	return cmd
}
