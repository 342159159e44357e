package cli

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/foamworks/foamctl/internal/solverlog"
)

func (c *cli) newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Analyze and follow solver logs",
	}
	cmd.AddCommand(
		c.newLogsSummaryCmd(),
		c.newLogsFollowCmd(),
	)
	return cmd
}

func (c *cli) newLogsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary LOGFILE",
		Short: "Summarize time steps, Courant numbers, and residuals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text := string(data)
			metrics := solverlog.ParseMetrics(text)
			residuals := solverlog.ParseResiduals(text)
			if len(metrics.Times) == 0 && len(metrics.Courants) == 0 &&
				len(metrics.ExecutionTimes) == 0 && len(residuals) == 0 {
				return fmt.Errorf("no metrics found in %s", filepath.Base(args[0]))
			}

			out := cmd.OutOrStdout()
			if n := len(metrics.Times); n > 0 {
				fmt.Fprintf(out, "Time steps: %d (last=%.6g)\n", n, metrics.Times[n-1])
			}
			if len(metrics.Courants) > 0 {
				fmt.Fprintf(out, "Courant max: %.6g\n", slices.Max(metrics.Courants))
			}
			if n := len(metrics.ExecutionTimes); n > 0 {
				fmt.Fprintf(out, "Execution time: %.6g s\n", metrics.ExecutionTimes[n-1])
				if deltas := solverlog.ExecutionDeltas(metrics.ExecutionTimes); len(deltas) > 0 {
					var sum float64
					for _, d := range deltas {
						sum += d
					}
					fmt.Fprintf(out, "Step time: min=%.6g avg=%.6g max=%.6g\n",
						slices.Min(deltas), sum/float64(len(deltas)), slices.Max(deltas))
				}
			}
			if len(residuals) > 0 {
				fmt.Fprintln(out, "Residuals:")
				for _, field := range slices.Sorted(maps.Keys(residuals)) {
					values := residuals[field]
					if len(values) == 0 {
						continue
					}
					fmt.Fprintf(out, "- %s: last=%.3g min=%.3g max=%.3g\n",
						field, values[len(values)-1], slices.Min(values), slices.Max(values))
				}
			}
			return nil
		},
	}
}

func (c *cli) newLogsFollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow LOGFILE",
		Short: "Stream lines appended to a running solver log",
		Long: `Streams complete lines appended to the log until interrupted.
Watches the log's directory for changes and polls as a fallback, so it
works on filesystems without notification support.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := solverlog.Follow(c.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
