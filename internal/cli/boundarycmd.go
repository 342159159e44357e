package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/foamworks/foamctl/internal/casedir"
	"github.com/foamworks/foamctl/internal/caseops"
)

func (c *cli) newBoundaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boundary",
		Short: "Inspect and edit the mesh boundary file",
	}
	cmd.AddCommand(
		c.newBoundaryListCmd(),
		c.newBoundaryRenameCmd(),
		c.newBoundarySetTypeCmd(),
	)
	return cmd
}

func (c *cli) newBoundaryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list CASE",
		Short: "List mesh patches and their types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			boundaryPath := casedir.BoundaryPath(args[0])
			patches, types := c.app.Service().ParseBoundaryFile(c.ctx(cmd), boundaryPath)
			if len(patches) == 0 {
				return fmt.Errorf("no patches found in %s", boundaryPath)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, patch := range patches {
				bcType := types[patch]
				if bcType == "" {
					bcType = "unknown"
				}
				fmt.Fprintf(w, "%s\t%s\n", patch, bcType)
			}
			return w.Flush()
		},
	}
}

func (c *cli) newBoundaryRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename CASE OLD NEW",
		Short: "Rename a patch in the boundary file and every field file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := caseops.RenamePatch(c.ctx(cmd), c.app.Service(), args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renamed %s -> %s\n", args[1], args[2])
			return nil
		},
	}
}

func (c *cli) newBoundarySetTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-type CASE PATCH TYPE",
		Short: "Change the type of a patch in the boundary file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := caseops.ChangePatchType(c.ctx(cmd), c.app.Service(), args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s type set to %s\n", args[1], args[2])
			return nil
		},
	}
}

func (c *cli) newMatrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix CASE",
		Short: "Show the patch-by-field boundary coverage grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := caseops.BuildMatrix(c.ctx(cmd), c.app.Service(), args[0])
			if len(m.Patches) == 0 {
				return fmt.Errorf("no boundary information in %s", args[0])
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join(append([]string{"patch"}, m.Fields...), "\t"))
			for _, patch := range m.Patches {
				row := []string{patch}
				for _, field := range m.Fields {
					row = append(row, cellLabel(m.Cells[patch][field]))
				}
				fmt.Fprintln(w, strings.Join(row, "\t"))
			}
			return w.Flush()
		},
	}
}

// cellLabel renders one matrix cell: the boundary condition type, or a
// coverage marker when the patch has no entry of its own.
func cellLabel(cell caseops.Cell) string {
	switch cell.Status {
	case caseops.StatusMissing:
		return "MISSING"
	case caseops.StatusWildcard:
		return "wildcard"
	default:
		return cell.Type
	}
}
