package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords FILE",
		Short: "List the top-level keywords of a dictionary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := c.app.Service().ListKeywords(c.ctx(cmd), args[0])
			if len(keys) == 0 {
				return fmt.Errorf("no keywords parsed from %s", args[0])
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func (c *cli) newSubkeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subkeys FILE ENTRY",
		Short: "List the keywords nested under a dotted entry path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := c.app.Service().ListSubkeys(c.ctx(cmd), args[0], args[1])
			if len(keys) == 0 {
				return fmt.Errorf("no subkeys under %s in %s", args[1], args[0])
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func (c *cli) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE ENTRY",
		Short: "Print the value of a dotted entry path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := c.app.Service().ReadEntry(c.ctx(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func (c *cli) newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE ENTRY VALUE",
		Short: "Write the value of a dotted entry path in place",
		Long: `Writes an entry by splicing the raw file text. The entry is created
inside its parent block when absent; everything outside the touched
span is preserved byte for byte. Prints nothing on success.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.app.Service().WriteEntry(c.ctx(cmd), args[0], args[1], args[2]) {
				return &ExitError{Code: 1, Message: fmt.Sprintf("failed to set %s in %s", args[1], args[0])}
			}
			return nil
		},
	}
}

func (c *cli) newCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments FILE ENTRY",
		Short: "Print the comment lines directly above an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, line := range c.app.Service().EntryComments(c.ctx(cmd), args[0], args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
