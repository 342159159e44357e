package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/foamworks/foamctl/internal/app"
	"github.com/foamworks/foamctl/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// cli carries the persistent flag values and the App built from them.
type cli struct {
	app  *app.App
	errW io.Writer

	backend   string
	logFormat string
	logLevel  string
	noJournal bool
}

// New assembles the foamctl command tree. Command output goes to out;
// logs and diagnostics go to errW.
func New(out, errW io.Writer) *cobra.Command {
	c := &cli{errW: errW}

	root := &cobra.Command{
		Use:   "foamctl",
		Short: "Surgical reader and editor for OpenFOAM cases",
		Long: `foamctl reads and edits OpenFOAM dictionary files without rewriting
them: every change is a byte-precise splice, so comments, layout, and
untouched entries survive exactly as they were.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(out)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&c.backend, "backend", "auto", "dictionary backend: 'auto', 'builtin' or 'foamdictionary'")
	pf.StringVar(&c.logLevel, "log-level", "info", "log level: 'debug', 'info', 'warn' or 'error'")
	pf.StringVar(&c.logFormat, "log-format", "text", "log format: 'text' or 'json'")
	pf.BoolVar(&c.noJournal, "no-journal", false, "skip recording edits under <case>/.foamctl")

	root.AddCommand(
		c.newKeywordsCmd(),
		c.newSubkeysCmd(),
		c.newGetCmd(),
		c.newSetCmd(),
		c.newCommentsCmd(),
		c.newBoundaryCmd(),
		c.newMatrixCmd(),
		c.newVerifyCmd(),
		c.newInfoCmd(),
		c.newParamCmd(),
		c.newLogsCmd(),
	)
	return root
}

// setup builds the App from the persistent flags. It runs once per
// invocation, before any subcommand.
func (c *cli) setup(*cobra.Command, []string) error {
	cfg, err := app.NewConfig(app.Config{
		Backend:   c.backend,
		LogFormat: c.logFormat,
		LogLevel:  c.logLevel,
		NoJournal: c.noJournal,
	})
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	a, err := app.NewApp(c.errW, cfg)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	c.app = a
	return nil
}

// ctx derives the operation context: the command's context (so signal
// cancellation flows through) carrying the app logger.
func (c *cli) ctx(cmd *cobra.Command) context.Context {
	return ctxlog.WithLogger(cmd.Context(), c.app.Logger())
}
