// childsec creates and checks the Child Security datastore.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/maloquacious/childsec/internal/config"
	"github.com/maloquacious/childsec/internal/logger"
	"github.com/maloquacious/childsec/internal/style"
)

var (
	version   = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}
	buildDate = ""
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit is a sentinel error returned by cobra RunE functions to signal
// non-zero exit. The command has already written its own error to stderr.
var errExit = errors.New("exit")

// run executes the childsec CLI with the given args.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "childsec: %v\n", err)
		return 1
	}

	root := newRootCmd(&cfg, stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "childsec: %v\n", err)
			var h *HintedError
			if errors.As(err, &h) {
				fmt.Fprintf(stderr, "%s\n", style.Dim.Render("hint: "+h.Hint))
			}
		}
		return 1
	}
	return 0
}

// app carries what the subcommands share once flags are parsed.
type app struct {
	cfg    *config.Config
	log    *logger.SlogLogger
	stdout io.Writer
	stderr io.Writer
}

// newRootCmd creates the root cobra command with all subcommands.
func newRootCmd(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cfg, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "childsec",
		Short:         "Child Security datastore tool",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			fmt.Fprintf(stderr, "childsec: unknown command %q\n", args[0])
			return errExit
		},
	}
	root.PersistentFlags().String("color", "auto", "Color output: always, auto, never")
	cfg.BindLogFlags(root.PersistentFlags())
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		colorMode, _ := cmd.Flags().GetString("color")
		switch colorMode {
		case "always", "auto", "never":
			style.SetColorMode(colorMode)
		default:
			return fmt.Errorf("invalid --color value %q: must be always, auto, or never", colorMode)
		}

		log, err := logger.New(stderr, logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			return err
		}
		a.log = log
		return nil
	}

	root.AddCommand(
		newDBCmd(a),
		newVersionCmd(stdout),
	)
	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if buildDate != "" {
				fmt.Fprintf(stdout, "childsec %s (built: %s)\n", version.String(), buildDate)
				return nil
			}
			fmt.Fprintf(stdout, "childsec %s\n", version.String())
			return nil
		},
	}
}
