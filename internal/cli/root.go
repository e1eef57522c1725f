package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kedar1021/to-do-app/internal/buildinfo"
)

type rootOpts struct {
	config string
	debug  bool
	format string
	strict bool
}

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !isQuietExit(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:           "todoprobe",
		Short:         "todoprobe: diagnostics for the task backend (schema check and task-creation repro)",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch opts.format {
			case "pretty", "json":
				return nil
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", opts.format)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.config, "config", "", "Path to todoprobe.yaml (optional; searched upward from the working directory)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .todoprobe/logs/todoprobe.log")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "pretty", "Output format: pretty|json")
	cmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Exit non-zero with a distinct code for each failure branch")

	cmd.AddCommand(
		schemaCmd(opts),
		reproduceCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
