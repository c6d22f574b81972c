package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// Version is set at build time.
var Version = "dev"

func Run() ExitCode {
	rootCmd := NewRootCmd(os.Stdout)

	if err := rootCmd.Execute(); err != nil {
		return exitCodeError
	}

	return exitCodeSuccess
}

// NewRootCmd returns the lazy command, writing its results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lazy",
		Short:        "Transform collections with lazy pipelines.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cmd.Help()
			if err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}

			return nil
		},
	}

	var configFile string
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")

	rootCmd.AddCommand(
		newEmployeesCmd(out, &configFile),
		newVersionCmd(out),
	)

	return rootCmd
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(out, Version)

			return err
		},
	}
}
