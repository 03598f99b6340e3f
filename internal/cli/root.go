// Package cli provides the annulus command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "annulus",
		Short: "Pediatric valve annulus calculator",
		Long: `Annulus predicts pediatric cardiac valve-annulus diameters (Z = 0) from
height and weight using four published regressions: PHN/Lopez,
Pettersen 2008, Boston (BCH/Colan) and Cantinotti (2014/2017).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCalcCommand())
	rootCmd.AddCommand(newFormulasCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newHashPasswordCommand())
	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}
