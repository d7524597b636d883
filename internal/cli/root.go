// Package cli provides the command-line interface for Chromalint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/chromalint/chromalint/internal/version"
)

var (
	// log is the shared logger, configured from the global verbosity
	// flags before any command runs.
	log hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "chromalint",
		Short: "A WCAG colour contrast analyser",
		Long: `Chromalint analyses an extracted web-page colour palette for WCAG
accessibility compliance.

It computes pairwise contrast ratios under normal vision and simulated
colour-vision deficiencies (protanopia, deuteranopia, tritanopia),
classifies violations against a configurable threshold, and produces a
ranked issue list plus a weighted accessibility score.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			quiet, _ := cmd.Flags().GetBool("quiet")

			level := hclog.Info
			if verbose {
				level = hclog.Debug
			}
			if quiet {
				level = hclog.Off
			}
			log = hclog.New(&hclog.LoggerOptions{
				Name:   "chromalint",
				Output: os.Stderr,
				Level:  level,
			})
		},
	}
)

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
