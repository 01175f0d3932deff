// Package cli defines the protomod command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the root command for protomod.
var rootCmd = &cobra.Command{
	Use:     "protomod",
	Version: "dev",
	Short:   "Compile protobuf schemas into a nested module tree",
	Long: `protomod patches protobuf schemas that declare an edition back to proto3
syntax, runs the external code generator, and reorganizes its flat
one-file-per-package output into a nested module tree, ready to ship as a
standalone library.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "compilation",
		Title: "Compilation:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the protomod CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	buildCmd.GroupID = "compilation"
	patchCmd.GroupID = "compilation"
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(patchCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
