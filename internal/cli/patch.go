package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"protomod/internal/engine"
)

var patchConfig string

var patchCmd = &cobra.Command{
	Use:   "patch SOURCE DEST",
	Short: "Rewrite edition declarations to proto3 syntax without compiling",
	Long: `Copy the protobuf schemas under SOURCE to DEST, rewriting any leading
edition declaration to proto3 syntax. Schemas already declaring a syntax
are copied through byte-for-byte.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(patchConfig)
		if err != nil {
			return err
		}

		result, err := eng.Patch(context.Background(), &engine.PatchRequest{
			Source: args[0],
			Dest:   args[1],
		})
		if err != nil {
			return err
		}

		PrintSuccess(fmt.Sprintf("Patched %s into %s",
			PrintCount(len(result.Files), "schema", "schemas"), args[1]))
		PrintLabelValue("Rewritten to proto3", fmt.Sprintf("%d", result.Rewritten))
		return nil
	},
}

func init() {
	patchCmd.Flags().StringVar(&patchConfig, "config", "", "Path to the config file (default .protomod.yaml)")
}
