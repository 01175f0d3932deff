package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"protomod/internal/engine"
)

var (
	buildOutput     string
	buildIncludes   []string
	buildTempDir    string
	buildFDSPath    string
	buildClient     bool
	buildServer     bool
	buildWKT        bool
	buildKeepOutput bool
	buildDryRun     bool
	buildConfig     string
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] SOURCE",
	Short: "Patch, compile, and modularize a protobuf schema tree",
	Long: `Compile the protobuf schemas under SOURCE and write the resulting module
tree to the output directory.

Schemas declaring an edition are patched back to proto3 syntax before the
generator runs. The generator's flat per-package output is then reorganized
into nested modules mirroring the package hierarchy, with one module file
per directory re-exporting its children.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(buildConfig)
		if err != nil {
			return err
		}

		req := &engine.BuildRequest{
			Source:            args[0],
			Output:            buildOutput,
			Includes:          buildIncludes,
			TempDir:           buildTempDir,
			DescriptorSetPath: buildFDSPath,
			BuildClient:       buildClient,
			BuildServer:       buildServer,
			WellKnownTypes:    buildWKT,
			KeepOutput:        buildKeepOutput,
			DryRun:            buildDryRun,
		}

		result, err := eng.Build(context.Background(), req)
		if err != nil {
			return err
		}

		if buildDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would emit %s", PrintCount(len(result.Plan), "module file", "module files")))
			files := make([]string, 0, len(result.Plan))
			for _, file := range result.Plan {
				files = append(files, file.Path)
			}
			PrintList(files, 1)
			return nil
		}

		PrintSuccess(fmt.Sprintf("Emitted %s under %s",
			PrintCount(len(result.Plan), "module file", "module files"), result.OutputDir))
		PrintLabelValue("Compiled schemas", fmt.Sprintf("%d (%d patched to proto3)", result.PatchedSchemas, result.Rewritten))
		PrintLabelValue("Generated packages", fmt.Sprintf("%d", result.Artifacts))

		if buildFDSPath != "" {
			PrintLabelValue("Descriptor set", buildFDSPath)
			if len(result.MissingPackages) > 0 {
				PrintWarning(fmt.Sprintf("Packages declared but not generated: %s",
					strings.Join(result.MissingPackages, ", ")))
			}
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "out", "Output directory for the module tree")
	buildCmd.Flags().StringArrayVarP(&buildIncludes, "include", "I", nil, "Add a directory to the schema import path (repeatable)")
	buildCmd.Flags().StringVar(&buildTempDir, "temp-dir", "", "Create the temporary working directory here")
	buildCmd.Flags().StringVar(&buildFDSPath, "with-file-descriptor-set", "", "Also write an encoded file descriptor set to this path")
	buildCmd.Flags().BoolVar(&buildClient, "build-client", false, "Generate RPC client code")
	buildCmd.Flags().BoolVar(&buildServer, "build-server", false, "Generate RPC server stubs")
	buildCmd.Flags().BoolVar(&buildWKT, "with-well-known-types", false, "Compile the well-known types")
	buildCmd.Flags().BoolVar(&buildKeepOutput, "keep-output", false, "Keep an existing output directory instead of recreating it")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "Show the emission plan without writing output files")
	buildCmd.Flags().StringVar(&buildConfig, "config", "", "Path to the config file (default .protomod.yaml)")
}
