package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exdf/internal/decompile"
)

var decompileSummaryPath string

var decompileCmd = &cobra.Command{
	Use:   "decompile <input-dir> <output-dir>",
	Short: "Decompile every .NET assembly into a mirrored source tree",
	Long: `Walk the input directory recursively and run ilspycmd on each .dll
and .exe, writing the recovered sources into a subdirectory named
after the assembly. Every other file is copied through unchanged.

Each invocation is bounded by a five-minute timeout; a hung or failing
decompilation is recorded and the run continues. A missing ilspycmd
aborts immediately.`,
	Args: cobra.ExactArgs(2),
	RunE: runDecompile,
}

func init() {
	decompileCmd.Flags().StringVar(&decompileSummaryPath, "summary", "", "write a YAML run summary to this file")
	rootCmd.AddCommand(decompileCmd)
}

func runDecompile(cmd *cobra.Command, args []string) error {
	inRoot, outRoot := args[0], args[1]

	run, err := decompile.Tree(inRoot, outRoot, printResult)
	if err != nil {
		return err
	}

	fmt.Println(run.Summary("decompiled"))
	if decompileSummaryPath != "" {
		if err := run.WriteYAML(decompileSummaryPath, inRoot, outRoot); err != nil {
			return err
		}
	}
	if !run.AllSucceeded() {
		return fmt.Errorf("%d assembly(ies) failed", run.Failed)
	}
	return nil
}
