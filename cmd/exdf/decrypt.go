package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"exdf/internal/mirror"
)

var (
	jobs        int
	summaryPath string
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <input-dir> <output-dir>",
	Short: "Decrypt every .exdf file into a mirrored tree of XML",
	Long: `Walk the input directory recursively, decrypt each .exdf file and
write it as pretty-printed XML under the output directory. Every other
file is copied through unchanged, so the output is a drop-in mirror of
the input with readable data files.

The exit status is non-zero when any file fails; failures never stop
the rest of the run.`,
	Args: cobra.ExactArgs(2),
	RunE: runDecrypt,
}

func init() {
	decryptCmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of files to process concurrently")
	decryptCmd.Flags().StringVar(&summaryPath, "summary", "", "write a YAML run summary to this file")
	rootCmd.AddCommand(decryptCmd)
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	inRoot, outRoot := args[0], args[1]

	run, err := mirror.Mirror(inRoot, outRoot, mirror.Options{
		Jobs:    jobs,
		Observe: printResult,
	})
	if err != nil {
		return err
	}

	fmt.Println(run.Summary("decrypted"))
	if summaryPath != "" {
		if err := run.WriteYAML(summaryPath, inRoot, outRoot); err != nil {
			return err
		}
	}
	if !run.AllSucceeded() {
		return fmt.Errorf("%d file(s) failed", run.Failed)
	}
	return nil
}

// printResult writes the per-file status line.
func printResult(res mirror.Result) {
	if res.Err != nil {
		fmt.Printf("  ✗ %s: %v\n", res.Rel, res.Err)
		return
	}
	fmt.Printf("  ✓ %s\n", res.Rel)
}
