package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VivekMane57/sectionize/pkg/sectionize"
	"github.com/VivekMane57/sectionize/pkg/sectionize/output"
)

var rawOutputDir string

func newRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw [input.xlsx...]",
		Short: "Write the segmented block document of workbooks as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRaw,
	}
	cmd.Flags().StringVarP(&rawOutputDir, "output", "o", "", "Output directory (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	return cmd
}

func runRaw(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	for _, path := range args {
		doc, err := sectionize.Load(path, log)
		if err != nil {
			return fmt.Errorf("load failed: %w", err)
		}
		if rawOutputDir == "" {
			data, err := output.ToJSON(doc, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(w, string(data))
			continue
		}
		dest, err := output.WriteFile(rawOutputDir, output.RawFileName(doc.DocumentName), doc, pretty)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		okStyle.Fprintf(w, "OK   %s -> %s (%d sheets)\n", path, dest, len(doc.Sheets))
	}
	return nil
}
