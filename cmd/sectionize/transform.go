package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VivekMane57/sectionize/pkg/sectionize"
	"github.com/VivekMane57/sectionize/pkg/sectionize/output"
)

const bundleName = "structured_outputs.zip"

var (
	outputDir string
	pretty    bool
	bundle    bool
	toStdout  bool
	workers   int
)

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [input...]",
		Short: "Extract structured sections from workbooks, workbook JSON or directories of them",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTransform,
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "output", "Output directory")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&bundle, "zip", false, "Also bundle every structured output into "+bundleName)
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print structured JSON to stdout instead of writing files")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Number of files processed concurrently")
	return cmd
}

func runTransform(cmd *cobra.Command, args []string) error {
	paths, err := sectionize.ExpandInputs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .xlsx, .xlsm or .json inputs found in %v", args)
	}

	pipeline := sectionize.NewPipeline(opts, log)
	results, err := pipeline.TransformFiles(cmd.Context(), paths, workers)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var (
		entries []output.BundleEntry
		failed  int
	)
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			failStyle.Fprintf(w, "FAIL %s: %v\n", res.Path, res.Err)
			continue
		case !res.Found:
			warnStyle.Fprintf(w, "WARN %s: no structured data\n", res.Path)
			continue
		}

		data, err := output.ToJSON(res.Output, pretty)
		if err != nil {
			return err
		}
		name := output.FileName(res.Document.DocumentName)
		if toStdout {
			fmt.Fprintln(w, string(data))
		} else {
			dest, err := output.WriteFile(outputDir, name, res.Output, pretty)
			if err != nil {
				return err
			}
			okStyle.Fprintf(w, "OK   %s -> %s (%d sections)\n", res.Path, dest, res.Output.Len())
		}
		entries = append(entries, output.BundleEntry{Name: name, Data: data})
	}

	if bundle && len(entries) > 0 {
		var buf bytes.Buffer
		if err := output.WriteBundle(&buf, entries); err != nil {
			return err
		}
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return err
		}
		dest := filepath.Join(outputDir, bundleName)
		if err := os.WriteFile(dest, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write bundle: %w", err)
		}
		okStyle.Fprintf(w, "ZIP  %s (%d files)\n", dest, len(entries))
	}

	log.Info("transform finished",
		zap.Int("inputs", len(paths)),
		zap.Int("structured", len(entries)),
		zap.Int("failed", failed),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(paths))
	}
	return nil
}
