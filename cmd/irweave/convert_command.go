package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"irweave/internal/converter"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var brand string
	var model string
	var outputDir string
	var toStdout bool
	var tidyLabels bool

	cmd := &cobra.Command{
		Use:   "convert <capture-file>",
		Short: "Convert one capture file to an irplus document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			opts := converter.Options{
				Brand:      brand,
				Model:      model,
				TidyLabels: tidyLabels || cfg.Conversion.TidyLabels,
			}
			result, err := converter.RunFile(args[0], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			for _, warning := range result.Warnings {
				fmt.Fprintln(errOut, "warning:", warning)
			}

			if toStdout {
				fmt.Fprint(out, result.Document)
				return nil
			}

			dir := strings.TrimSpace(outputDir)
			if dir == "" {
				dir = cfg.Paths.OutputDir
			}
			path, err := converter.Write(dir, result)
			if err != nil {
				return err
			}

			if len(result.Entries) == 0 {
				fmt.Fprintln(out, "No codes found; wrote header-only document")
			} else {
				rows := make([][]string, 0, len(result.Entries))
				for _, entry := range result.Entries {
					rows = append(rows, []string{entry.Label, entry.Hex24, entry.Code.String()})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Label", "Capture", "Code"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
			}
			fmt.Fprintf(out, "Wrote %s (%d buttons)\n", path, len(result.Entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Override the device brand")
	cmd.Flags().StringVar(&model, "model", "", "Override the device model")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the rendered document (default: configured output dir)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the document instead of writing a file")
	cmd.Flags().BoolVar(&tidyLabels, "tidy-labels", false, "Title-case all-lowercase key labels")

	return cmd
}
