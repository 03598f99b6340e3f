package cli

import (
	"fmt"
	"os"

	importer "Annulus/internal/calc/importer"

	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "import <workbook.xlsx>",
		Short: "Compute predictions for every patient row of a workbook",
		Long: `Read height_cm, weight_kg and an optional label from the first sheet
(row 1 is a header) and compute every prediction per row.

Examples:
  annulus import patients.xlsx
  annulus import patients.xlsx --out predictions.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := importer.Import(f)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range res.Skipped {
				fmt.Fprintln(cmd.ErrOrStderr(), hintStyle.Render(fmt.Sprintf("skipped row %d: %s", s.Row, s.Reason)))
			}
			fmt.Fprintf(w, "Computed %d rows, skipped %d\n", res.Count, len(res.Skipped))

			if out == "" {
				return nil
			}
			dst, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := importer.WriteWorkbook(dst, res.Results); err != nil {
				dst.Close()
				return fmt.Errorf("write %s: %w", out, err)
			}
			if err := dst.Close(); err != nil {
				return err
			}
			fmt.Fprintf(w, "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write predictions to this workbook")
	return cmd
}
