package cli

import (
	"fmt"
	"os"
	"time"

	report "Annulus/internal/calc/report"

	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	var (
		in  report.Input
		out string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF report for one patient",
		Long: `Write a PDF with the derived body size, every prediction and the
formulas used.

Example:
  annulus report --height 100 --weight 15 --patient "J. Doe" -o report.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := in.Validate(); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := report.Write(f, in, time.Now()); err != nil {
				f.Close()
				return fmt.Errorf("write report: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&in.HeightCM, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&in.WeightKG, "weight", 0, "weight in kg")
	cmd.Flags().StringVar(&in.Patient, "patient", "", "patient name or identifier")
	cmd.Flags().StringVar(&in.Author, "author", "", "report author")
	cmd.Flags().StringVar(&in.Title, "title", "", "report title")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free-text notes")
	cmd.Flags().StringVarP(&out, "out", "o", "report.pdf", "output file")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("weight")
	return cmd
}
