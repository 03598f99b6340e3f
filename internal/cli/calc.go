package cli

import (
	zscore "Annulus/internal/calc/zscore"

	"github.com/spf13/cobra"
)

func newCalcCommand() *cobra.Command {
	var (
		in               zscore.PatientInput
		format           string
		showCoefficients bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Predict every valve with every method",
		Long: `Compute BSA and the predicted annulus diameter of every valve with
every method.

Examples:
  annulus calc --height 100 --weight 15
  annulus calc --height 100 --weight 15 --coefficients
  annulus calc --height 100 --weight 15 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if err := in.Validate(); err != nil {
				return err
			}
			res := zscore.ComputeAll(in)
			if format == formatTable {
				renderAggregate(cmd.OutOrStdout(), in, res, showCoefficients)
				return nil
			}
			return writeStructured(cmd.OutOrStdout(), format, res)
		},
	}
	cmd.Flags().Float64Var(&in.HeightCM, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&in.WeightKG, "weight", 0, "weight in kg")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	cmd.Flags().BoolVar(&showCoefficients, "coefficients", false, "show the intercept and slope behind each prediction")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("weight")
	return cmd
}

func newFormulasCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "formulas",
		Short: "Describe the four regression methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			formulas := zscore.DescribeAll()
			if format == formatTable {
				renderFormulas(cmd.OutOrStdout(), formulas)
				return nil
			}
			return writeStructured(cmd.OutOrStdout(), format, formulas)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json or yaml")
	return cmd
}
