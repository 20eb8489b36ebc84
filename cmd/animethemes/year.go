package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/varoOP/go-animethemes/internal/app"
)

var yearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "List anime by year and season",
	Long: `Year lists the anime of one year grouped by airing season. Without an
argument it lists the years the API covers.

  animethemes year
  animethemes year 2009`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		if len(args) == 0 {
			years, err := application.Years(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "failed to list years")
			}
			return application.Renderer().Render(years)
		}

		year, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("invalid year %q", args[0])
		}

		res, err := application.Year(cmd.Context(), year)
		if err != nil {
			return errors.Wrapf(err, "failed to fetch year %d", year)
		}

		return application.Renderer().Render(res)
	},
}

func init() {
	rootCmd.AddCommand(yearCmd)
}
