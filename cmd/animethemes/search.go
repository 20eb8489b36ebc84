package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/varoOP/go-animethemes/internal/app"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search across all resource types",
	Long: `Search returns anime, themes, artists, songs and series matching the
query, e.g.:

  animethemes search Bakemonogatari
  animethemes search "cruel angel" --limit 3 --fields anime,themes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		fields, _ := cmd.Flags().GetStringSlice("fields")

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		res, err := application.Search(cmd.Context(), args[0], limit, fields)
		if err != nil {
			return errors.Wrap(err, "search failed")
		}

		return application.Renderer().Render(res)
	},
}

func init() {
	searchCmd.Flags().Int("limit", 0, "matches per resource type (1-5)")
	searchCmd.Flags().StringSlice("fields", nil, "resource types to search: anime, artists, themes, songs, series, videos")
	rootCmd.AddCommand(searchCmd)
}
