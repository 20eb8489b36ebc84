package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/varoOP/go-animethemes/internal/app"
)

var animeCmd = &cobra.Command{
	Use:   "anime <slug>",
	Short: "Look up an anime by slug",
	Long: `Anime fetches a single anime by its slug, e.g.:

  animethemes anime bakemonogatari
  animethemes anime bakemonogatari --include themes,themes.song,synonyms`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		include, _ := cmd.Flags().GetStringSlice("include")

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		res, err := application.Anime(cmd.Context(), args[0], include)
		if err != nil {
			return errors.Wrapf(err, "failed to fetch anime %q", args[0])
		}

		return application.Renderer().Render(res)
	},
}

func init() {
	animeCmd.Flags().StringSlice("include", nil, "related resources to embed, e.g. themes, themes.song, synonyms, series")
	rootCmd.AddCommand(animeCmd)
}
