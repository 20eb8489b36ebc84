package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/varoOP/go-animethemes/internal/app"
)

var themeCmd = &cobra.Command{
	Use:   "theme <id>",
	Short: "Look up a theme by id",
	Long: `Theme fetches a single opening or ending theme by its numeric id, e.g.:

  animethemes theme 63 --include anime,song,song.artists`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		include, _ := cmd.Flags().GetStringSlice("include")

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		res, err := application.Theme(cmd.Context(), args[0], include)
		if err != nil {
			return errors.Wrapf(err, "failed to fetch theme %q", args[0])
		}

		return application.Renderer().Render(res)
	},
}

func init() {
	themeCmd.Flags().StringSlice("include", nil, "related resources to embed, e.g. anime, song, song.artists, entries")
	rootCmd.AddCommand(themeCmd)
}
