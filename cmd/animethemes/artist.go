package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/varoOP/go-animethemes/internal/app"
)

var artistCmd = &cobra.Command{
	Use:   "artist <slug>",
	Short: "Look up an artist by slug",
	Long: `Artist fetches a single artist by its slug, e.g.:

  animethemes artist supercell --include songs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		include, _ := cmd.Flags().GetStringSlice("include")

		application, err := app.NewApp()
		if err != nil {
			return err
		}
		defer application.Close()

		res, err := application.Artist(cmd.Context(), args[0], include)
		if err != nil {
			return errors.Wrapf(err, "failed to fetch artist %q", args[0])
		}

		return application.Renderer().Render(res)
	},
}

func init() {
	artistCmd.Flags().StringSlice("include", nil, "related resources to embed, e.g. songs, members, groups")
	rootCmd.AddCommand(artistCmd)
}
