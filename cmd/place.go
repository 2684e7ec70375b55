package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func placeCmd() *cobra.Command {
	var (
		fields   string
		language string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "place <PLACE_ID>",
		Short: "Show details for a place",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			placeID := args[0]
			applyDefaults(cmd, nil, &language, nil)

			var fieldList []string
			if fields != "" {
				for _, f := range strings.Split(fields, ",") {
					if f = strings.TrimSpace(f); f != "" {
						fieldList = append(fieldList, f)
					}
				}
			}

			details, err := newClient().PlaceDetails(maps.PlaceDetailsParams{
				PlaceID:  placeID,
				Fields:   fieldList,
				Language: language,
			})
			if err != nil {
				fail(err)
			}

			if len(details.Raw) == 0 {
				fmt.Println("Place not found.")
				return
			}
			if jsonOut {
				if err := render.JSON(os.Stdout, details.Raw); err != nil {
					fail(err)
				}
				return
			}
			render.PlaceDetail(os.Stdout, details, placeID)
		},
	}

	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated field mask")
	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")

	return cmd
}

func photoCmd() *cobra.Command {
	var (
		maxWidth  int
		maxHeight int
	)

	cmd := &cobra.Command{
		Use:   "photo <PHOTO_REFERENCE>",
		Short: "Print the URL for a place photo",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(newClient().PhotoURL(args[0], maxWidth, maxHeight))
		},
	}

	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "Maximum image width in pixels (400 when neither dimension is given)")
	cmd.Flags().IntVar(&maxHeight, "max-height", 0, "Maximum image height in pixels")

	return cmd
}
