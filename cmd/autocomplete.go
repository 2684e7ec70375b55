package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func autocompleteCmd() *cobra.Command {
	var (
		location string
		radius   int
		types    string
		language string
		region   string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "autocomplete <INPUT>",
		Short: "Suggest place completions for partial input",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if location != "" {
				if _, _, err := parseLatLng(location); err != nil {
					fail(err)
				}
			}
			applyDefaults(cmd, nil, &language, &region)

			preds, err := newClient().Autocomplete(maps.AutocompleteParams{
				Input:    args[0],
				Location: location,
				Radius:   radius,
				Types:    types,
				Language: language,
				Region:   region,
			})
			if err != nil {
				fail(err)
			}

			if jsonOut {
				raws := make([]json.RawMessage, 0, len(preds))
				for _, p := range preds {
					raws = append(raws, p.Raw)
				}
				if err := render.JSON(os.Stdout, raws); err != nil {
					fail(err)
				}
				return
			}
			if len(preds) == 0 {
				fmt.Println("No suggestions found.")
				return
			}
			fmt.Printf("Found %d suggestions:\n\n", len(preds))
			render.Predictions(os.Stdout, preds)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Bias point (lat,lng)")
	cmd.Flags().IntVarP(&radius, "radius", "r", 0, "Bias radius in meters")
	cmd.Flags().StringVarP(&types, "types", "t", "", "Prediction type filter")
	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().StringVar(&region, "region", "", "Region bias (ccTLD)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")

	return cmd
}
