package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var (
		maxResults int
		location   string
		radius     int
		placeType  string
		language   string
		region     string
		jsonOut    bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "search <QUERY>",
		Short: "Search for places with a text query",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mustChoice("output", output, "full", "keys")
			if location != "" {
				if _, _, err := parseLatLng(location); err != nil {
					fail(err)
				}
			}
			applyDefaults(cmd, &maxResults, &language, &region)

			places, err := newClient().TextSearch(maps.TextSearchParams{
				Query:      args[0],
				Location:   location,
				Radius:     radius,
				Type:       placeType,
				Language:   language,
				Region:     region,
				MaxResults: maxResults,
			})
			if err != nil {
				fail(err)
			}

			if jsonOut {
				raws := make([]json.RawMessage, 0, len(places))
				for _, p := range places {
					raws = append(raws, p.Raw)
				}
				if err := render.JSON(os.Stdout, raws); err != nil {
					fail(err)
				}
				return
			}
			if output == "keys" {
				render.Keys(os.Stdout, places)
				return
			}
			if len(places) == 0 {
				fmt.Println("No places found.")
				return
			}
			fmt.Printf("Found %d places:\n\n", len(places))
			render.Places(os.Stdout, places)
		},
	}

	cmd.Flags().IntVarP(&maxResults, "max", "m", 10, "Maximum number of results")
	cmd.Flags().StringVarP(&location, "location", "l", "", "Location bias (lat,lng)")
	cmd.Flags().IntVarP(&radius, "radius", "r", 0, "Radius in meters")
	cmd.Flags().StringVarP(&placeType, "type", "t", "", "Place type filter")
	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().StringVar(&region, "region", "", "Region code (ccTLD)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")
	cmd.Flags().StringVar(&output, "output", "full", "Output format: full or keys")

	return cmd
}
