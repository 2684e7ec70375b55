package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func nearbyCmd() *cobra.Command {
	var (
		location   string
		radius     int
		placeType  string
		keyword    string
		maxResults int
		minPrice   string
		maxPrice   string
		openNow    bool
		rankBy     string
		language   string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "Find places around a point",
		Run: func(cmd *cobra.Command, args []string) {
			if _, _, err := parseLatLng(location); err != nil {
				fail(err)
			}
			mustChoice("rank-by", rankBy, "prominence", "distance")
			mustChoice("min-price", minPrice, "0", "1", "2", "3", "4")
			mustChoice("max-price", maxPrice, "0", "1", "2", "3", "4")
			applyDefaults(cmd, &maxResults, &language, nil)

			places, err := newClient().NearbySearch(maps.NearbySearchParams{
				Location:   location,
				Radius:     radius,
				Type:       placeType,
				Keyword:    keyword,
				Language:   language,
				MinPrice:   minPrice,
				MaxPrice:   maxPrice,
				OpenNow:    openNow,
				RankBy:     rankBy,
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
			if len(places) == 0 {
				fmt.Println("No places found nearby.")
				return
			}
			fmt.Printf("Found %d places nearby:\n\n", len(places))
			render.Places(os.Stdout, places)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Center point (lat,lng)")
	cmd.Flags().IntVarP(&radius, "radius", "r", 1000, "Radius in meters")
	cmd.Flags().StringVarP(&placeType, "type", "t", "", "Place type filter")
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Keyword filter")
	cmd.Flags().IntVarP(&maxResults, "max", "m", 10, "Maximum number of results")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "Minimum price level (0-4)")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "Maximum price level (0-4)")
	cmd.Flags().BoolVar(&openNow, "open-now", false, "Only show places open now")
	cmd.Flags().StringVar(&rankBy, "rank-by", "", "Ranking: prominence or distance")
	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}
