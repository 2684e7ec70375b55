package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func geocodeCmd() *cobra.Command {
	var (
		language   string
		region     string
		components string
		bounds     string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "geocode <ADDRESS>",
		Short: "Convert an address to coordinates",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			applyDefaults(cmd, nil, &language, &region)

			results, err := newClient().Geocode(maps.GeocodeParams{
				Address:    args[0],
				Language:   language,
				Region:     region,
				Components: components,
				Bounds:     bounds,
			})
			if err != nil {
				fail(err)
			}

			if jsonOut {
				raws := make([]json.RawMessage, 0, len(results))
				for _, r := range results {
					raws = append(raws, r.Raw)
				}
				if err := render.JSON(os.Stdout, raws); err != nil {
					fail(err)
				}
				return
			}
			if len(results) == 0 {
				fmt.Println("Address not found.")
				return
			}
			render.GeocodeResults(os.Stdout, results)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().StringVar(&region, "region", "", "Region bias (ccTLD)")
	cmd.Flags().StringVar(&components, "components", "", "Component filter, e.g. country:DE|postal_code:10115")
	cmd.Flags().StringVar(&bounds, "bounds", "", "Viewport bias (south,west|north,east)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")

	return cmd
}

func reverseCmd() *cobra.Command {
	var (
		language     string
		resultType   string
		locationType string
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:   "reverse <LAT,LNG>",
		Short: "Convert coordinates to an address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			lat, lng, err := parseLatLng(args[0])
			if err != nil {
				fail(err)
			}
			applyDefaults(cmd, nil, &language, nil)

			results, err := newClient().ReverseGeocode(maps.ReverseGeocodeParams{
				Lat:          lat,
				Lng:          lng,
				Language:     language,
				ResultType:   resultType,
				LocationType: locationType,
			})
			if err != nil {
				fail(err)
			}

			if jsonOut {
				raws := make([]json.RawMessage, 0, len(results))
				for _, r := range results {
					raws = append(raws, r.Raw)
				}
				if err := render.JSON(os.Stdout, raws); err != nil {
					fail(err)
				}
				return
			}
			if len(results) == 0 {
				fmt.Println("No address found for coordinates.")
				return
			}
			render.ReverseResults(os.Stdout, results)
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().StringVar(&resultType, "result-type", "", "Filter by result type, e.g. street_address")
	cmd.Flags().StringVar(&locationType, "location-type", "", "Filter by location type, e.g. ROOFTOP")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")

	return cmd
}
