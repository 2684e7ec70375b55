package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msalah0e/gmaps/internal/apierr"
	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func elevationCmd() *cobra.Command {
	var (
		samples int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "elevation <LOCATIONS>",
		Short: "Elevation for one or more points",
		Long:  "Looks up elevation above sea level. Separate multiple lat,lng points\nwith a pipe; add --samples to interpolate along the path between them.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			locations := splitPipes(args[0])
			if len(locations) == 0 {
				fail(apierr.New(apierr.InvalidArguments, "no locations given"))
			}
			for _, loc := range locations {
				if _, _, err := parseLatLng(loc); err != nil {
					fail(err)
				}
			}

			results, err := newClient().Elevation(maps.ElevationParams{
				Locations: locations,
				Samples:   samples,
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
				fmt.Println("No elevation data found.")
				return
			}
			fmt.Printf("Elevation Data (%d points):\n\n", len(results))
			render.Elevations(os.Stdout, results)
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 0, "Sample count along the path")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")

	return cmd
}
