package cmd

import (
	"os"

	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func timezoneCmd() *cobra.Command {
	var (
		timestamp int64
		language  string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "timezone <LAT,LNG>",
		Short: "Time zone for coordinates",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			lat, lng, err := parseLatLng(args[0])
			if err != nil {
				fail(err)
			}
			applyDefaults(cmd, nil, &language, nil)

			tz, err := newClient().Timezone(maps.TimezoneParams{
				Lat:       lat,
				Lng:       lng,
				Timestamp: timestamp,
				Language:  language,
			})
			if err != nil {
				fail(err)
			}

			if jsonOut {
				if err := render.JSON(os.Stdout, tz.Raw); err != nil {
					fail(err)
				}
				return
			}
			render.Timezone(os.Stdout, tz)
		},
	}

	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "Unix timestamp (defaults to current time)")
	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")

	return cmd
}
