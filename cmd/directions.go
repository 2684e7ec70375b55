package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func directionsCmd() *cobra.Command {
	var (
		mode          string
		waypoints     string
		alternatives  bool
		avoid         string
		language      string
		units         string
		region        string
		departAt      string
		arriveBy      string
		transitMode   string
		transitPrefer string
		jsonOut       bool
	)

	cmd := &cobra.Command{
		Use:   "directions <ORIGIN> <DESTINATION>",
		Short: "Get turn-by-turn directions",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			mustChoice("mode", mode, "driving", "walking", "bicycling", "transit")
			mustChoice("avoid", avoid, "tolls", "highways", "ferries", "indoor")
			mustChoice("units", units, "metric", "imperial")
			mustChoice("transit-mode", transitMode, "bus", "subway", "train", "tram", "rail")
			mustChoice("transit-routing", transitPrefer, "less_walking", "fewer_transfers")
			applyDefaults(cmd, nil, &language, &region)
			units = defaultUnits(cmd, units)

			routes, err := newClient().Directions(maps.DirectionsParams{
				Origin:                   args[0],
				Destination:              args[1],
				Mode:                     mode,
				Waypoints:                splitPipes(waypoints),
				Alternatives:             alternatives,
				Avoid:                    avoid,
				Language:                 language,
				Units:                    units,
				Region:                   region,
				DepartureTime:            departAt,
				ArrivalTime:              arriveBy,
				TransitMode:              transitMode,
				TransitRoutingPreference: transitPrefer,
			})
			if err != nil {
				fail(err)
			}

			if jsonOut {
				raws := make([]json.RawMessage, 0, len(routes))
				for _, r := range routes {
					raws = append(raws, r.Raw)
				}
				if err := render.JSON(os.Stdout, raws); err != nil {
					fail(err)
				}
				return
			}
			if len(routes) == 0 {
				fmt.Println("No routes found.")
				return
			}
			render.Routes(os.Stdout, routes)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "driving", "Travel mode: driving, walking, bicycling, transit")
	cmd.Flags().StringVar(&waypoints, "waypoints", "", "Intermediate stops, pipe-separated")
	cmd.Flags().BoolVar(&alternatives, "alternatives", false, "Return alternative routes")
	cmd.Flags().StringVar(&avoid, "avoid", "", "Avoid route features: tolls, highways, ferries, indoor")
	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().StringVar(&units, "units", "metric", "Units: metric or imperial")
	cmd.Flags().StringVar(&region, "region", "", "Region bias (ccTLD)")
	cmd.Flags().StringVar(&departAt, "depart-at", "", "Departure time (unix timestamp or now)")
	cmd.Flags().StringVar(&arriveBy, "arrive-by", "", "Arrival time (unix timestamp)")
	cmd.Flags().StringVar(&transitMode, "transit-mode", "", "Preferred transit vehicle")
	cmd.Flags().StringVar(&transitPrefer, "transit-routing", "", "Transit preference: less_walking or fewer_transfers")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")

	return cmd
}

func routeCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "route <ORIGIN> <DESTINATION>",
		Short: "One-glance route summary",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			mustChoice("mode", mode, "driving", "walking", "bicycling", "transit")

			routes, err := newClient().Directions(maps.DirectionsParams{
				Origin:      args[0],
				Destination: args[1],
				Mode:        mode,
			})
			if err != nil {
				fail(err)
			}
			if len(routes) == 0 {
				fmt.Println("No route found.")
				return
			}
			render.RouteSummary(os.Stdout, routes[0], mode)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "driving", "Travel mode: driving, walking, bicycling, transit")

	return cmd
}
