package cmd

import (
	"fmt"
	"os"

	"github.com/msalah0e/gmaps/internal/apierr"
	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/render"
	"github.com/spf13/cobra"
)

func distanceCmd() *cobra.Command {
	var (
		mode         string
		units        string
		language     string
		avoid        string
		departAt     string
		trafficModel string
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:   "distance <ORIGINS> <DESTINATIONS>",
		Short: "Distance matrix between origins and destinations",
		Long:  "Calculates travel distance and time for every origin/destination pairing.\nSeparate multiple origins or destinations with a pipe.",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			mustChoice("mode", mode, "driving", "walking", "bicycling", "transit")
			mustChoice("units", units, "metric", "imperial")
			mustChoice("avoid", avoid, "tolls", "highways", "ferries", "indoor")
			mustChoice("traffic-model", trafficModel, "best_guess", "pessimistic", "optimistic")
			applyDefaults(cmd, nil, &language, nil)
			units = defaultUnits(cmd, units)

			origins, destinations := splitPipes(args[0]), splitPipes(args[1])
			if len(origins) == 0 || len(destinations) == 0 {
				fail(apierr.New(apierr.InvalidArguments, "origins and destinations cannot be empty"))
			}

			matrix, err := newClient().DistanceMatrix(maps.DistanceMatrixParams{
				Origins:       origins,
				Destinations:  destinations,
				Mode:          mode,
				Units:         units,
				Language:      language,
				Avoid:         avoid,
				DepartureTime: departAt,
				TrafficModel:  trafficModel,
			})
			if err != nil {
				fail(err)
			}

			if jsonOut {
				if err := render.JSON(os.Stdout, matrix.Raw); err != nil {
					fail(err)
				}
				return
			}
			if len(matrix.Rows) == 0 {
				fmt.Println("No results found.")
				return
			}
			render.Matrix(os.Stdout, matrix)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "driving", "Travel mode: driving, walking, bicycling, transit")
	cmd.Flags().StringVar(&units, "units", "metric", "Units: metric or imperial")
	cmd.Flags().StringVar(&language, "language", "", "Language code")
	cmd.Flags().StringVar(&avoid, "avoid", "", "Avoid route features: tolls, highways, ferries, indoor")
	cmd.Flags().StringVar(&departAt, "depart-at", "", "Departure time (unix timestamp or now)")
	cmd.Flags().StringVar(&trafficModel, "traffic-model", "", "Traffic model: best_guess, pessimistic, optimistic")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output raw JSON")

	return cmd
}
