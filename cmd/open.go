package cmd

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "open <LOCATION>",
		Short: "Open a location in Google Maps in the browser",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			target := mapsURL(args[0])
			fmt.Printf("Opening: %s\n", target)
			if printOnly {
				return
			}
			if err := openBrowser(target); err != nil {
				fmt.Println("Could not launch a browser, open the URL above manually.")
			}
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the URL without launching a browser")

	return cmd
}

// mapsURL builds the Google Maps URL for a location. Coordinates map
// straight to a pin, anything else becomes a search query.
func mapsURL(location string) string {
	if lat, lng, err := parseLatLng(location); err == nil {
		return "https://www.google.com/maps?q=" +
			strconv.FormatFloat(lat, 'f', -1, 64) + "," +
			strconv.FormatFloat(lng, 'f', -1, 64)
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(location)
}

func openBrowser(target string) error {
	var openCmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		openCmd = exec.Command("open", target)
	case "linux":
		openCmd = exec.Command("xdg-open", target)
	default:
		// Windows or other
		openCmd = exec.Command("cmd", "/c", "start", target)
	}
	return openCmd.Start()
}
