package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/msalah0e/gmaps/internal/account"
	"github.com/msalah0e/gmaps/internal/apierr"
	"github.com/msalah0e/gmaps/internal/config"
	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/state"
	"github.com/msalah0e/gmaps/internal/ui"
	"github.com/msalah0e/gmaps/internal/update"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// accountName is the persistent --account override; empty means the
// store's active credential.
var accountName string

var rootCmd = &cobra.Command{
	Use:   "gmaps",
	Short: "gmaps — Google Maps from your terminal",
	Long: ui.Brand.Sprint(ui.Pin+" gmaps") + " — search, geocode, and route from the command line\n" +
		ui.Subtle.Sprint("Places, Geocoding, Directions, Distance Matrix, Time Zone and Elevation"),
	Version: version + " " + ui.Pin,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !config.Load().UI.Color {
			ui.SetColor(false)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if os.Getenv("GMAPS_NO_UPDATE_CHECK") == "" {
			update.CheckForUpdate(version)
		}
	},
}

func init() {
	rootCmd.SetVersionTemplate("gmaps {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&accountName, "account", "", "Account to use for this invocation")

	rootCmd.AddCommand(
		initCmd(),
		accountsCmd(),
		useCmd(),
		meCmd(),
		searchCmd(),
		nearbyCmd(),
		placeCmd(),
		photoCmd(),
		autocompleteCmd(),
		geocodeCmd(),
		reverseCmd(),
		directionsCmd(),
		routeCmd(),
		distanceCmd(),
		timezoneCmd(),
		elevationCmd(),
		openCmd(),
		doctorCmd(),
		selfCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// fail prints err to stderr and exits with its mapped code. Result
// output stays on stdout so pipelines see only results.
func fail(err error) {
	fmt.Fprintln(os.Stderr, ui.Bad.Sprintf("  Error: %v", err))
	os.Exit(apierr.ExitCode(err))
}

// resolveCredential picks --account when given, else the active one.
func resolveCredential(store *account.Store) (account.Credential, error) {
	if accountName != "" {
		return store.Get(accountName)
	}
	return store.Active()
}

// newClient builds the API client for the resolved credential. Every
// API command goes through here, so no request is ever dispatched
// without one.
func newClient() *maps.Client {
	store := account.Open()
	cred, err := resolveCredential(store)
	if err != nil {
		fail(err)
	}
	_ = state.RecordUse(cred.Name)
	return clientFor(cred.Key)
}

// clientFor builds a client for a bare key, honoring the transport
// config and the GMAPS_BASE_URL override.
func clientFor(key string) *maps.Client {
	cfg := config.Load()
	opts := []maps.Option{
		maps.WithTimeout(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second),
		maps.WithRetry(cfg.HTTP.RetryTransient),
	}
	if base := os.Getenv("GMAPS_BASE_URL"); base != "" {
		opts = append(opts, maps.WithBaseURL(base))
	}
	return maps.New(key, opts...)
}

// parseLatLng validates a "lat,lng" argument.
func parseLatLng(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, apierr.New(apierr.InvalidArguments, "invalid coordinates %q, want lat,lng", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, apierr.New(apierr.InvalidArguments, "invalid coordinates %q, want lat,lng", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, apierr.New(apierr.InvalidArguments, "invalid coordinates %q, want lat,lng", s)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, apierr.New(apierr.InvalidArguments, "coordinates %q out of range", s)
	}
	return lat, lng, nil
}

// splitPipes splits a pipe-separated argument, trimming blanks.
func splitPipes(s string) []string {
	parts := strings.Split(s, "|")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// applyDefaults fills unset request flags from the config file. A nil
// pointer skips that flag.
func applyDefaults(cmd *cobra.Command, maxResults *int, language, region *string) {
	cfg := config.Load()
	if maxResults != nil && !cmd.Flags().Changed("max") && cfg.Defaults.MaxResults > 0 {
		*maxResults = cfg.Defaults.MaxResults
	}
	if language != nil && *language == "" {
		*language = cfg.Defaults.Language
	}
	if region != nil && *region == "" {
		*region = cfg.Defaults.Region
	}
}

// defaultUnits resolves the units flag against config, falling back to
// metric.
func defaultUnits(cmd *cobra.Command, units string) string {
	if cmd.Flags().Changed("units") {
		return units
	}
	cfg := config.Load()
	if cfg.Defaults.Units != "" {
		return cfg.Defaults.Units
	}
	return units
}

// mustChoice validates a flag value against its closed set. Empty means
// the flag was not given.
func mustChoice(flag, val string, allowed ...string) {
	if val == "" {
		return
	}
	for _, a := range allowed {
		if val == a {
			return
		}
	}
	fail(apierr.New(apierr.InvalidArguments, "invalid --%s %q (choose from %s)", flag, val, strings.Join(allowed, ", ")))
}
