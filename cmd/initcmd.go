package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/msalah0e/gmaps/internal/account"
	"github.com/msalah0e/gmaps/internal/apierr"
	"github.com/msalah0e/gmaps/internal/config"
	"github.com/msalah0e/gmaps/internal/maps"
	"github.com/msalah0e/gmaps/internal/ui"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var (
		key      string
		name     string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up a Google Maps API key",
		Long: "Store a Google Maps Platform API key under an account name.\n" +
			"The first account added becomes the active one.",
		Run: func(cmd *cobra.Command, args []string) {
			ui.Banner("API key setup")
			_ = config.EnsureExists()

			if key == "" {
				fmt.Printf("  Enter your Google Maps API key: ")
				reader := bufio.NewReader(os.Stdin)
				line, _ := reader.ReadString('\n')
				key = strings.TrimSpace(line)
			}
			if key == "" {
				fail(apierr.New(apierr.InvalidArguments, "no API key given"))
			}

			store := account.Open()
			if err := store.Add(name, key); err != nil {
				fail(err)
			}
			ui.Good.Printf("  %s Account %s added\n", ui.StatusIcon(true), ui.Brand.Sprint(name))

			if cred, err := store.Get(name); err == nil && cred.Active {
				fmt.Println("  Now the active account")
			}

			if noVerify {
				return
			}
			if err := verifyKey(key); err != nil {
				ui.Warn.Printf("  %s Key saved but verification failed: %v\n", ui.WarnIcon(), err)
				fmt.Println("  Make sure the key has the required APIs enabled.")
				return
			}
			ui.Good.Printf("  %s API key verified\n", ui.StatusIcon(true))
			fmt.Println()
			fmt.Println("  Try: gmaps search \"coffee near me\"")
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "API key (prompted for when omitted)")
	cmd.Flags().StringVar(&name, "name", "default", "Account name to store the key under")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip the live verification request")

	return cmd
}

// verifyKey runs one cheap geocode to prove the key works.
func verifyKey(key string) error {
	results, err := clientFor(key).Geocode(maps.GeocodeParams{Address: "New York"})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return apierr.New(apierr.Remote, "verification query returned no results")
	}
	return nil
}
