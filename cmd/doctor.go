package cmd

import (
	"fmt"
	"os"

	"github.com/msalah0e/gmaps/internal/account"
	"github.com/msalah0e/gmaps/internal/config"
	"github.com/msalah0e/gmaps/internal/parallel"
	"github.com/msalah0e/gmaps/internal/ui"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"dr"},
		Short:   "Health check — verify config, store, and API keys",
		Run: func(cmd *cobra.Command, args []string) {
			ui.Banner("health check")

			store := account.Open()
			checkStoreFile(store.Path())
			checkConfigFile()

			creds, err := store.List()
			if err != nil {
				fmt.Printf("  %s account store: %v\n", ui.StatusIcon(false), err)
				os.Exit(1)
			}
			if len(creds) == 0 {
				fmt.Printf("  %s no accounts configured\n", ui.WarnIcon())
				fmt.Println()
				fmt.Println("  Run `gmaps init` to add an API key.")
				return
			}

			fmt.Println()
			healthy := 0
			if skipVerify {
				for _, cred := range creds {
					fmt.Printf("  %s %s %s\n", ui.StatusIcon(true), cred.Name, ui.Subtle.Sprint(account.Mask(cred.Key)))
					healthy++
				}
			} else {
				tasks := make([]parallel.Task, 0, len(creds))
				for _, cred := range creds {
					key := cred.Key
					tasks = append(tasks, parallel.Task{
						Name: cred.Name,
						Fn: func() (string, error) {
							if err := verifyKey(key); err != nil {
								return "", err
							}
							return account.Mask(key), nil
						},
					})
				}
				for _, res := range parallel.Run(tasks, 4) {
					if res.OK {
						healthy++
					}
				}
			}

			fmt.Printf("\n  %d/%d keys healthy", healthy, len(creds))
			if warnings := len(creds) - healthy; warnings > 0 {
				fmt.Printf(" · %d warning(s)", warnings)
			}
			fmt.Println()
			if healthy < len(creds) {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "Skip live API key verification")

	return cmd
}

func checkStoreFile(path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("  %s store: %s %s\n", ui.Subtle.Sprint("-"), path, ui.Subtle.Sprint("(not created yet)"))
		return
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		fmt.Printf("  %s store: %s is group or world readable (%#o)\n", ui.WarnIcon(), path, perm)
		return
	}
	fmt.Printf("  %s store: %s\n", ui.StatusIcon(true), path)
}

func checkConfigFile() {
	path := config.Path()
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("  %s config: %s %s\n", ui.Subtle.Sprint("-"), path, ui.Subtle.Sprint("(using defaults)"))
		return
	}
	fmt.Printf("  %s config: %s\n", ui.StatusIcon(true), path)
}
