package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/msalah0e/gmaps/internal/account"
	"github.com/msalah0e/gmaps/internal/apierr"
	"github.com/msalah0e/gmaps/internal/state"
	"github.com/msalah0e/gmaps/internal/ui"
	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and manage stored accounts",
		Run: func(cmd *cobra.Command, args []string) {
			listAccounts()
		},
	}

	accountsCmd.AddCommand(
		accountsAddCmd(),
		accountsRmCmd(),
	)

	return accountsCmd
}

func listAccounts() {
	store := account.Open()

	ui.Banner("configured accounts")

	creds, err := store.List()
	if err != nil {
		fail(err)
	}
	if len(creds) == 0 {
		fmt.Println("  No accounts configured.")
		fmt.Println("  Run `gmaps init` to add one")
		return
	}

	rows := make([][]string, 0, len(creds))
	active := ""
	for _, c := range creds {
		marker := ""
		if c.Active {
			marker = "*"
			active = c.Name
		}
		requests, lastUsed := "0", "never"
		if u, ok := state.UsageFor(c.Name); ok {
			requests = fmt.Sprintf("%d", u.Requests)
			lastUsed = u.LastUsed.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{marker, c.Name, account.Mask(c.Key), requests, lastUsed})
	}
	ui.Table([]string{"", "NAME", "KEY", "REQUESTS", "LAST USED"}, rows)

	fmt.Printf("\n  %d accounts", len(creds))
	if active != "" {
		fmt.Printf(" · active: %s", active)
	}
	fmt.Println()
}

func accountsAddCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "add <NAME>",
		Short: "Store an API key under a new account name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[0]

			if key == "" {
				fmt.Printf("  Enter API key for %s: ", ui.Brand.Sprint(name))
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

			ui.Good.Printf("  %s %s added\n", ui.StatusIcon(true), name)
			if cred, err := store.Get(name); err == nil && cred.Active {
				fmt.Println("  Now the active account")
			} else {
				fmt.Printf("  Run `gmaps use %s` to switch to it\n", name)
			}
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "API key (prompted for when omitted)")

	return cmd
}

func accountsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <NAME>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a stored account",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[0]
			store := account.Open()

			cred, err := store.Get(name)
			if err != nil {
				fail(err)
			}
			if err := store.Remove(name); err != nil {
				fail(err)
			}
			_ = state.Forget(name)

			ui.Good.Printf("  %s %s removed\n", ui.StatusIcon(true), name)
			if cred.Active {
				fmt.Println("  That was the active account — run `gmaps use <name>` to pick another")
			}
		},
	}
}

func useCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <NAME>",
		Short: "Switch the active account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store := account.Open()

			if err := store.Use(args[0]); err != nil {
				if creds, lerr := store.List(); lerr == nil && len(creds) > 0 {
					names := make([]string, len(creds))
					for i, c := range creds {
						names[i] = c.Name
					}
					fmt.Fprintln(os.Stderr, ui.Subtle.Sprintf("  Available accounts: %s", strings.Join(names, ", ")))
				}
				fail(err)
			}

			ui.Good.Printf("  %s Active account: %s\n", ui.StatusIcon(true), ui.Brand.Sprint(args[0]))
		},
	}
}

func meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the account requests will be signed with",
		Run: func(cmd *cobra.Command, args []string) {
			store := account.Open()
			cred, err := resolveCredential(store)
			if err != nil {
				fail(err)
			}

			ui.Banner("active account")
			fmt.Printf("  Account: %s\n", ui.Brand.Sprint(cred.Name))
			fmt.Printf("  Key: %s\n", ui.Subtle.Sprint(account.Mask(cred.Key)))
			fmt.Printf("  Store: %s\n", store.Path())
			if u, ok := state.UsageFor(cred.Name); ok {
				fmt.Printf("  Requests: %d\n", u.Requests)
				fmt.Printf("  Last used: %s\n", u.LastUsed.Format("2006-01-02 15:04"))
			}
		},
	}
}
