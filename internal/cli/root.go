package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/items/internal/api"
	"github.com/idilsaglam/items/internal/config"
	"github.com/idilsaglam/items/internal/tui"
	"github.com/idilsaglam/items/internal/ui"
)

func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		ui.Fail(err.Error())
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "items",
		Short: "Terminal client for a remote item list",
		Long: `items keeps a named-record list on a remote service and lets you
browse and change it from the terminal. Run without arguments for the
interactive view; use the subcommands for one-shot operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(client), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringP("server", "s", "", "Base URL of the item service (default from config)")
	root.PersistentFlags().String("timeout", "", "Request timeout, e.g. 5s (default from config)")
	root.PersistentFlags().String("theme", "", "Output theme: classic, neon or mono")

	root.AddCommand(newLsCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRmCmd())
	root.AddCommand(newRenameCmd())
	root.AddCommand(newLoginCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newServeCmd())
	return root
}

// clientFromFlags resolves config file + flags into a ready API client.
func clientFromFlags(cmd *cobra.Command) (*api.Client, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}
	if s := mustGetStringFlag(cmd, "server"); s != "" {
		cfg.Server = s
	}
	if t := mustGetStringFlag(cmd, "timeout"); t != "" {
		if _, err := time.ParseDuration(t); err != nil {
			return nil, fmt.Errorf("bad --timeout: %w", err)
		}
		cfg.Timeout = t
	}
	if th := mustGetStringFlag(cmd, "theme"); th != "" {
		cfg.Theme = th
	}
	ui.SetTheme(cfg.Theme)

	client := api.New(cfg.Server, cfg.RequestTimeout())
	tok, err := api.GetToken()
	if err != nil {
		return nil, err
	}
	if tok != nil {
		client.SetToken(tok.Token)
	}
	return client, nil
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag %s: %v", name, err))
	}
	return v
}
