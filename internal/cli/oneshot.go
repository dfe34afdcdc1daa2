package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/items/internal/api"
	"github.com/idilsaglam/items/internal/ui"
)

// One-shot subcommands for scripting. Each performs a single remote call and
// prints a short confirmation; the interactive view is the main surface.

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			items, err := client.List(context.Background())
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}

			t := ui.Current()
			header := fmt.Sprintf("%s  %s %d",
				ui.C(t.Title, "Items"),
				ui.C(t.Accent, "Total"), len(items),
			)
			lines := []string{header, ""}
			if len(items) == 0 {
				lines = append(lines, ui.C(t.Muted, "no items"))
			}
			for i, it := range items {
				idx := fmt.Sprintf("%2d.", i+1)
				name := it.Name
				if len(name) > 80 {
					name = name[:77] + "..."
				}
				lines = append(lines, fmt.Sprintf("%s %s %s",
					ui.C(t.Muted, idx), name,
					ui.C(t.Muted, it.CreatedAt.Format("2006-01-02"))))
			}
			lines = append(lines, "", ui.C(t.Muted, "Tip: add with `items add \"Buy milk\"`"))
			ui.Panel(lines)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a new item (name can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return fmt.Errorf("add: empty name")
			}
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			it, err := client.Create(context.Background(), name)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			ui.OK(fmt.Sprintf("added #%d", it.ID))
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove the item with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("rm: not an id: %s", args[0])
			}
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			if err := client.Delete(context.Background(), id); err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			ui.OK("removed")
			return nil
		},
	}
}

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name...>",
		Short: "Rename the item with the given id",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("rename: not an id: %s", args[0])
			}
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				return fmt.Errorf("rename: empty name")
			}
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			it, err := client.Update(context.Background(), id, name)
			if err != nil {
				return fmt.Errorf("rename: %w", err)
			}
			ui.OK(fmt.Sprintf("renamed #%d to %q", it.ID, it.Name))
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Store a bearer token for the item service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.SetToken(args[0], nil); err != nil {
				return fmt.Errorf("login: %w", err)
			}
			ui.OK("logged in")
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.DeleteToken(); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			ui.OK("logged out")
			return nil
		},
	}
}
