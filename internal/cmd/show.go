package cmd

import (
	"context"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/blocks"
	"github.com/gravitrone/bugform/internal/blocksync"
	"github.com/gravitrone/bugform/internal/config"
)

type shownBug struct {
	ID        string `json:"id"`
	Product   string `json:"product"`
	Component string `json:"component"`
	Version   string `json:"version"`
}

// RunShow looks up ids and prints the labels the form would show after
// syncing from each of them.
func RunShow(ctx context.Context, client *api.Client, ids []string, asJSON bool, out io.Writer) error {
	bugs, err := client.GetBugs(ctx, ids)
	if err != nil {
		return err
	}

	shown := make([]shownBug, 0, len(bugs))
	for i, bug := range bugs {
		t := blocksync.NewTriple()
		t.ApplyBugInfo(bug.Product, bug.Component, bug.Version)
		shown = append(shown, shownBug{
			ID:        ids[i],
			Product:   t.Product.Label,
			Component: t.Component.Label,
			Version:   t.Version.Label,
		})
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(shown)
	}
	for _, b := range shown {
		fmt.Fprintf(out, "bug %s\n", b.ID)
		fmt.Fprintf(out, "  product:   %s\n", b.Product)
		fmt.Fprintf(out, "  component: %s\n", b.Component)
		fmt.Fprintf(out, "  version:   %s\n", b.Version)
	}
	return nil
}

// ShowCmd returns the `bugform show` command.
func ShowCmd() *cobra.Command {
	var (
		server string
		asJSON bool
	)
	c := &cobra.Command{
		Use:   "show <id>...",
		Short: "Print product, component and version of blocking bugs",
		Long: "Looks up each bug and prints the values a sync would copy into the form.\n" +
			"Identifiers may be given as separate arguments or as one blocks list, e.g. \"10, 20\".",
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var ids []string
			for _, arg := range args {
				ids = append(ids, blocks.Identifiers(arg)...)
			}
			if len(ids) == 0 {
				return fmt.Errorf("no bug ids given")
			}

			cfg, err := config.LoadOrDefault()
			if err != nil {
				return err
			}
			return RunShow(c.Context(), NewClient(cfg, server), ids, asJSON, c.OutOrStdout())
		},
	}
	c.Flags().StringVar(&server, "server", "", "bug tracker URL (overrides config)")
	c.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return c
}
