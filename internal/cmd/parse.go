package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/bugform/internal/blocks"
)

// ParseCmd returns the `bugform parse` command.
func ParseCmd() *cobra.Command {
	var raw bool
	c := &cobra.Command{
		Use:   "parse <text>",
		Short: "Show how a blocks list is split into bug ids",
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			out := c.OutOrStdout()
			if raw {
				for _, tok := range blocks.Parse(text) {
					fmt.Fprintln(out, strconv.Quote(tok))
				}
				return nil
			}
			for _, id := range blocks.Identifiers(text) {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&raw, "raw", false, "print every token quoted, including empty ones")
	return c
}
