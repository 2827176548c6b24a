package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gravitrone/bugform/internal/cmd"
	"github.com/gravitrone/bugform/internal/config"
	"github.com/gravitrone/bugform/internal/logging"
	"github.com/gravitrone/bugform/internal/ui"
)

type rootOptions struct {
	server string
	blocks string
	debug  bool
}

var errNotInteractive = errors.New("bugform needs an interactive terminal; try 'bugform show' instead")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "bugform",
		Short: "bugform - file bugs from the terminal",
		Long:  "bugform opens a new-bug form. Listing blocking bugs adds sync buttons that copy their product, component and version.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts, os.Stdin, os.Stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&opts.server, "server", "", "bug tracker URL (overrides config and "+config.EnvServer+")")
	root.Flags().StringVar(&opts.blocks, "blocks", "", "initial blocks list, e.g. \"1234, 1240\"")
	root.Flags().BoolVar(&opts.debug, "debug", false, "write debug logs")

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.ShowCmd())
	root.AddCommand(cmd.ParseCmd())
	return root
}

func runTUI(opts *rootOptions, stdin, stdout *os.File) error {
	if !isInteractiveTerminal(stdin) || !isInteractiveTerminal(stdout) {
		return errNotInteractive
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.ResolvedLogPath(), opts.debug || logging.DebugFromEnv())
	if err != nil {
		return err
	}
	defer logFile.Close()

	client := cmd.NewClient(cfg, opts.server)
	logging.L().Info().Str("server", client.BaseURL()).Msg("starting form")

	app := ui.NewApp(client, cfg, opts.blocks)
	app.OnSubmit(ui.LogSubmitHook)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithInput(stdin), tea.WithOutput(stdout))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
