package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gravitrone/bugform/internal/config"
)

const loginHealthTimeout = 5 * time.Second

// RunInteractiveLogin prompts for the server and API key, checks the server
// answers, and persists config. An unreachable server is reported but does
// not stop the config being saved.
func RunInteractiveLogin(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	cfg, err := config.LoadOrDefault()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	fmt.Fprintf(out, "server url [%s]: ", cfg.ServerURL)
	server, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read server url: %w", err)
	}
	if server = strings.TrimSpace(server); server != "" {
		cfg.ServerURL = strings.TrimSuffix(server, "/")
	}

	fmt.Fprint(out, "api key (optional): ")
	apiKey, err := readSecretLine(reader, in, out)
	if err != nil {
		return fmt.Errorf("read api key: %w", err)
	}
	if apiKey = strings.TrimSpace(apiKey); apiKey != "" {
		cfg.APIKey = apiKey
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	checkCtx, cancel := context.WithTimeout(ctx, loginHealthTimeout)
	defer cancel()
	status, err := NewClient(cfg, cfg.ServerURL).Health(checkCtx)
	if err != nil {
		fmt.Fprintf(out, "warning: %s did not answer: %v\n", cfg.ServerURL, err)
	} else {
		fmt.Fprintf(out, "server %s: %s\n", cfg.ServerURL, status)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// readSecretLine reads one line, with echo disabled when in is a terminal.
func readSecretLine(reader *bufio.Reader, in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		return string(b), err
	}
	line, err := reader.ReadString('\n')
	if err == io.EOF {
		err = nil
	}
	return line, err
}

// LoginCmd returns the `bugform login` command.
func LoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Point bugform at a bug tracker",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return RunInteractiveLogin(c.Context(), os.Stdin, c.OutOrStdout())
		},
	}
}
