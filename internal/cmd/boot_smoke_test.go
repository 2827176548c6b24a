package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/config"
)

func withHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvServer, "")
}

func bugServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			w.Write([]byte(`{"status":"ok"}`))
		case "/api/bug/10.json":
			w.Write([]byte(`{"product":"Firefox","component":"UI","version":"1.0"}`))
		case "/api/bug/20.json":
			w.Write([]byte(`{"product":"Core","component":null}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"no such bug"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginSavesServerAndKey(t *testing.T) {
	withHome(t)
	srv := bugServer(t)

	var out bytes.Buffer
	in := strings.NewReader(srv.URL + "/\nbf_secret\n")
	require.NoError(t, RunInteractiveLogin(context.Background(), in, &out))

	assert.Contains(t, out.String(), "server "+srv.URL+": ok")
	assert.Contains(t, out.String(), "config saved to")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, srv.URL, cfg.ServerURL)
	assert.Equal(t, "bf_secret", cfg.APIKey)
}

func TestLoginKeepsDefaultsOnEmptyInput(t *testing.T) {
	withHome(t)

	var out bytes.Buffer
	require.NoError(t, RunInteractiveLogin(context.Background(), strings.NewReader("\n\n"), &out))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().ServerURL, cfg.ServerURL)
	assert.Empty(t, cfg.APIKey)
}

func TestLoginWarnsWhenServerDown(t *testing.T) {
	withHome(t)

	var out bytes.Buffer
	in := strings.NewReader("http://127.0.0.1:1\n\n")
	require.NoError(t, RunInteractiveLogin(context.Background(), in, &out))
	assert.Contains(t, out.String(), "warning: http://127.0.0.1:1 did not answer")

	_, err := os.Stat(config.Path())
	assert.NoError(t, err)
}

func TestLoginRejectsBadURL(t *testing.T) {
	withHome(t)

	err := RunInteractiveLogin(context.Background(), strings.NewReader("bugs.example.org\n\n"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server_url")
}

func TestLoginFailsWhenServerPromptUnreadable(t *testing.T) {
	withHome(t)
	readErr := errors.New("stdin closed")

	err := RunInteractiveLogin(context.Background(), iotest.ErrReader(readErr), &bytes.Buffer{})
	require.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "read server url")
	_, statErr := os.Stat(config.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoginCmdRejectsArgs(t *testing.T) {
	c := LoginCmd()
	c.SetArgs([]string{"extra"})
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	assert.Error(t, c.Execute())
}

func TestRunShowPrintsLabelsAndPlaceholders(t *testing.T) {
	srv := bugServer(t)
	client := api.NewClient(srv.URL, "")

	var out bytes.Buffer
	require.NoError(t, RunShow(context.Background(), client, []string{"10", "20"}, false, &out))

	text := out.String()
	assert.Contains(t, text, "bug 10\n  product:   Firefox\n  component: UI\n  version:   1.0\n")
	assert.Contains(t, text, "bug 20\n  product:   Core\n  component: Undef\n  version:   unspecified\n")
}

func TestRunShowJSON(t *testing.T) {
	srv := bugServer(t)
	client := api.NewClient(srv.URL, "")

	var out bytes.Buffer
	require.NoError(t, RunShow(context.Background(), client, []string{"20"}, true, &out))
	assert.JSONEq(t, `[{"id":"20","product":"Core","component":"Undef","version":"unspecified"}]`, out.String())
}

func TestShowCmdUsesServerFlagAndBlocksSyntax(t *testing.T) {
	withHome(t)
	srv := bugServer(t)

	var out bytes.Buffer
	c := ShowCmd()
	c.SetArgs([]string{"--server", srv.URL, "10,20"})
	c.SetOut(&out)
	require.NoError(t, c.Execute())

	assert.Contains(t, out.String(), "bug 10")
	assert.Contains(t, out.String(), "bug 20")
}

func TestShowCmdReportsMissingBug(t *testing.T) {
	withHome(t)
	srv := bugServer(t)

	c := ShowCmd()
	c.SetArgs([]string{"--server", srv.URL, "404"})
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	err := c.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such bug")
}

func TestShowCmdRejectsOnlyDelimiters(t *testing.T) {
	withHome(t)

	c := ShowCmd()
	c.SetArgs([]string{" , "})
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})
	err := c.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bug ids")
}

func TestParseCmd(t *testing.T) {
	var out bytes.Buffer
	c := ParseCmd()
	c.SetArgs([]string{"10,, 20", "30"})
	c.SetOut(&out)
	require.NoError(t, c.Execute())
	assert.Equal(t, "10\n20\n30\n", out.String())
}

func TestParseCmdRawShowsEmptyTokens(t *testing.T) {
	var out bytes.Buffer
	c := ParseCmd()
	c.SetArgs([]string{"--raw", ",10,"})
	c.SetOut(&out)
	require.NoError(t, c.Execute())
	assert.Equal(t, "\"\"\n\"10\"\n\"\"\n", out.String())
}

func TestNewClientPrefersExplicitServer(t *testing.T) {
	t.Setenv(config.EnvServer, "http://env.example.org")
	cfg := config.DefaultConfig()

	assert.Equal(t, "http://env.example.org", NewClient(cfg, "").BaseURL())
	assert.Equal(t, "http://flag.example.org", NewClient(cfg, "http://flag.example.org/").BaseURL())
	assert.Equal(t, "http://env.example.org", NewClient(nil, "").BaseURL())
}

func TestNewClientFallsBackToDefaultServer(t *testing.T) {
	t.Setenv(config.EnvServer, "")
	cfg := config.DefaultConfig()
	cfg.ServerURL = ""

	assert.Equal(t, api.DefaultBaseURL, NewClient(cfg, "").BaseURL())
}
