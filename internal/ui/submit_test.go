package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/blocksync"
	"github.com/gravitrone/bugform/internal/logging"
)

func TestCtrlSDispatchesSubmitAndCreates(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bug.json", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Crash", body["summary"])
		assert.Equal(t, "Firefox", body["product"])
		assert.Equal(t, []any{"10", "20"}, body["blocks"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1234}`))
	})
	app := newTestApp(t, client, "10, 20")
	app = typeText(t, app, "Crash")
	app.widget.ApplyBugInfo(strPtr("Firefox"), nil, nil)

	app, cmd := press(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, submitMsg{}, cmd())

	app, cmd = deliver(t, app, cmd)
	assert.True(t, app.submitting)

	app, _ = deliver(t, app, cmd)
	assert.False(t, app.submitting)
	require.NotNil(t, app.toast)
	assert.Equal(t, "success", app.toast.level)
	assert.Contains(t, app.toast.text, "1234")

	assert.Equal(t, "", app.inputs[focusSummary].Value())
	assert.Equal(t, "", app.inputs[focusBlocks].Value())
	assert.Len(t, app.widget.Buttons(), 1)
	assert.Equal(t, blocksync.NewTriple(), app.widget.Fields())
	assert.Equal(t, focusSummary, app.focus)
}

func TestCreateButtonDispatchesSubmit(t *testing.T) {
	app := newTestApp(t, nil, "")
	app = focusOn(app, focusCreate)

	_, cmd := press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, submitMsg{}, cmd())
}

func TestSubmitHooksRunInOrderAndCanEditDraft(t *testing.T) {
	var got api.BugDraft
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"BUG-1"}`))
	})
	app := newTestApp(t, client, "")
	app = typeText(t, app, "crash")

	var order []string
	app.OnSubmit(func(_ context.Context, d *api.BugDraft) error {
		order = append(order, "first")
		d.Summary = "[triage] " + d.Summary
		return nil
	})
	app.OnSubmit(func(_ context.Context, d *api.BugDraft) error {
		order = append(order, "second")
		assert.Equal(t, "[triage] crash", d.Summary)
		return nil
	})

	model, cmd := app.Update(submitMsg{})
	app = model.(App)
	app, _ = deliver(t, app, cmd)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, "[triage] crash", got.Summary)
	assert.Contains(t, app.toast.text, "BUG-1")
}

func TestSubmitHookVetoStopsCreate(t *testing.T) {
	var hits atomic.Int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	app := newTestApp(t, client, "")
	app = typeText(t, app, "crash")
	app.OnSubmit(func(context.Context, *api.BugDraft) error {
		return errors.New("duplicate of 77")
	})

	model, cmd := app.Update(submitMsg{})
	app = model.(App)
	msg := cmd()
	failed, ok := msg.(submitFailedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, failed.err, ErrVetoed)

	app, _ = deliver(t, app, func() tea.Msg { return msg })
	assert.Equal(t, int32(0), hits.Load())
	assert.False(t, app.submitting)
	require.NotNil(t, app.toast)
	assert.Equal(t, "warning", app.toast.level)
	assert.Contains(t, app.toast.text, "duplicate of 77")
	assert.Equal(t, "crash", app.inputs[focusSummary].Value())
}

func TestSubmitServerErrorKeepsForm(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"product is required"}`))
	})
	app := newTestApp(t, client, "10")
	app = typeText(t, app, "crash")

	model, cmd := app.Update(submitMsg{})
	app = model.(App)
	app, _ = deliver(t, app, cmd)

	assert.Contains(t, app.err, "product is required")
	assert.Equal(t, "crash", app.inputs[focusSummary].Value())
	assert.Equal(t, "10", app.inputs[focusBlocks].Value())
}

func TestSubmitIgnoredWhileInFlight(t *testing.T) {
	app := newTestApp(t, nil, "")
	app.submitting = true

	_, cmd := app.Update(submitMsg{})
	assert.Nil(t, cmd)
}

func TestEmptySummaryFailsBeforeRequest(t *testing.T) {
	var hits atomic.Int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	app := newTestApp(t, client, "")

	model, cmd := app.Update(submitMsg{})
	app = model.(App)
	app, _ = deliver(t, app, cmd)

	assert.Equal(t, "summary is required", app.err)
	assert.Equal(t, int32(0), hits.Load())
}

func TestLogSubmitHookNeverVetoes(t *testing.T) {
	draft := api.BugDraft{Summary: "x", Blocks: []string{"1"}}
	assert.NoError(t, LogSubmitHook(context.Background(), &draft))
}

func TestSubmitOutcomesAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logging.Set(logging.New(&buf, true))
	t.Cleanup(func() { logging.Set(zerolog.Nop()) })

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":5}`))
	})
	app := newTestApp(t, client, "")
	app = typeText(t, app, "crash")
	app.OnSubmit(LogSubmitHook)

	model, cmd := app.Update(submitMsg{})
	app = model.(App)
	_, _ = deliver(t, app, cmd)

	assert.Contains(t, buf.String(), "submitting bug")
	assert.Contains(t, buf.String(), "bug created")
}
