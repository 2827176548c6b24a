package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/bugform/internal/api"
	"github.com/gravitrone/bugform/internal/blocksync"
	"github.com/gravitrone/bugform/internal/logging"
	"github.com/gravitrone/bugform/internal/ui/components"
)

// bugFetchedMsg carries the result of a sync lookup back to the form.
type bugFetchedMsg struct {
	seq    uint64
	id     string
	result blocksync.Result
}

var errNoClient = errors.New("no server configured; run bugform login")

func toWidgetBug(bug *api.BugSummary) blocksync.Bug {
	if bug == nil {
		return blocksync.Bug{}
	}
	return blocksync.Bug{
		Product:   bug.Product,
		Component: bug.Component,
		Version:   bug.Version,
	}
}

// fetchBugCmd performs the lookup for req off the update loop.
func fetchBugCmd(client *api.Client, req blocksync.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		msg := bugFetchedMsg{seq: req.Seq, id: req.Identifier}
		if client == nil {
			msg.result = blocksync.Fail(errNoClient)
			return msg
		}
		bug, err := client.GetBug(req.Context(), req.Identifier)
		if err != nil {
			msg.result = blocksync.Fail(err)
			return msg
		}
		msg.result = blocksync.Ok(toWidgetBug(bug))
		return msg
	}
}

// clickSync activates the focused sync-row button.
func (a *App) clickSync() tea.Cmd {
	buttons := a.widget.Buttons()
	if a.syncIndex < 0 || a.syncIndex >= len(buttons) {
		return nil
	}
	btn := buttons[a.syncIndex]
	req, ok := a.widget.Click(a.syncIndex)
	if !ok {
		logging.L().Debug().Msg("sync fields cleared")
		a.syncInputsFromWidget()
		return nil
	}
	logging.L().Debug().Str("bug", btn.Identifier).Uint64("seq", req.Seq).Msg("sync requested")
	return fetchBugCmd(a.client, req)
}

// applyFetched hands a lookup result to the widget and reports the outcome.
func (a *App) applyFetched(msg bugFetchedMsg) tea.Cmd {
	outcome := a.widget.Resolve(msg.seq, msg.result)
	log := logging.L()
	switch outcome {
	case blocksync.OutcomeApplied:
		a.syncInputsFromWidget()
		log.Info().Str("bug", msg.id).Msg("synced fields from blocking bug")
		return a.setToast("success", "Synced from bug "+msg.id)
	case blocksync.OutcomeFailed:
		log.Warn().Err(msg.result.Err).Str("bug", msg.id).Msg("sync lookup failed")
		return a.setToast("error", fmt.Sprintf("Sync from %s failed: %v", msg.id, msg.result.Err))
	default:
		log.Debug().Str("bug", msg.id).Uint64("seq", msg.seq).Msg("discarded stale lookup")
		return nil
	}
}

// syncButtonSpecs maps the widget's row onto rendered buttons.
func syncButtonSpecs(buttons []blocksync.Button) []components.ButtonSpec {
	specs := make([]components.ButtonSpec, 0, len(buttons))
	for _, b := range buttons {
		tone := components.ToneSuccess
		if b.Kind == blocksync.ButtonClear {
			tone = components.ToneWarning
		}
		specs = append(specs, components.ButtonSpec{Label: b.Label, Tone: tone})
	}
	return specs
}
