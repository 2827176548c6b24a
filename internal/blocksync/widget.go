package blocksync

import (
	"context"
	"errors"

	"github.com/gravitrone/bugform/internal/blocks"
)

// ButtonKind distinguishes the clear button from sync buttons.
type ButtonKind int

const (
	ButtonClear ButtonKind = iota
	ButtonSync
)

// ClearLabel is the caption of the reset button.
const ClearLabel = "Clear"

// Button is one entry of the sync row.
type Button struct {
	Kind       ButtonKind
	Label      string
	Identifier string
}

// RenderButtons builds a fresh sync row: the clear button followed by one
// button per identifier, labelled with the identifier's literal text.
func RenderButtons(ids []string) []Button {
	row := make([]Button, 0, len(ids)+1)
	row = append(row, Button{Kind: ButtonClear, Label: ClearLabel})
	for _, id := range ids {
		row = append(row, Button{Kind: ButtonSync, Label: id, Identifier: id})
	}
	return row
}

// Bug is the product/component/version summary of a blocking bug. Nil means
// the backend did not specify the field.
type Bug struct {
	Product   *string
	Component *string
	Version   *string
}

// Result is the outcome of a bug lookup. Err is nil on success.
type Result struct {
	Bug Bug
	Err error
}

// Ok wraps a successful lookup.
func Ok(bug Bug) Result { return Result{Bug: bug} }

// Fail wraps a failed lookup.
func Fail(err error) Result { return Result{Err: err} }

// Outcome reports what Resolve did with a result.
type Outcome int

const (
	// OutcomeApplied means the fields now hold the fetched values.
	OutcomeApplied Outcome = iota
	// OutcomeStale means a newer click superseded the request.
	OutcomeStale
	// OutcomeFailed means the lookup failed and the fields are unchanged.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeStale:
		return "stale"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// FetchRequest asks the host to look up a bug on behalf of a sync click.
type FetchRequest struct {
	Seq        uint64
	Identifier string
	ctx        context.Context
}

// Context is cancelled when the request is superseded or the widget unmounts.
func (r FetchRequest) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// Widget is the block-sync state of one bug form. Only the most recent
// sync click may change the fields; older in-flight lookups are cancelled.
type Widget struct {
	base    context.Context
	text    string
	buttons []Button
	fields  Triple

	seq     uint64
	pending string
	cancel  context.CancelFunc
}

// NewWidget returns an unmounted widget whose requests derive from ctx.
func NewWidget(ctx context.Context) *Widget {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Widget{
		base:    ctx,
		fields:  NewTriple(),
		buttons: RenderButtons(nil),
	}
}

// Mount renders the row for the initial blocks text and returns the
// teardown function.
func (w *Widget) Mount(text string) func() {
	w.SetBlocks(text)
	return w.Unmount
}

// Unmount cancels any in-flight lookup.
func (w *Widget) Unmount() {
	w.cancelPending()
}

// SetBlocks replaces the sync row with one derived from text.
func (w *Widget) SetBlocks(text string) {
	w.text = text
	w.buttons = RenderButtons(blocks.Identifiers(text))
}

// BlocksText returns the text the row was last rendered from.
func (w *Widget) BlocksText() string { return w.text }

// Buttons returns the current sync row.
func (w *Widget) Buttons() []Button {
	out := make([]Button, len(w.buttons))
	copy(out, w.buttons)
	return out
}

// Fields returns the current product/component/version state.
func (w *Widget) Fields() Triple { return w.fields }

// SetValue records a value typed by the user.
func (w *Widget) SetValue(key FieldKey, value string) {
	w.fields.setValue(key, value)
}

// ApplyBugInfo writes the three fields directly.
func (w *Widget) ApplyBugInfo(product, component, version *string) {
	w.fields.ApplyBugInfo(product, component, version)
}

// Pending returns the identifier of the in-flight lookup, if any.
func (w *Widget) Pending() (string, bool) {
	return w.pending, w.cancel != nil
}

// Click handles activation of button i. It returns a request when the host
// must perform a lookup. Clicking clear resets the fields and abandons any
// in-flight lookup.
func (w *Widget) Click(i int) (FetchRequest, bool) {
	if i < 0 || i >= len(w.buttons) {
		return FetchRequest{}, false
	}
	btn := w.buttons[i]
	w.cancelPending()
	w.seq++

	if btn.Kind == ButtonClear {
		w.fields.Reset()
		return FetchRequest{}, false
	}

	ctx, cancel := context.WithCancel(w.base)
	w.cancel = cancel
	w.pending = btn.Identifier
	return FetchRequest{Seq: w.seq, Identifier: btn.Identifier, ctx: ctx}, true
}

// Resolve applies the result of request seq.
func (w *Widget) Resolve(seq uint64, res Result) Outcome {
	if seq != w.seq || w.cancel == nil {
		return OutcomeStale
	}
	w.cancelPending()
	if res.Err != nil {
		if errors.Is(res.Err, context.Canceled) {
			return OutcomeStale
		}
		return OutcomeFailed
	}
	w.fields.ApplyBugInfo(res.Bug.Product, res.Bug.Component, res.Bug.Version)
	return OutcomeApplied
}

func (w *Widget) cancelPending() {
	if w.cancel != nil {
		w.cancel()
	}
	w.cancel = nil
	w.pending = ""
}
