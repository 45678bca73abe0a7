package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/diogo/mindmate/internal/api"
	"github.com/diogo/mindmate/internal/models"
	"github.com/diogo/mindmate/internal/transcript"
)

// Pending tracks one accepted message between Begin and Complete
type Pending struct {
	Seq         uint64
	Text        string // What is sent to the reply service
	Mode        Mode
	UserEntry   transcript.EntryID
	Placeholder transcript.EntryID // uuid.Nil when the mode shows none
}

// Dispatcher sends user messages and renders their outcome.
//
// Begin and Complete mutate the transcript and must run on the goroutine that
// owns it. Exchange only talks to the network and may run anywhere.
type Dispatcher struct {
	transcript *transcript.Transcript
	client     api.ChatClient
	logger     *slog.Logger

	seq      atomic.Uint64
	inFlight atomic.Int64
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger for failures and stale replies
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher rendering into t
func NewDispatcher(t *transcript.Transcript, client api.ChatClient, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		transcript: t,
		client:     client,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Transcript returns the transcript the dispatcher renders into
func (d *Dispatcher) Transcript() *transcript.Transcript {
	return d.transcript
}

// Begin accepts text for sending. Empty or whitespace-only text is rejected
// with no entries added. Otherwise the user entry (and the placeholder, when
// the mode has one) is appended immediately.
func (d *Dispatcher) Begin(text string, mode Mode) (*Pending, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	p := &Pending{
		Seq:  d.seq.Add(1),
		Text: text,
		Mode: mode,
	}
	p.UserEntry = d.transcript.Append(mode.display(text), models.SenderUser)
	if mode.Placeholder {
		p.Placeholder = d.transcript.AppendPlaceholder()
	}
	d.inFlight.Add(1)

	return p, true
}

// Exchange performs the request for p. It does not touch the transcript.
func (d *Dispatcher) Exchange(ctx context.Context, p *Pending) Outcome {
	result, err := d.client.Chat(ctx, p.Text)
	return newOutcome(result, err)
}

// Complete renders the outcome of p: its own placeholder is removed, then the
// reply, failure or network-error text is appended. It returns the handles of
// the appended entries.
func (d *Dispatcher) Complete(p *Pending, o Outcome) []transcript.EntryID {
	if p.Placeholder != uuid.Nil {
		d.transcript.Remove(p.Placeholder)
	}
	d.inFlight.Add(-1)

	if latest := d.seq.Load(); p.Seq < latest {
		d.logger.Debug("stale reply", "seq", p.Seq, "latest", latest, "outcome", o.Kind.String())
	}

	switch o.Kind {
	case OutcomeTransportFailure:
		d.logger.Error("reply request failed", "seq", p.Seq, "mode", p.Mode.Name, "error", o.Err)
	case OutcomeEmptyReply:
		d.logger.Warn("reply had no usable text", "seq", p.Seq, "mode", p.Mode.Name)
	}

	texts := o.Texts(p.Mode)
	ids := make([]transcript.EntryID, 0, len(texts))
	for _, text := range texts {
		ids = append(ids, d.transcript.Append(text, models.SenderAssistant))
	}
	return ids
}

// Send runs Begin, Exchange and Complete in one call. It reports false when
// the text was rejected.
func (d *Dispatcher) Send(ctx context.Context, text string, mode Mode) (Outcome, bool) {
	p, ok := d.Begin(text, mode)
	if !ok {
		return Outcome{}, false
	}
	o := d.Exchange(ctx, p)
	d.Complete(p, o)
	return o, true
}

// Latest returns the sequence number of the most recently accepted message
func (d *Dispatcher) Latest() uint64 {
	return d.seq.Load()
}

// InFlight returns how many accepted messages have not completed
func (d *Dispatcher) InFlight() int {
	return int(d.inFlight.Load())
}
