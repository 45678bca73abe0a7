package chat

import (
	"github.com/diogo/mindmate/internal/models"
)

// OutcomeKind classifies how an exchange ended
type OutcomeKind int

const (
	OutcomeReply OutcomeKind = iota
	OutcomeEmptyReply
	OutcomeTransportFailure
)

// String returns a short name for logs
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeReply:
		return "reply"
	case OutcomeEmptyReply:
		return "empty_reply"
	case OutcomeTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of one exchange with the reply service
type Outcome struct {
	Kind   OutcomeKind
	Result *models.ReplyResult
	Err    error
}

// newOutcome classifies a client result
func newOutcome(result *models.ReplyResult, err error) Outcome {
	switch {
	case err != nil:
		return Outcome{Kind: OutcomeTransportFailure, Err: err}
	case !result.Usable():
		return Outcome{Kind: OutcomeEmptyReply, Result: result}
	default:
		return Outcome{Kind: OutcomeReply, Result: result}
	}
}

// Texts returns the assistant entries the outcome renders, in order
func (o Outcome) Texts(mode Mode) []string {
	switch o.Kind {
	case OutcomeReply:
		texts := []string{o.Result.Reply}
		if mode.CrisisNotice && o.Result.Crisis {
			texts = append(texts, models.CrisisNotice)
		}
		return texts
	case OutcomeEmptyReply:
		return []string{models.GenericFailure}
	default:
		return []string{models.NetworkFailure}
	}
}
