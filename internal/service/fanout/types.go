package fanout

import (
	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

// Stage is a state of the fanout pipeline. Runs only move forward.
type Stage string

const (
	StageReceived           Stage = "received"
	StageResolvedRecipients Stage = "resolved_recipients"
	StageResolvedTokens     Stage = "resolved_tokens"
	StageDispatched         Stage = "dispatched"
	StageReportBuilt        Stage = "report_built"
	StageShortCircuited     Stage = "short_circuited"
	StageFailed             Stage = "failed"
)

type ShortCircuitReason string

const (
	ShortCircuitNone        ShortCircuitReason = ""
	ShortCircuitNoProviders ShortCircuitReason = "no_providers"
	ShortCircuitNoEligible  ShortCircuitReason = "no_eligible_providers"
	ShortCircuitNoTokens    ShortCircuitReason = "no_tokens"
)

const MessageProcessed = "Notifications processed"

func (r ShortCircuitReason) Message() string {
	switch r {
	case ShortCircuitNoProviders:
		return "No providers found"
	case ShortCircuitNoEligible:
		return "No eligible providers"
	case ShortCircuitNoTokens:
		return "No FCM tokens found"
	default:
		return ""
	}
}

// Result is the outcome of one run. Err is set only when Stage is StageFailed.
type Result struct {
	RunID        string
	Stage        Stage
	ShortCircuit ShortCircuitReason
	Report       domain.FanoutReport
	Outcomes     []domain.DeliveryOutcome
	Err          error
}

func (r *Result) Message() string {
	if r.Stage == StageShortCircuited {
		return r.ShortCircuit.Message()
	}
	return MessageProcessed
}
