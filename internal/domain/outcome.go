package domain

type DeliveryStatus string

const (
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

type DeliveryOutcome struct {
	Token  DeliveryToken
	Status DeliveryStatus
	Reason string
}

func Delivered(token DeliveryToken) DeliveryOutcome {
	return DeliveryOutcome{Token: token, Status: DeliveryStatusDelivered}
}

func Failed(token DeliveryToken, reason string) DeliveryOutcome {
	return DeliveryOutcome{Token: token, Status: DeliveryStatusFailed, Reason: reason}
}

func (o DeliveryOutcome) IsDelivered() bool {
	return o.Status == DeliveryStatusDelivered
}

// FanoutReport aggregates one run. Succeeded + Failed always equals TotalTokens.
type FanoutReport struct {
	EligibleRecipients int
	TotalTokens        int
	Succeeded          int
	Failed             int
}

// SummarizeOutcomes folds per-token outcomes into a report. Every outcome counts exactly once.
func SummarizeOutcomes(eligibleRecipients int, outcomes []DeliveryOutcome) FanoutReport {
	report := FanoutReport{
		EligibleRecipients: eligibleRecipients,
		TotalTokens:        len(outcomes),
	}
	for _, o := range outcomes {
		if o.IsDelivered() {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}
	return report
}

func FailedTokens(outcomes []DeliveryOutcome) []DeliveryToken {
	tokens := make([]DeliveryToken, 0)
	for _, o := range outcomes {
		if !o.IsDelivered() {
			tokens = append(tokens, o.Token)
		}
	}
	return tokens
}
