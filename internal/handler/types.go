package handler

import (
	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
	fanoutv1 "github.com/KasumiMercury/primind-push-fanout/internal/gen/fanout/v1"
)

type FanoutResponse struct {
	Message        string `json:"message"`
	Sent           int    `json:"sent"`
	Failed         int    `json:"failed"`
	TotalProviders int    `json:"totalProviders"`
	TotalTokens    int    `json:"totalTokens"`
}

type ShortCircuitResponse struct {
	Message string `json:"message"`
	Sent    int    `json:"sent"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func serviceRequestEvent(req *fanoutv1.ServiceRequest) domain.ServiceRequestEvent {
	return domain.ServiceRequestEvent{
		RequestID:        req.GetRequestId(),
		ServiceType:      req.GetServiceType(),
		Location:         req.GetLocation(),
		Description:      req.GetDescription(),
		OriginatorUserID: req.GetUserId(),
	}
}

func redriveTokens(req *fanoutv1.RedriveRequest) []domain.DeliveryToken {
	tokens := make([]domain.DeliveryToken, 0, len(req.GetTokens()))
	for _, t := range req.GetTokens() {
		tokens = append(tokens, domain.DeliveryToken{UserID: t.GetUserId(), Token: t.GetToken()})
	}
	return tokens
}
