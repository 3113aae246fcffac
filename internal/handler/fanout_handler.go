package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/proto"

	fanoutv1 "github.com/KasumiMercury/primind-push-fanout/internal/gen/fanout/v1"
	pjson "github.com/KasumiMercury/primind-push-fanout/internal/proto"
	"github.com/KasumiMercury/primind-push-fanout/internal/service/fanout"
)

type FanoutHandler struct {
	fanoutService *fanout.Service
}

func NewFanoutHandler(fanoutService *fanout.Service) *FanoutHandler {
	return &FanoutHandler{
		fanoutService: fanoutService,
	}
}

func (h *FanoutHandler) HandleFanout(c *gin.Context) {
	ctx := c.Request.Context()

	var req fanoutv1.ServiceRequest
	if !bindProto(c, &req, "fanout.request.invalid") {
		return
	}

	result, err := h.fanoutService.Run(ctx, serviceRequestEvent(&req))
	if err != nil {
		respondError(c, err)
		return
	}

	respondResult(c, result)
}

// HandleRedrive receives a task registered after a run with failed deliveries.
func (h *FanoutHandler) HandleRedrive(c *gin.Context) {
	ctx := c.Request.Context()

	var req fanoutv1.RedriveRequest
	if !bindProto(c, &req, "fanout.redrive.invalid") {
		return
	}

	slog.InfoContext(ctx, "handling redrive task",
		slog.String("origin_run_id", req.GetRunId()),
		slog.String("request_id", req.GetEvent().GetRequestId()),
		slog.Int("tokens", len(req.GetTokens())),
	)

	result, err := h.fanoutService.Redeliver(ctx, serviceRequestEvent(req.GetEvent()), redriveTokens(&req))
	if err != nil {
		respondError(c, err)
		return
	}

	respondResult(c, result)
}

// bindProto reads the body into msg and checks its validation rules. It writes the error
// response itself and reports whether the handler may continue.
func bindProto(c *gin.Context, msg proto.Message, event string) bool {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read request body",
			slog.String("event", event),
			slog.String("error", err.Error()),
		)
		respondError(c, err)
		return false
	}

	if err := pjson.Unmarshal(body, msg); err != nil {
		slog.WarnContext(ctx, "request unmarshal failed",
			slog.String("event", event),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		respondError(c, err)
		return false
	}

	if err := pjson.Validate(msg); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("event", event),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		respondError(c, err)
		return false
	}

	return true
}

func respondResult(c *gin.Context, result *fanout.Result) {
	if result.Stage == fanout.StageShortCircuited {
		c.JSON(http.StatusOK, ShortCircuitResponse{
			Message: result.Message(),
			Sent:    0,
		})
		return
	}

	c.JSON(http.StatusOK, FanoutResponse{
		Message:        result.Message(),
		Sent:           result.Report.Succeeded,
		Failed:         result.Report.Failed,
		TotalProviders: result.Report.EligibleRecipients,
		TotalTokens:    result.Report.TotalTokens,
	})
}

func respondError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
