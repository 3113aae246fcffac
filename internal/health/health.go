package health

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/grpchealth"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

type HealthStatus struct {
	Status  Status                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Checker struct {
	redisClient *redis.Client
	store       Pinger
	version     string
	timeout     time.Duration
}

// NewChecker builds a checker. redisClient may be nil when the credential cache is disabled.
func NewChecker(redisClient *redis.Client, store Pinger, version string) *Checker {
	return &Checker{
		redisClient: redisClient,
		store:       store,
		version:     version,
		timeout:     5 * time.Second,
	}
}

func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status := &HealthStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	if c.redisClient != nil {
		c.probe(checkCtx, status, "redis", func(ctx context.Context) error {
			return c.redisClient.Ping(ctx).Err()
		})
	}

	if c.store != nil {
		c.probe(checkCtx, status, "store", c.store.Ping)
	}

	return status
}

func (c *Checker) probe(ctx context.Context, status *HealthStatus, name string, ping func(context.Context) error) {
	start := time.Now()
	if err := ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Checks[name] = CheckResult{
			Status: StatusUnhealthy,
			Error:  err.Error(),
		}
		return
	}

	status.Checks[name] = CheckResult{
		Status:    StatusHealthy,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}

// GRPCChecker exposes the same probes over the gRPC health protocol.
func (c *Checker) GRPCChecker() grpchealth.Checker {
	return grpcChecker{c}
}

type grpcChecker struct {
	checker *Checker
}

func (g grpcChecker) Check(ctx context.Context, _ *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if g.checker.Check(ctx).Status != StatusHealthy {
		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}
	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}

// RegisterGRPC mounts the gRPC health service on the router.
func (c *Checker) RegisterGRPC(r gin.IRoutes) {
	path, h := grpchealth.NewHandler(c.GRPCChecker())
	r.POST(path+":method", gin.WrapH(h))
}
