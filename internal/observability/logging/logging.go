package logging

import (
	"context"
	"io"
	"log/slog"
)

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Service       ServiceInfo
	Environment   Environment
	Level         slog.Leveler
	DefaultModule Module
	GCPProjectID  string
}

type moduleKey struct{}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey{}, module)
}

func ModuleFromContext(ctx context.Context) (Module, bool) {
	m, ok := ctx.Value(moduleKey{}).(Module)
	return m, ok && m != ""
}

// NewHandler returns a JSON handler with GCP field names in prod and a text handler elsewhere.
func NewHandler(w io.Writer, cfg Config) slog.Handler {
	level := cfg.Level
	if level == nil {
		level = slog.LevelInfo
	}

	var base slog.Handler
	if cfg.Environment == EnvDev {
		base = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceGCPAttr,
		})
	}

	base = base.WithAttrs([]slog.Attr{
		slog.String("service", cfg.Service.Name),
		slog.String("version", cfg.Service.Version),
		slog.String("revision", cfg.Service.Revision),
		slog.String("env", string(cfg.Environment)),
	})

	return &contextHandler{
		next:          base,
		defaultModule: cfg.DefaultModule,
		projectID:     cfg.GCPProjectID,
	}
}

func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	return slog.New(NewHandler(w, cfg))
}

func replaceGCPAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.LevelKey:
		a.Key = "severity"
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == slog.LevelWarn {
			a.Value = slog.StringValue("WARNING")
		}
	case slog.MessageKey:
		a.Key = "message"
	}
	return a
}

// contextHandler adds request-scoped attributes carried on the context.
type contextHandler struct {
	next          slog.Handler
	defaultModule Module
	projectID     string
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		module := h.defaultModule
		if m, ok := ModuleFromContext(ctx); ok {
			module = m
		}
		if module != "" {
			r.AddAttrs(slog.String("module", string(module)))
		}
		if requestID := RequestIDFromContext(ctx); requestID != "" {
			r.AddAttrs(slog.String("request_id", requestID))
		}
		r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)
	}
	return h.next.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), defaultModule: h.defaultModule, projectID: h.projectID}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), defaultModule: h.defaultModule, projectID: h.projectID}
}
