// Package log wraps zerolog with the request-aware helpers used by handlers.
package log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type Options struct {
	Level  string
	Format string // json | console
	Writer io.Writer
}

var (
	mu   sync.RWMutex
	root = build(Options{Level: "info"})
)

func build(opt Options) zerolog.Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.EqualFold(opt.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opt.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Init replaces the process root logger.
func Init(opt Options) {
	zerolog.TimeFieldFormat = time.RFC3339
	l := build(opt)
	mu.Lock()
	root = l
	mu.Unlock()
}

// Get returns the process root logger.
func Get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := root
	return &l
}

type ctxKey struct{}

// WithRequestID stashes the request id so Ctx can tag lines below the handler.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// Ctx returns a child logger carrying the request id found in ctx, if any.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Get()
	if ctx == nil {
		return l
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		ll := l.With().Str("req_id", id).Logger()
		return &ll
	}
	return l
}

func write(lvl zerolog.Level, tag string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e := Get().WithLevel(lvl)
	if tag != "" {
		e = e.Str("channel", tag)
	}
	if c != nil {
		e = e.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e = e.Str("req_id", rid)
		}
	}
	if action != "" {
		e = e.Str("action", action)
	}
	if err != nil {
		e = e.Str("err", err.Error())
	}
	if len(fields) > 0 {
		e = e.Interface("fields", fields)
	}
	e.Send()
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(zerolog.InfoLevel, "", c, action, nil, fields)
}

func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(zerolog.InfoLevel, "audit", c, action, nil, fields)
}

func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(zerolog.WarnLevel, "security", c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(zerolog.ErrorLevel, "", c, action, err, fields)
}
