// Copyright 2026 The CDD Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package obslog

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Phase names the three pipeline layers of §2, used as both a log field and
// a span name prefix.
type Phase string

const (
	PhaseParse    Phase = "parse"
	PhaseAnalyze  Phase = "analyze"
	PhaseGenerate Phase = "generate"
)

// Logger is a structured logger scoped to one component.
type Logger struct {
	slog      *slog.Logger
	component string
}

// New creates a Logger for component writing JSON lines at Info level to
// os.Stderr.
func New(component string) *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{slog: slog.New(h).With("component", component), component: component}
}

// With returns a child Logger with additional structured fields attached.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), component: l.component}
}

func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }

// StartSpan opens a trace span named "<phase>.<op>" and returns a context
// carrying it plus a function to end it. Callers defer the returned func.
func (l *Logger) StartSpan(ctx context.Context, phase Phase, op string) (context.Context, func()) {
	tracer := otel.Tracer("github.com/offscale/cdd")
	ctx, span := tracer.Start(ctx, string(phase)+"."+op, trace.WithAttributes())
	l.Debug("phase started", "phase", phase, "op", op)
	return ctx, func() { span.End() }
}
