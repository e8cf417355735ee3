// Copyright 2025 The tcam Authors
// This file is part of tcam.
//
// tcam is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tcam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with tcam. If not, see <http://www.gnu.org/licenses/>.

// Package xlog is the fatal-assert channel's logging sink, shaped like the
// teacher's erigon-lib/log/v3 call sites (Info/Warn/Error(msg, kv...)) but
// backed directly by zap since no wrapper logic is needed beyond that
// shape.
package xlog

import "go.uber.org/zap"

// Logger is the minimal structured-logging contract the core uses to
// record a programming error immediately before panicking.
type Logger interface {
	Error(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Info(msg string, kv ...any)
}

// Nop discards everything. It is the module's default so that using the
// core does not require configuring a logger first.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Info(string, ...any)  {}

// zapLogger adapts a zap.SugaredLogger to Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZap wraps z as a Logger.
func NewZap(z *zap.Logger) Logger {
	return zapLogger{s: z.Sugar()}
}

func (l zapLogger) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }
func (l zapLogger) Warn(msg string, kv ...any)  { l.s.Warnw(msg, kv...) }
func (l zapLogger) Info(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
