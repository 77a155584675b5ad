// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"github.com/tabeval/tabeval"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/constraints"
)

// Logger renders outcomes as structured log entries: one entry per
// case, info-leveled for passing and error-leveled for failing cases,
// plus a summarizing entry per run.
type Logger[N constraints.Integer] struct {

	// L receives the report's log entries.
	L *zap.SugaredLogger
}

// NewLogger returns a logging sink reporting to a production-config
// zap logger with ISO8601 timestamps.
func NewLogger[N constraints.Integer]() (*Logger[N], error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &Logger[N]{L: logger.Sugar()}, nil
}

// Report logs one entry per outcome and a summarizing entry.
func (l *Logger[N]) Report(oo tabeval.Outcomes[N]) error {
	oo.For(func(idx int, o tabeval.Outcome[N]) {
		if o.Passed {
			l.L.Infow("case passed",
				"case", idx,
				"input", o.Input,
				"actual", o.Actual,
				"duration", o.Duration(),
			)
			return
		}
		l.L.Errorw("case failed",
			"case", idx,
			"input", o.Input,
			"expected", o.Expected,
			"actual", o.Actual,
			"reason", o.Reason(),
			"duration", o.Duration(),
		)
	})
	if oo.Passed() {
		l.L.Infow("run passed",
			"cases", oo.Len(), "duration", oo.Duration())
		return nil
	}
	l.L.Errorw("run failed",
		"cases", oo.Len(),
		"failed", oo.LenFailed(),
		"duration", oo.Duration(),
	)
	return nil
}
