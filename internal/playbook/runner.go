// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package playbook

import (
	"context"
	"fmt"
	"time"

	"code.hybscloud.com/delim"
	"github.com/rs/zerolog"
)

// Report is what one scenario run resolved to.
type Report struct {
	Scenario string
	Outcome  string
	Winner   string
	Value    string
	// Cause is set when the scenario was cut short by its timeout or by
	// cancellation of the caller's context.
	Cause   error
	Elapsed time.Duration
}

// result is what a completing branch returns.
type result struct {
	branch string
	value  string
}

// halt is the scenario's shift type.
type halt struct {
	branch string
	value  string
	cause  error
}

// Run races the scenario's branches inside a single scope. The first branch
// to complete or shift decides the report; every other branch is cancelled
// and joined before Run returns.
func Run(ctx context.Context, log zerolog.Logger, sc Scenario) Report {
	log = log.With().Str("scenario", sc.Name).Logger()
	if sc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sc.Timeout)
		defer cancel()
	}

	start := time.Now()
	out := delim.Reset(func(e delim.Effect[halt]) result {
		branches := make([]func(context.Context) result, len(sc.Branches))
		for i, b := range sc.Branches {
			branches[i] = func(ctx context.Context) result {
				return runBranch(ctx, log, e, b)
			}
		}
		return delim.Race(ctx, branches...)
	})

	rep := delim.MatchOutcome(out,
		func(h halt) Report {
			return Report{Outcome: OutcomeShifted, Winner: h.branch, Value: h.value, Cause: h.cause}
		},
		func(r result) Report {
			return Report{Outcome: OutcomeCompleted, Winner: r.branch, Value: r.value}
		},
	)
	rep.Scenario = sc.Name
	rep.Elapsed = time.Since(start)

	ev := log.Info()
	if rep.Cause != nil {
		ev = log.Warn().Err(rep.Cause)
	}
	ev.Str("outcome", rep.Outcome).
		Str("winner", rep.Winner).
		Str("value", rep.Value).
		Dur("elapsed", rep.Elapsed).
		Msg("scenario resolved")
	return rep
}

func runBranch(ctx context.Context, log zerolog.Logger, e delim.Effect[halt], b Branch) result {
	log.Debug().Str("branch", b.Name).Dur("delay", b.Delay).Msg("branch started")
	timer := time.NewTimer(b.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	delim.Guard(ctx, e, func(cause error) halt { return halt{cause: cause} })

	if b.Outcome == OutcomeShifted {
		log.Debug().Str("branch", b.Name).Str("value", b.Value).Msg("branch shifting")
		e.Shift(halt{branch: b.Name, value: b.Value})
	}
	return result{branch: b.Name, value: b.Value}
}

// RunAll runs every scenario of cfg concurrently and returns the reports in
// scenario order.
func RunAll(ctx context.Context, log zerolog.Logger, cfg Config) []Report {
	scenarios := make([]func(context.Context) Report, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		scenarios[i] = func(ctx context.Context) Report { return Run(ctx, log, sc) }
	}
	return delim.Par(ctx, scenarios...)
}

// Verify checks rep against the scenario's expectations.
func Verify(sc Scenario, rep Report) error {
	if sc.Expect.Outcome != "" && sc.Expect.Outcome != rep.Outcome {
		return fmt.Errorf("%w: %s: outcome %s, want %s", ErrUnexpected, sc.Name, rep.Outcome, sc.Expect.Outcome)
	}
	if sc.Expect.Winner != "" && sc.Expect.Winner != rep.Winner {
		return fmt.Errorf("%w: %s: winner %q, want %q", ErrUnexpected, sc.Name, rep.Winner, sc.Expect.Winner)
	}
	return nil
}
