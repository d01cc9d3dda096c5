// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package playbook

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"code.hybscloud.com/delim"
	"github.com/BurntSushi/toml"
)

// Outcome kinds a branch or a scenario can end with.
const (
	OutcomeCompleted = "completed"
	OutcomeShifted   = "shifted"
)

var (
	ErrNoScenarios = errors.New("playbook: no scenarios")
	ErrNoBranches  = errors.New("playbook: scenario has no branches")
	ErrBadOutcome  = errors.New("playbook: outcome must be completed or shifted")
	ErrUnexpected  = errors.New("playbook: unexpected result")
)

// Branch is one racer in a scenario. After Delay it either completes with
// Value or shifts Value into the scenario's scope.
type Branch struct {
	Name    string
	Delay   time.Duration
	Outcome string
	Value   string
}

// Expect is the result a scenario is checked against. Empty fields match anything.
type Expect struct {
	Outcome string
	Winner  string
}

// Scenario races its branches under an optional timeout.
type Scenario struct {
	Name     string
	Timeout  time.Duration
	Branches []Branch
	Expect   Expect
}

// Config is a loaded playbook.
type Config struct {
	DefaultTimeout time.Duration
	Scenarios      []Scenario
}

// DefaultConfig returns the settings used for keys a playbook leaves out.
func DefaultConfig() Config {
	return Config{DefaultTimeout: time.Second}
}

type fileBranch struct {
	Name    string `toml:"name"`
	Delay   string `toml:"delay"`
	Outcome string `toml:"outcome"`
	Value   string `toml:"value"`
}

type fileScenario struct {
	Name          string       `toml:"name"`
	Timeout       string       `toml:"timeout"`
	ExpectOutcome string       `toml:"expect_outcome"`
	ExpectWinner  string       `toml:"expect_winner"`
	Branches      []fileBranch `toml:"branch"`
}

type fileConfig struct {
	DefaultTimeout string         `toml:"default_timeout"`
	Scenarios      []fileScenario `toml:"scenario"`
}

// LoadFile reads a TOML playbook from path.
func LoadFile(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load playbook: %w", err)
	}
	return fromFile(raw, meta)
}

// Decode parses a TOML playbook held in memory.
func Decode(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("decode playbook: %w", err)
	}
	return fromFile(raw, meta)
}

func fromFile(raw fileConfig, meta toml.MetaData) (Config, error) {
	return delim.Try(func(e delim.Effect[error]) Config {
		cfg := DefaultConfig()

		if meta.IsDefined("default_timeout") {
			cfg.DefaultTimeout = parseDuration(e, "default_timeout", raw.DefaultTimeout)
		}
		delim.Ensure(e, len(raw.Scenarios) > 0, func() error { return ErrNoScenarios })

		cfg.Scenarios = make([]Scenario, 0, len(raw.Scenarios))
		for i, fs := range raw.Scenarios {
			cfg.Scenarios = append(cfg.Scenarios, scenarioFromFile(e, i, fs, cfg.DefaultTimeout))
		}
		return cfg
	})
}

func scenarioFromFile(e delim.Effect[error], i int, fs fileScenario, def time.Duration) Scenario {
	sc := Scenario{
		Name:    strings.TrimSpace(fs.Name),
		Timeout: def,
		Expect: Expect{
			Outcome: strings.TrimSpace(fs.ExpectOutcome),
			Winner:  strings.TrimSpace(fs.ExpectWinner),
		},
	}
	if sc.Name == "" {
		sc.Name = fmt.Sprintf("scenario-%d", i)
	}
	if fs.Timeout != "" {
		sc.Timeout = parseDuration(e, sc.Name+".timeout", fs.Timeout)
	}
	if sc.Expect.Outcome != "" {
		checkOutcome(e, sc.Name, sc.Expect.Outcome)
	}
	delim.Ensure(e, len(fs.Branches) > 0, func() error {
		return fmt.Errorf("%w: %s", ErrNoBranches, sc.Name)
	})

	sc.Branches = make([]Branch, 0, len(fs.Branches))
	for j, fb := range fs.Branches {
		b := Branch{
			Name:    strings.TrimSpace(fb.Name),
			Outcome: strings.TrimSpace(fb.Outcome),
			Value:   fb.Value,
		}
		if b.Name == "" {
			b.Name = fmt.Sprintf("branch-%d", j)
		}
		if b.Outcome == "" {
			b.Outcome = OutcomeCompleted
		}
		checkOutcome(e, sc.Name+"."+b.Name, b.Outcome)
		if fb.Delay != "" {
			b.Delay = parseDuration(e, sc.Name+"."+b.Name+".delay", fb.Delay)
		}
		sc.Branches = append(sc.Branches, b)
	}
	return sc
}

func parseDuration(e delim.Effect[error], key, s string) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		e.Shift(fmt.Errorf("parse %s: %w", key, err))
	}
	delim.Ensure(e, d >= 0, func() error { return fmt.Errorf("parse %s: negative duration %s", key, s) })
	return d
}

func checkOutcome(e delim.Effect[error], key, outcome string) {
	delim.Ensure(e, outcome == OutcomeCompleted || outcome == OutcomeShifted, func() error {
		return fmt.Errorf("%w: %s = %q", ErrBadOutcome, key, outcome)
	})
}
