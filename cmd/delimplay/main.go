// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command delimplay runs a TOML playbook of race scenarios and reports how
// each one resolved.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"code.hybscloud.com/delim/internal/playbook"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "playbook.toml", "playbook file")
	verbose := flag.Bool("v", false, "log branch activity")
	flag.Parse()

	logger := initLogger("delimplay", *verbose)

	cfg, err := playbook.LoadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "delimplay: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	reps := playbook.RunAll(ctx, logger, cfg)
	for i, rep := range reps {
		if err := playbook.Verify(cfg.Scenarios[i], rep); err != nil {
			logger.Error().Err(err).Str("scenario", rep.Scenario).Msg("expectation failed")
			failed++
		}
	}
	logger.Info().Int("scenarios", len(reps)).Int("failed", failed).Msg("playbook finished")
	if failed > 0 {
		os.Exit(1)
	}
}

func initLogger(app string, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}
