/*
 * D17B/D37C - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */
package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/sdc-labs/d17b/config"
	"github.com/sdc-labs/d17b/cpu"
	"github.com/sdc-labs/d17b/disasm"
	"github.com/sdc-labs/d17b/loader"
	"github.com/sdc-labs/d17b/memory"
	"github.com/sdc-labs/d17b/shell"
	logger "github.com/sdc-labs/d17b/util/logger"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "d17b.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optProgram := getopt.StringLong("load", 'p', "", "Program listing to preload")
	optMode := getopt.StringLong("mode", 'm', "", "Override configured machine variant: d17b or d37c")
	optSelfTest := getopt.BoolLong("selftest", 't', "Run the built-in self-test scenarios and exit")
	optInteractive := getopt.BoolLong("interactive", 'i', "Start the interactive shell")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	debug := false
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debug))
	slog.SetDefault(Logger)

	cfg, err := config.Load(*optConfig)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	if *optMode == "d17b" || *optMode == "d37c" {
		cfg.Machine.Variant = *optMode
	}

	Logger.Info("d17b started", "variant", cfg.Machine.Variant)

	if *optSelfTest {
		runSelfTests()
		return
	}

	limit := memory.D17BWords
	if cfg.D37C() {
		limit = memory.D37CWords
	}
	s := cpu.New(limit, cfg.D37C())
	s.CountdownEnabled = cfg.Run.CountdownEnabled

	if *optProgram != "" {
		f, err := os.Open(*optProgram)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		defer f.Close()
		if err := loader.Load(s, f); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}

	if *optInteractive {
		shell.Run(s)
		return
	}

	status := s.Run(cfg.Run.MaxCycles)
	fmt.Println(disasm.State(s))
	if status != cpu.StatusHalted {
		Logger.Info("cycle budget exhausted")
	}
}
