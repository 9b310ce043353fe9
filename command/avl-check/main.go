// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countedavl/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "operations", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [--seed=N] [--operations=N]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if 1 == len(options["seed"]) {
		masterConfiguration.Seed, err = strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seed: %q  error: %s", program, options["seed"][0], err)
		}
	}
	if 1 == len(options["operations"]) {
		masterConfiguration.Operations, err = strconv.Atoi(options["operations"][0])
		if nil != err {
			exitwithstatus.Message("%s: invalid operations: %q  error: %s", program, options["operations"][0], err)
		}
	}
	if 0 == masterConfiguration.Seed {
		masterConfiguration.Seed = time.Now().UnixNano()
	}

	verbose := len(options["verbose"]) > 0
	if verbose {
		masterConfiguration.Logging.Console = true
	}

	if err := masterConfiguration.validate(); nil != err {
		exitwithstatus.Message("%s: invalid configuration: %s", program, err)
	}

	// start logging
	if err := os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed, error: %s", program, masterConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// ensure critical messages before a panic reach the log
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	if err := runScenarios(logger.New("scenario")); nil != err {
		log.Criticalf("scenarios: %s", err)
		fmt.Fprintf(os.Stderr, "%s: scenarios failed, see log: %s\n", program, masterConfiguration.Logging.Directory)
		exitwithstatus.Exit(1)
	}

	if err := runRounds(masterConfiguration, logger.New("random")); nil != err {
		log.Criticalf("random rounds: %s", err)
		fmt.Fprintf(os.Stderr, "%s: random rounds failed with seed: %d, see log: %s\n", program, masterConfiguration.Seed, masterConfiguration.Logging.Directory)
		exitwithstatus.Exit(1)
	}

	log.Info("all checks passed")
	if verbose {
		fmt.Printf("%s: all checks passed  seed: %d\n", program, masterConfiguration.Seed)
	}
}
