// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countedavl/configuration"
	"github.com/bitmark-inc/countedavl/fault"
)

// basic defaults (the log directory is relative to the configuration file)
const (
	defaultRounds           = 4
	defaultOperations       = 20000
	defaultKeyRange         = 256
	defaultMaxAmount        = 5
	defaultDeleteAllPercent = 20
	defaultCheckEvery       = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-check.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - everything the check run needs
type Configuration struct {
	Seed             int64                `gluamapper:"seed" json:"seed"`
	Rounds           int                  `gluamapper:"rounds" json:"rounds"`
	Operations       int                  `gluamapper:"operations" json:"operations"`
	KeyRange         int                  `gluamapper:"key_range" json:"key_range"`
	MaxAmount        int                  `gluamapper:"max_amount" json:"max_amount"`
	DeleteAllPercent int                  `gluamapper:"delete_all_percent" json:"delete_all_percent"`
	CheckEvery       int                  `gluamapper:"check_every" json:"check_every"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults, overridden by an optional configuration file
//
// an empty file name gives just the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{
		Seed:             0,
		Rounds:           defaultRounds,
		Operations:       defaultOperations,
		KeyRange:         defaultKeyRange,
		MaxAmount:        defaultMaxAmount,
		DeleteAllPercent: defaultDeleteAllPercent,
		CheckEvery:       defaultCheckEvery,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if "" == configurationFileName {
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// relative log directory is taken from the configuration file location
	if !filepath.IsAbs(options.Logging.Directory) {
		dataDirectory, _ := filepath.Split(configurationFileName)
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}

	return options, nil
}

// check values are usable
func (conf *Configuration) validate() error {
	if conf.Rounds < 0 || conf.Operations <= 0 || conf.CheckEvery <= 0 {
		return fault.ErrInvalidOperationCount
	}
	if conf.KeyRange <= 0 {
		return fault.ErrInvalidKeyRange
	}
	if conf.MaxAmount < 0 {
		return fault.ErrInvalidMaxAmount
	}
	if conf.DeleteAllPercent < 0 || conf.DeleteAllPercent > 100 {
		return fault.ErrInvalidPercentage
	}
	return nil
}
