// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/countedavl/fault"
)

func TestScenarios(t *testing.T) {
	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			assert.NoError(t, s.run(), "scenario failed")
		})
	}
}

func TestRunScenarios(t *testing.T) {
	assert.NoError(t, runScenarios(logger.New("scenario")), "scenarios failed")
}

func TestRunScenariosStopsAtFailure(t *testing.T) {
	saved := scenarios
	defer func() {
		scenarios = saved
	}()

	ran := 0
	scenarios = []scenario{
		{"first", func() error { ran += 1; return nil }},
		{"broken", func() error { ran += 1; return fault.ErrUnbalanced }},
		{"never", func() error { ran += 1; return nil }},
	}

	err := runScenarios(logger.New("scenario"))
	assert.Equal(t, fault.ErrCheckFailed, err, "failure not reported")
	assert.Equal(t, 2, ran, "ran past the failure")
}
