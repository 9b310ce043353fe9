// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrCheckFailed           = ProcessError("check failed")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrEmptyCollection       = NotFoundError("collection is empty")
	ErrHeightMismatch        = InvalidError("node height does not match its sub-trees")
	ErrInvalidCount          = InvalidError("node count is not positive")
	ErrInvalidKeyRange       = InvalidError("key range must be positive")
	ErrInvalidLoggerChannel  = ProcessError("invalid logger channel")
	ErrInvalidMaxAmount      = InvalidError("maximum amount must not be negative")
	ErrInvalidOperationCount = InvalidError("operation count must be positive")
	ErrInvalidPercentage     = InvalidError("percentage must be in the range 0..100")
	ErrKeyOutOfOrder         = InvalidError("key out of order")
	ErrNegativeAmount        = InvalidError("amount must not be negative")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrStaleHeight           = InvalidError("cached child height is stale")
	ErrUnbalanced            = InvalidError("sub-tree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
