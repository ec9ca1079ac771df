/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interp

/*
Logger is the sink for the Print/Debug rule parameters and commands:
diagnostic-only side effects with no semantic effect on parsing. Any
type providing these three methods satisfies Logger, so
ruparse.NullLogger/MemoryLogger/StdOutLogger can be passed in without
this package importing the root package.
*/
type Logger interface {
	LogDebug(m ...interface{})
	LogInfo(m ...interface{})
	LogError(m ...interface{})
}

/*
discardLogger is used when Parse is given a nil Logger.
*/
type discardLogger struct{}

func (discardLogger) LogDebug(m ...interface{}) {}
func (discardLogger) LogInfo(m ...interface{})  {}
func (discardLogger) LogError(m ...interface{}) {}
