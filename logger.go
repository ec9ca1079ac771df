/*
 * ruparse
 *
 * Copyright 2024 The ruparse Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ruparse

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/krotik/common/datautil"
)

/*
Logger receives the Print/Debug rule parameters and commands:
diagnostic-only side effects with no semantic effect on parsing. A
Parser with no Logger set discards them.
*/
type Logger interface {
	LogDebug(m ...interface{})
	LogInfo(m ...interface{})
	LogError(m ...interface{})
}

/*
NullLogger discards every log message.
*/
type NullLogger struct{}

func NewNullLogger() *NullLogger { return &NullLogger{} }

func (nl *NullLogger) LogError(m ...interface{}) {}
func (nl *NullLogger) LogInfo(m ...interface{})  {}
func (nl *NullLogger) LogDebug(m ...interface{}) {}

/*
MemoryLogger collects log messages in a fixed-size ring buffer, so a
long-running parser cannot grow its log unboundedly.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

func (ml *MemoryLogger) LogError(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

func (ml *MemoryLogger) LogInfo(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprint(m...))
}

func (ml *MemoryLogger) LogDebug(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

/*
Slice returns the contents of the current log as a slice of strings, in
the order they were logged.
*/
func (ml *MemoryLogger) Slice() []string {
	sl := ml.RingBuffer.Slice()
	ret := make([]string, len(sl))
	for i, lm := range sl {
		ret[i] = lm.(string)
	}
	return ret
}

/*
StdOutLogger writes log messages to stdout via the standard log package.
*/
type StdOutLogger struct {
	stdlog func(v ...interface{})
}

func NewStdOutLogger() *StdOutLogger {
	return &StdOutLogger{log.New(os.Stdout, "", log.LstdFlags).Print}
}

func (sl *StdOutLogger) LogError(m ...interface{}) {
	sl.stdlog(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

func (sl *StdOutLogger) LogInfo(m ...interface{}) {
	sl.stdlog(fmt.Sprint(m...))
}

func (sl *StdOutLogger) LogDebug(m ...interface{}) {
	sl.stdlog(fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

/*
BufferLogger writes log messages to an arbitrary io.Writer, one line per
message.
*/
type BufferLogger struct {
	buf io.Writer
}

func NewBufferLogger(buf io.Writer) *BufferLogger {
	return &BufferLogger{buf}
}

func (bl *BufferLogger) LogError(m ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

func (bl *BufferLogger) LogInfo(m ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprint(m...))
}

func (bl *BufferLogger) LogDebug(m ...interface{}) {
	fmt.Fprintln(bl.buf, fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}
