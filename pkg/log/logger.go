// Copyright 2026 The Vela Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Flag bits control the log header format.
type Flag int

const (
	Lmode Flag = 1 << iota // leading level letter: I, W, E, F, D
	Ldate                  // yymmdd
	Ltime                  // hh:mm:ss
	Lmicroseconds          // hh:mm:ss.micros, implies Ltime
	Lshortfile             // file.go:line
	LUTC                   // timestamps in UTC

	LstdFlags = Lmode | Ldate | Ltime | Lmicroseconds | Lshortfile
)

// Logger writes leveled logs to an io.Writer, with the header format
// determined by the flags set. The header under LstdFlags:
//
//	Myymmdd hh:mm:ss.micros file.go:ln] message
//	I260115 06:33:04.606396 run.go:42] message
type Logger struct {
	w    io.Writer
	flag Flag
}

type option func(*Logger)

// Writer configures the destination of emitted logs.
func Writer(w io.Writer) option {
	return func(l *Logger) { l.w = w }
}

// Flags configures the log header format.
func Flags(f Flag) option {
	return func(l *Logger) { l.flag = f }
}

// New returns a Logger writing to a synchronized os.Stderr with the standard
// header, overridden by the provided options, if any.
func New(options ...option) *Logger {
	l := &Logger{w: DefaultWriter(), flag: LstdFlags}
	for _, option := range options {
		option(l)
	}
	return l
}

// Discarder returns a Logger configured to discard all writes.
func Discarder() *Logger {
	return New(Writer(io.Discard))
}

// Info logs to the INFO log in the manner of fmt.Println.
func (l *Logger) Info(v ...interface{}) {
	l.log(InfoMode, fmt.Sprintln(v...))
}

// Infof logs to the INFO log in the manner of fmt.Printf; a newline is
// appended.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.log(InfoMode, fmt.Sprintf(format+"\n", v...))
}

// Warn logs to the WARN log in the manner of fmt.Println.
func (l *Logger) Warn(v ...interface{}) {
	l.log(WarnMode, fmt.Sprintln(v...))
}

// Warnf logs to the WARN log in the manner of fmt.Printf; a newline is
// appended.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.log(WarnMode, fmt.Sprintf(format+"\n", v...))
}

// Error logs to the ERROR log in the manner of fmt.Println.
func (l *Logger) Error(v ...interface{}) {
	l.log(ErrorMode, fmt.Sprintln(v...))
}

// Errorf logs to the ERROR log in the manner of fmt.Printf; a newline is
// appended.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.log(ErrorMode, fmt.Sprintf(format+"\n", v...))
}

// Fatal logs to the FATAL log in the manner of fmt.Println, then calls
// os.Exit(255). Fatal statements are never filtered.
func (l *Logger) Fatal(v ...interface{}) {
	l.log(FatalMode, fmt.Sprintln(v...))
	os.Exit(255)
}

// Fatalf logs to the FATAL log in the manner of fmt.Printf, then calls
// os.Exit(255). Fatal statements are never filtered.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.log(FatalMode, fmt.Sprintf(format+"\n", v...))
	os.Exit(255)
}

// Debug logs to the DEBUG log in the manner of fmt.Println.
func (l *Logger) Debug(v ...interface{}) {
	l.log(DebugMode, fmt.Sprintln(v...))
}

// Debugf logs to the DEBUG log in the manner of fmt.Printf; a newline is
// appended.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.log(DebugMode, fmt.Sprintf(format+"\n", v...))
}

// log is only to be called from the public wrappers above; caller depth
// assumes exactly one intervening frame.
func (l *Logger) log(lmode Mode, data string) {
	if (GetGlobalLogMode()&lmode) == DisabledMode && (lmode&FatalMode) == DisabledMode {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "[???]", -1
	}

	var buf bytes.Buffer
	buf.Write(l.header(lmode, time.Now(), filepath.Base(file), line))
	buf.WriteString(data)
	l.w.Write(buf.Bytes())
}

func (l *Logger) header(lmode Mode, t time.Time, file string, line int) []byte {
	var b []byte
	buf := &b
	if l.flag&Lmode != 0 {
		*buf = append(*buf, lmode.byte())
	}
	if l.flag&LUTC != 0 {
		t = t.UTC()
	}
	if l.flag&(Ldate|Ltime|Lmicroseconds) != 0 {
		datef := l.flag&Ldate != 0
		timef := l.flag&(Ltime|Lmicroseconds) != 0
		if datef {
			year, month, day := t.Date()
			if year < 2000 {
				year = 2000
			}
			itoa(buf, year-2000, 2)
			itoa(buf, int(month), 2)
			itoa(buf, day, 2)
		}
		if datef && timef {
			*buf = append(*buf, ' ')
		}
		if timef {
			hour, min, sec := t.Clock()
			itoa(buf, hour, 2)
			*buf = append(*buf, ':')
			itoa(buf, min, 2)
			*buf = append(*buf, ':')
			itoa(buf, sec, 2)
			if l.flag&Lmicroseconds != 0 {
				*buf = append(*buf, '.')
				itoa(buf, t.Nanosecond()/1e3, 6)
			}
		}
	}
	*buf = append(*buf, ' ')
	if l.flag&Lshortfile != 0 {
		*buf = append(*buf, file...)
		*buf = append(*buf, ':')
		itoa(buf, line, -1)
		*buf = append(*buf, "] "...)
	}
	return b
}

// Cheap integer to fixed-width decimal ASCII. Give a negative width to avoid
// zero-padding.
func itoa(buf *[]byte, i int, wid int) {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}
