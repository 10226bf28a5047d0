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

// Package log implements leveled execution logs for the vela binaries.
//
// Basic usage:
//
//	logger := log.New()
//	logger.Info("hello, world")
//
// Loggers are configured with variadic options at construction, and can be
// made to write to rotating files, multiplex destinations, or format headers
// differently:
//
//	writer := log.MultiWriter(log.DefaultWriter(),
//		log.LogRotationWriter("/logs", 50<<20 /* 50 MiB */))
//	logger := log.New(log.Writer(writer), log.Flags(log.Lmode|log.Ltime|log.Lshortfile))
//
// The global log mode filters emission across all loggers at runtime:
//
//	log.SetGlobalLogMode(log.DefaultMode | log.DebugMode)
package log
