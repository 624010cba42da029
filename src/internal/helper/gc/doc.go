// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library to provide a consistent interface for
// buffer management across the application, and uses it to read certificate
// inputs and to build structured log lines.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc

import "errors"

// ErrTooLarge is returned when an input exceeds the configured read limit.
var ErrTooLarge = errors.New("gc: input too large")
