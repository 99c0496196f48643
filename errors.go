// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/yaz0

package yaz0

import (
	"errors"
	"fmt"
)

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrCorruptStream   = errors.New("corrupt yaz0 stream")
	ErrTruncatedStream = errors.New("truncated yaz0 stream")
	ErrNoBlockFound    = errors.New("no yaz0 block found")
	ErrBadMagic        = errors.New("missing yaz0 magic")
	ErrNegativeOffset  = errors.New("offset must be non-negative")
	ErrNilReader       = errors.New("reader is nil")
)

// BlockError reports which block of a multi-block input failed.
// It unwraps to ErrCorruptStream or ErrTruncatedStream.
type BlockError struct {
	Index  int   // Sequence number the block would have had.
	Offset int   // Byte offset of the block magic in the source.
	Err    error // Underlying decode failure.
}

// Error implements error.
func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d at offset 0x%X: %v", e.Index, e.Offset, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *BlockError) Unwrap() error {
	return e.Err
}
