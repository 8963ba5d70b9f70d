// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzw

package lzw

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInvalidMode = errors.New("invalid reset mode")
	ErrInvalidCode = errors.New("codeword out of range")
	ErrTruncated   = errors.New("unexpected end of input before end-of-stream code")
	ErrNilReader   = errors.New("reader is nil")
	ErrNilWriter   = errors.New("writer is nil")
)
