package coding

import (
	"errors"
	"fmt"
)

//goland:noinspection ALL
var (
	ErrConversionFailed = errors.New("coding: conversion failed")
	ErrInvalidInput     = errors.New("coding: input contains invalid sequences")
	ErrShortBuffer      = errors.New("coding: output buffer exhausted")
)

// InvalidSequenceError describes the first invalid sequence found by a scan
// together with the total number of bytes implicated in all invalid
// sequences.
type InvalidSequenceError struct {
	Kind   DecodeError
	Offset int
	Bytes  int
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("coding: %s at byte offset %d (%d invalid bytes)", e.Kind, e.Offset, e.Bytes)
}

func (e *InvalidSequenceError) Unwrap() error { return ErrInvalidInput }
