package aci

import (
	"errors"
	"fmt"
)

// Scan errors.
var (
	ErrUnterminatedValue = errors.New("aci: unterminated value")
	ErrUnclosedGroup     = errors.New("aci: unclosed parenthesis")
	ErrDanglingName      = errors.New("aci: name without value")
)

// Lookup and assembly errors.
var (
	ErrNoName      = errors.New("aci: no acl name")
	ErrEmptyTarget = errors.New("aci: target is required")
	ErrNilDraft    = errors.New("aci: draft is nil")
)

// ScanError reports the byte position at which scanning stopped.
type ScanError struct {
	Position int
	Reason   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%v at position %d", e.Reason, e.Position)
}

func (e *ScanError) Unwrap() error {
	return e.Reason
}

// AssemblyError is returned when a draft cannot be turned into ACI text.
type AssemblyError struct {
	Field  string
	Reason error
}

func (e *AssemblyError) Error() string {
	if e.Field == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%v (field %s)", e.Reason, e.Field)
}

func (e *AssemblyError) Unwrap() error {
	return e.Reason
}
