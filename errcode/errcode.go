// Package errcode claims this module's CodeError range (starting at
// errors.MinAvailable) and provides constructors for the five error kinds
// spec.md §7 names: ConnectError, StartError, InterruptedError, Unsupported
// and IllegalConfiguration (the last always surfaced wrapped as StartError).
package errcode

import (
	liberr "github.com/sabouaram/daemonconnector/errors"
)

const (
	CodeConnect liberr.CodeError = liberr.CodeError(liberr.MinAvailable) + iota
	CodeStart
	CodeInterrupted
	CodeUnsupported
	CodeIllegalConfiguration
)

func init() {
	liberr.RegisterIdFctMessage(CodeConnect, message)
}

func message(code liberr.CodeError) string {
	switch code {
	case CodeConnect:
		return "failed to connect to the daemon"
	case CodeStart:
		return "failed to start the daemon process"
	case CodeInterrupted:
		return "interrupted while waiting for the daemon"
	case CodeUnsupported:
		return "embedded daemon mode is not supported in this configuration"
	case CodeIllegalConfiguration:
		return "required daemon artifacts were not found"
	default:
		return liberr.UnknownMessage
	}
}

// Connect builds a ConnectError, optionally wrapping a lower-level cause.
func Connect(parent ...error) liberr.Error {
	return CodeConnect.Error(parent...)
}

// Start builds a StartError, optionally wrapping a lower-level cause.
func Start(parent ...error) liberr.Error {
	return CodeStart.Error(parent...)
}

// Interrupted builds an InterruptedError. Always surfaced immediately
// (spec.md §7); never recovered locally.
func Interrupted(parent ...error) liberr.Error {
	return CodeInterrupted.Error(parent...)
}

// Unsupported builds an Unsupported error for the embedded/native-image
// conflict (spec.md §4.7, §7).
func Unsupported(parent ...error) liberr.Error {
	return CodeUnsupported.Error(parent...)
}

// IllegalConfiguration builds the missing-artifact error and immediately
// wraps it as a StartError, per spec.md §7 ("Surfaced as StartError").
func IllegalConfiguration(parent ...error) liberr.Error {
	return CodeStart.Error(CodeIllegalConfiguration.Error(parent...))
}
