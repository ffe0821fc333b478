package entity

import "fmt"

// LoginState is a step of a single login attempt.
//
//	awaiting-verification -> verified -> tokens-issued
//	awaiting-verification -> rejected | upstream-failed
type LoginState int

const (
	LoginStateAwaitingVerification LoginState = iota
	LoginStateVerified
	LoginStateTokensIssued
	LoginStateRejected
	LoginStateUpstreamFailed
)

func (s LoginState) String() string {
	switch s {
	case LoginStateAwaitingVerification:
		return "awaiting-verification"
	case LoginStateVerified:
		return "verified"
	case LoginStateTokensIssued:
		return "tokens-issued"
	case LoginStateRejected:
		return "rejected"
	case LoginStateUpstreamFailed:
		return "upstream-failed"
	default:
		return fmt.Sprintf("LoginState(%d)", int(s))
	}
}

// Terminal reports whether no transition leaves s.
func (s LoginState) Terminal() bool {
	switch s {
	case LoginStateTokensIssued, LoginStateRejected, LoginStateUpstreamFailed:
		return true
	default:
		return false
	}
}

// CanTransition reports whether next directly follows s.
func (s LoginState) CanTransition(next LoginState) bool {
	switch s {
	case LoginStateAwaitingVerification:
		return next == LoginStateVerified || next == LoginStateRejected || next == LoginStateUpstreamFailed
	case LoginStateVerified:
		return next == LoginStateTokensIssued
	default:
		return false
	}
}
