// Package common defines shared constants and sentinel errors used across
// the MultiLingo client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound            = errors.New("not found")
	ErrStoreNotInitialized = errors.New("local store not initialized")

	// Orchestration errors.
	ErrUnsupportedLanguagePair = errors.New("unsupported language pair")
	ErrOracleUnavailable       = errors.New("translation oracle unavailable")

	// Remote store errors.
	ErrRemoteWriteFailed = errors.New("remote write failed")
	ErrRemoteReadCorrupt = errors.New("remote payload corrupt")
	ErrUnavailable       = errors.New("remote store unavailable")

	// Auth errors (invalid or malformed device token).
	ErrInvalidToken = errors.New("invalid token")
)
