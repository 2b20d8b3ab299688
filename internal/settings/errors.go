package settings

import (
	"errors"
	"fmt"
)

// ErrPermissionDenied is returned by providers when the write-settings
// permission has not been granted.
var ErrPermissionDenied = errors.New("WRITE_SETTINGS permission not granted")

// ParseError reports raw input that cannot be coerced to a ValueType.
type ParseError struct {
	Type  ValueType
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %v", e.Type, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ProviderError reports a failure returned by the settings provider.
type ProviderError struct {
	Op  string // "get" or "put"
	Key Key
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Key.Namespace.Table(), e.Key.Setting, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
