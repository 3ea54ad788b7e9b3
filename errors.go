package goreport

import "fmt"

// ConfigErrorKind classifies a configuration error.
type ConfigErrorKind int

const (
	MissingData ConfigErrorKind = iota + 1
	EmptyKeyList
	TooManyHeaderObjects
	MissingSumKey
)

func (k ConfigErrorKind) String() string {
	switch k {
	case MissingData:
		return "MissingData"
	case EmptyKeyList:
		return "EmptyKeyList"
	case TooManyHeaderObjects:
		return "TooManyHeaderObjects"
	case MissingSumKey:
		return "MissingSumKey"
	default:
		return fmt.Sprintf("ConfigErrorKind(%d)", int(k))
	}
}

// ConfigError reports invalid input to MakeDocument. It is always fatal for
// the call: no document is produced.
type ConfigError struct {
	Kind   ConfigErrorKind
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return "config error: " + e.Kind.String()
	}
	return "config error: " + e.Kind.String() + ": " + e.Detail
}

// Is reports whether target is a *ConfigError of the same kind, so that
// errors.Is(err, ErrMissingSumKey) matches regardless of Detail.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	return ok && t.Kind == e.Kind
}

// Sentinel configuration errors.
var (
	ErrMissingData          = &ConfigError{Kind: MissingData, Detail: "unable to map data, check the data and key map"}
	ErrEmptyKeyList         = &ConfigError{Kind: EmptyKeyList, Detail: "key list not provided"}
	ErrTooManyHeaderObjects = &ConfigError{Kind: TooManyHeaderObjects, Detail: "more than 3 header objects provided"}
	ErrMissingSumKey        = &ConfigError{Kind: MissingSumKey, Detail: "sum key not found"}
)

func configErrorf(kind ConfigErrorKind, format string, args ...any) error {
	return &ConfigError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
