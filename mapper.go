// Package libpolicy resolves library inclusion policies from raw settings.
package libpolicy

import (
	"github.com/rs/zerolog"
)

var nopLogger = zerolog.Nop()

// Mapper turns raw policy settings into a Policy. It holds no mutable
// state and is safe for concurrent use. The zero value is ready to use
// and logs nothing.
type Mapper struct {
	logger *zerolog.Logger
}

// NewMapper creates a Mapper configured by opts.
func NewMapper(opts ...func(*Mapper)) *Mapper {
	m := &Mapper{}
	for _, o := range opts {
		o(m)
	}
	return m
}

// WithLogger sets the logger used to report resolutions at debug level.
func WithLogger(l zerolog.Logger) func(*Mapper) {
	return func(m *Mapper) { m.logger = &l }
}

func (m *Mapper) log() *zerolog.Logger {
	if m.logger == nil {
		return &nopLogger
	}
	return m.logger
}

// Resolve validates rawName and rawArgs against the catalog and builds the
// matching Policy. Nil and empty rawArgs are equivalent.
func (m *Mapper) Resolve(rawName string, rawArgs []string) (Policy, error) {
	p, err := resolve(rawName, rawArgs)
	if err != nil {
		m.log().Debug().
			Str("name", rawName).
			Int("args", len(rawArgs)).
			Err(err).
			Msg("library policy rejected")
		return nil, err
	}
	m.log().Debug().Stringer("policy", p).Msg("library policy resolved")
	return p, nil
}

// MapOptions resolves the policy described by opts.
func (m *Mapper) MapOptions(opts Options) (Policy, error) {
	return m.Resolve(opts.PolicyName, opts.Args)
}

// Resolve is Mapper.Resolve on a default Mapper.
func Resolve(rawName string, rawArgs []string) (Policy, error) {
	return resolve(rawName, rawArgs)
}

func resolve(rawName string, rawArgs []string) (Policy, error) {
	v, ok := FindByName(rawName)
	if !ok {
		return nil, NewInvalidPolicyNameError(rawName)
	}
	if !v.AcceptsArgs && len(rawArgs) > 0 {
		return nil, NewUnexpectedArgsError(rawName, rawArgs)
	}

	switch v.Name {
	case NameUseAll:
		return UseAll{}, nil
	case NameIgnoreAll:
		return IgnoreAll{}, nil
	case NameUseOnly:
		p, err := NewUseOnly(rawArgs...)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, NewInvalidPolicyNameError(rawName)
}
