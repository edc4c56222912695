package tools

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/rentals/pkg/domain"
)

var (
	// DefaultMaxInputSize bounds query and need arguments, in bytes.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize overrides DefaultMaxInputSize when set to a positive integer.
	EnvMaxInputSize = "RENTALS_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// normalizeText turns a free-text argument into the form the store and the
// recommendation policy match against: lower-cased, with line breaks and tabs
// folded to spaces and every other control character dropped.
// Oversized or malformed input is rejected as domain.ErrInvalidArguments.
func normalizeText(desc domain.ToolDescriptor, field, value string) (string, error) {
	fail := func(err error) (string, error) {
		return "", fmt.Errorf("%w: argument %q for tool %q: %w", domain.ErrInvalidArguments, field, desc.Name, err)
	}

	if limit := maxInputSize(); len(value) > limit {
		return fail(fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(value), limit))
	}
	if !utf8.ValidString(value) {
		return fail(ErrInvalidUTF8)
	}

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			// ESC, NUL, BEL and friends never reach a matcher.
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String(), nil
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
