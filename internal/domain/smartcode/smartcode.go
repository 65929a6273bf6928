// Package smartcode decodes the hierarchical classification string carried
// by every record: HERA.<DOMAIN>.<MODULE>.<FUNCTION>.<TYPE>.v<N>. The code
// both names the business meaning of a record and selects the rule
// processor that derives ledger postings from it.
package smartcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hera-erp/core/internal/domain/shared"
)

// ProductPrefix is the literal first segment of every smart code
const ProductPrefix = "HERA"

// MinSegments is the minimum number of dot-separated segments. Anything
// shorter is rejected before dispatch is attempted.
const MinSegments = 3

// ErrMalformed is returned for codes that fail the structural check
var ErrMalformed = shared.NewDomainError("MALFORMED_CODE", "smart code must have at least 3 dot-separated segments")

// Code is a decoded smart code. The zero value is not valid; obtain one
// through Parse.
type Code struct {
	raw      string
	segments []string
	version  int
	hasVer   bool
}

// Parse decodes a smart code string. It fails closed: fewer than three
// segments or an empty segment is a malformed code, and no dispatch may be
// attempted for it. Domain matching stays case-sensitive as authored.
func Parse(raw string) (Code, error) {
	segments := strings.Split(raw, ".")
	if len(segments) < MinSegments {
		return Code{}, fmt.Errorf("%w: %q has %d segment(s)", ErrMalformed, raw, len(segments))
	}
	for _, seg := range segments {
		if seg == "" {
			return Code{}, fmt.Errorf("%w: %q contains an empty segment", ErrMalformed, raw)
		}
	}

	c := Code{raw: raw, segments: segments}
	last := segments[len(segments)-1]
	if rest, ok := strings.CutPrefix(last, "v"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 0 {
			c.version = n
			c.hasVer = true
		}
	}
	return c, nil
}

// MustParse parses a smart code and panics on error. For tests and
// compile-time constants only.
func MustParse(raw string) Code {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the original code string
func (c Code) String() string {
	return c.raw
}

// Product returns the first segment
func (c Code) Product() string {
	return c.segments[0]
}

// Domain returns the second segment, the key for rule dispatch
func (c Code) Domain() string {
	return c.segments[1]
}

// Module returns the third segment
func (c Code) Module() string {
	return c.segments[2]
}

// Function returns the fourth segment, or "" when absent
func (c Code) Function() string {
	if len(c.segments) < 4 {
		return ""
	}
	return c.segments[3]
}

// Segments returns a copy of all segments
func (c Code) Segments() []string {
	out := make([]string, len(c.segments))
	copy(out, c.segments)
	return out
}

// Version returns the trailing v<N> version, ok=false when the last
// segment is not a version literal
func (c Code) Version() (int, bool) {
	return c.version, c.hasVer
}

// typeSegments returns the segments between the product prefix and the
// version literal (excluding the version when present)
func (c Code) typeSegments() []string {
	end := len(c.segments)
	if c.hasVer {
		end--
	}
	return c.segments[:end]
}

// MatchesSuffix reports whether the given segments are exactly the trailing
// segments of the code, anchored just before the version literal. This is
// exact-segment matching: a code ending ...ITEM.RETAIL.v1 matches
// ("ITEM","RETAIL") but a code ending ...ITEM.RETAIL.OLD.v1 does not.
func (c Code) MatchesSuffix(suffix ...string) bool {
	ts := c.typeSegments()
	if len(suffix) == 0 || len(suffix) > len(ts) {
		return false
	}
	offset := len(ts) - len(suffix)
	for i, seg := range suffix {
		if ts[offset+i] != seg {
			return false
		}
	}
	return true
}
