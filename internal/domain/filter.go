package domain

// Page bounds for list operations.
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// NormalizePage clamps a limit/offset pair to sane bounds: a zero or negative
// limit becomes DefaultPageSize, a limit above MaxPageSize is capped, and a
// negative offset becomes zero.
func NormalizePage(limit, offset int) (int, int) {
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
