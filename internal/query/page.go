package query

// Paging limits. A non-positive limit falls back to DefaultLimit and larger
// limits are capped at MaxLimit.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page selects a window of an ordered result.
type Page struct {
	Offset int
	Limit  int
}

// Normalize clamps a negative offset to zero and brings the limit into
// (0, MaxLimit].
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Paginate applies a normalized page to items. An offset past the end yields
// an empty slice, never an error.
func Paginate[T any](items []T, p Page) []T {
	p = p.Normalize()
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}
