package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any list endpoint can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers. The stores
// are in-memory slices, so plain offsets are stable enough.
type Params struct {
	Limit  int
	Offset int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Normalize returns params with the limit clamped and negative offsets
// reset to zero.
func Normalize(p Params) Params {
	p.Limit = NormalizeLimit(p.Limit)
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Slice applies the params to a slice length and returns the bounds
// [from, to) to reslice with. An offset past the end yields from == to.
func Slice(p Params, length int) (int, int) {
	p = Normalize(p)
	if p.Offset >= length {
		return length, length
	}
	end := p.Offset + p.Limit
	if end > length {
		end = length
	}
	return p.Offset, end
}
