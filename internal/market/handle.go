package market

// Handle is a rebindable, non-owning reference to a Market. Services hold a
// Handle instead of the market itself so a loaded game can swap the referent
// underneath them. Resolving an unbound handle reports a miss; callers go
// inert instead of crashing.
type Handle struct {
	m *Market
}

// NewHandle returns a handle bound to m (which may be nil).
func NewHandle(m *Market) *Handle {
	return &Handle{m: m}
}

// Bind points the handle at a new market. All holders of this handle see
// the rebinding.
func (h *Handle) Bind(m *Market) {
	h.m = m
}

// Resolve returns the referent, or (nil, false) when the handle is unbound.
func (h *Handle) Resolve() (*Market, bool) {
	if h == nil || h.m == nil {
		return nil, false
	}
	return h.m, true
}
