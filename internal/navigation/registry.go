package navigation

// ScrollContainer exposes the scroll metrics of one page. Values are read on
// demand and never cached.
type ScrollContainer interface {
	ScrollTop() int
	ScrollHeight() int
	ClientHeight() int
	SetScrollTop(top int)
}

// Registry maps page indices to the scroll container currently mounted for
// that page.
type Registry struct {
	containers map[int]ScrollContainer
}

func NewRegistry() *Registry {
	return &Registry{containers: make(map[int]ScrollContainer)}
}

// Register attaches c to the page at index. A nil c unregisters it.
func (r *Registry) Register(index int, c ScrollContainer) {
	if c == nil {
		delete(r.containers, index)
		return
	}
	r.containers[index] = c
}

// Container returns the container for index, or nil when none is mounted
func (r *Registry) Container(index int) ScrollContainer {
	return r.containers[index]
}

// Len returns the number of mounted containers
func (r *Registry) Len() int {
	return len(r.containers)
}
