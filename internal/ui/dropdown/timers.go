package dropdown

type timerKind int

const (
	timerFrame timerKind = iota
	timerSettle
	timerReposition
	timerFocus
)

func (k timerKind) String() string {
	switch k {
	case timerFrame:
		return "frame"
	case timerSettle:
		return "settle"
	case timerReposition:
		return "reposition"
	case timerFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// timerMsg is delivered when a scheduled frame or timer fires.
type timerMsg struct {
	owner  string
	handle uint64
	kind   timerKind
}

// timerTable tracks live handles. A tick whose handle is no longer in the
// table was cancelled and is dropped on arrival.
type timerTable struct {
	next uint64
	live map[uint64]timerKind
}

func newTimerTable() timerTable {
	return timerTable{live: make(map[uint64]timerKind)}
}

func (t *timerTable) add(kind timerKind) uint64 {
	t.next++
	t.live[t.next] = kind
	return t.next
}

// take consumes a handle, reporting whether it was still live.
func (t *timerTable) take(handle uint64) (timerKind, bool) {
	kind, ok := t.live[handle]
	if ok {
		delete(t.live, handle)
	}
	return kind, ok
}

func (t *timerTable) cancel(handle uint64) {
	delete(t.live, handle)
}

func (t *timerTable) clear() {
	clear(t.live)
}

func (t *timerTable) len() int {
	return len(t.live)
}
