package props

type EventType uint8

const (
	Invalidated EventType = iota
	Changed
)

func (t EventType) String() string {
	switch t {
	case Invalidated:
		return "INVALIDATED"
	case Changed:
		return "CHANGED"
	default:
		return "UNKNOWN"
	}
}

type Event[T Scalar] interface {
	Source() *ReadOnlyProperty[T]
	Type() EventType
}

type InvalidationEvent[T Scalar] struct {
	source *ReadOnlyProperty[T]
}

func (e InvalidationEvent[T]) Source() *ReadOnlyProperty[T] { return e.source }
func (e InvalidationEvent[T]) Type() EventType              { return Invalidated }

type ChangeEvent[T Scalar] struct {
	source   *ReadOnlyProperty[T]
	OldValue T
	NewValue T
}

func (e ChangeEvent[T]) Source() *ReadOnlyProperty[T] { return e.source }
func (e ChangeEvent[T]) Type() EventType              { return Changed }
