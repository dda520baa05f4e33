package domain

// CallKind distinguishes the call boundaries a hook can observe.
type CallKind uint8

const (
	// CallEnter is a function being invoked.
	CallEnter CallKind = iota
	// CallReturn is a function returning.
	CallReturn
)

// CallEvent is one call boundary observed while a unit was running.
type CallEvent struct {
	Kind     CallKind
	Function string
	File     string
	Line     int
}
