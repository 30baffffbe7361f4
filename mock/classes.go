package mock

import (
	"errors"

	"github.com/anoideaopen/reflection/core/event"
)

// ErrFailed is returned by FunctionClass.Fail.
var ErrFailed = errors.New("function failed")

// EventArgs is the payload of EventClass.Event.
type EventArgs struct {
	Source string
}

// FunctionClass has methods with results.
type FunctionClass struct{}

func (c *FunctionClass) Function(i int) int { return i }

func (c *FunctionClass) Concat(a, b string) string { return a + b }

func (c *FunctionClass) Divide(a, b int) (int, int) { return a / b, a % b }

func (c *FunctionClass) Parse(s string) (int, error) {
	if s == "" {
		return 0, ErrFailed
	}
	return len(s), nil
}

func (c *FunctionClass) Fail() error { return ErrFailed }

func (c *FunctionClass) Describe(v any) string {
	if v == nil {
		return "nothing"
	}
	return "something"
}

// MethodClass has two overloads of Method, which Go can only express through
// a declaration; see Overloads.
type MethodClass struct {
	CorrectMethodExecuted bool
	WrongMethodExecuted   bool
	Received              []int
}

func (c *MethodClass) Method() { c.WrongMethodExecuted = true }

func (c *MethodClass) methodWithInt(i int) {
	c.CorrectMethodExecuted = true
	c.Received = append(c.Received, i)
}

func (c *MethodClass) Record(values ...int) { c.Received = append(c.Received, values...) }

// PropertyClass has a read-write, a write-only and a read-only property.
type PropertyClass struct {
	Property int

	writeOnly int
	created   string
}

func NewPropertyClass(property int) *PropertyClass {
	return &PropertyClass{Property: property, created: "fixture"}
}

func (c *PropertyClass) GetProperty() int { return c.Property }

func (c *PropertyClass) SetProperty(v int) { c.Property = v }

func (c *PropertyClass) SetWriteOnlyProperty(v int) { c.writeOnly = v }

func (c *PropertyClass) WriteOnlyValue() int { return c.writeOnly }

func (c *PropertyClass) Created() string { return c.created }

// EventClass raises Event with EventArgs.
type EventClass struct {
	event event.Source[EventArgs]
}

func (c *EventClass) AddEvent(h event.Handler[EventArgs]) { c.event.Add(h) }

func (c *EventClass) RemoveEvent(h event.Handler[EventArgs]) { c.event.Remove(h) }

func (c *EventClass) FireEvent() error {
	return c.event.Fire(c, EventArgs{Source: "EventClass"})
}

func (c *EventClass) Subscribers() int { return c.event.Len() }

// StringEventClass raises Event with a string payload.
type StringEventClass struct {
	event event.Source[string]
}

func (c *StringEventClass) AddEvent(h event.Handler[string]) { c.event.Add(h) }

func (c *StringEventClass) RemoveEvent(h event.Handler[string]) { c.event.Remove(h) }
