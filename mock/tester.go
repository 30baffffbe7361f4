package mock

import (
	"reflect"

	"github.com/anoideaopen/reflection/core/impl"
	"github.com/anoideaopen/reflection/core/meta"
)

// Tester is a facade over a wrapped fixture. Its handler methods count the
// events they receive.
type Tester struct {
	*impl.Base

	EventCalled  int
	LastSender   any
	StringEvents []string
	hiddenEvents int
}

// NewTester wraps instance with Tester as the handler owner. The registry
// carries the Overloads declarations.
func NewTester(instance any, opts ...impl.Option) (*Tester, error) {
	reg, err := Overloads()
	if err != nil {
		return nil, err
	}

	t := &Tester{}
	opts = append([]impl.Option{impl.WithRegistry(reg), impl.WithHandlers(t)}, opts...)

	base, err := impl.New(instance, opts...)
	if err != nil {
		return nil, err
	}
	t.Base = base

	return t, nil
}

func (t *Tester) HandleEvent(sender any, _ EventArgs) {
	t.EventCalled++
	t.LastSender = sender
}

func (t *Tester) HandleString(_ any, s string) {
	t.StringEvents = append(t.StringEvents, s)
}

func (t *Tester) HandleWithoutSender(_ EventArgs) {}

func (t *Tester) handleHidden(_ any, _ EventArgs) { t.hiddenEvents++ }

// HiddenEvents counts the events received by the unexported handler.
func (t *Tester) HiddenEvents() int { return t.hiddenEvents }

// Overloads declares what reflection cannot see on the fixtures:
// MethodClass.Method(int) next to the native MethodClass.Method(), and the
// unexported Tester handler as HandleHidden.
func Overloads() (*meta.Registry, error) {
	reg := meta.NewRegistry()

	err := reg.Declare(reflect.TypeOf(&MethodClass{}), func(d *meta.Declaration) {
		d.Method("Method", (*MethodClass).methodWithInt)
	})
	if err != nil {
		return nil, err
	}

	err = reg.Declare(reflect.TypeOf(&Tester{}), func(d *meta.Declaration) {
		d.Method("HandleHidden", (*Tester).handleHidden)
	})
	if err != nil {
		return nil, err
	}

	return reg, nil
}
