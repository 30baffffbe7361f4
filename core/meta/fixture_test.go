package meta

import "errors"

var errBoom = errors.New("boom")

type BaseClass struct {
	id int
}

func (b *BaseClass) ID() int { return b.id }

type Sample struct {
	BaseClass

	count    int
	title    string
	secret   string
	handlers []func(any, string)
}

func (s *Sample) Method() { s.count++ }

func (s *Sample) Sum(a, b int) int { return a + b }

func (s *Sample) Fail() error { return errBoom }

func (s *Sample) Count() int { return s.count }

func (s *Sample) GetTitle() string { return s.title }

func (s *Sample) SetTitle(v string) { s.title = v }

func (s *Sample) SetSecret(v string) error {
	s.secret = v
	return nil
}

func (s *Sample) SetCount(v string) {}

func (s *Sample) AddChanged(h func(any, string)) { s.handlers = append(s.handlers, h) }

func (s *Sample) RemoveChanged(h func(any, string)) {}

func (s *Sample) AddBroken(h func(any, string)) {}

func (s *Sample) RemoveBroken(h func(any, int)) {}

func (s *Sample) methodWithInt(i int) { s.count += i }

func (s *Sample) methodScaled(i int, factor float64) { s.count += int(float64(i) * factor) }

func (s *Sample) secretValue() string { return s.secret }

func newSample() *Sample {
	return &Sample{BaseClass: BaseClass{id: 7}}
}

type Greeter interface {
	Greet(name string) string
}

type pair[K comparable, V any] struct {
	Key   K
	Value V
}

func (p *pair[K, V]) First() K { return p.Key }
