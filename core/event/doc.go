// Package event provides comparable event handlers and a subscription list.
//
// A wrapped object exposes an event as a pair of methods AddX(h)/RemoveX(h)
// taking a Handler[T]. Handlers compare by receiver, method name and registry,
// so an unsubscription built from the same names finds the earlier
// subscription:
//
//	type Button struct {
//	    clicked event.Source[ClickArgs]
//	}
//
//	func (b *Button) AddClicked(h event.Handler[ClickArgs])    { b.clicked.Add(h) }
//	func (b *Button) RemoveClicked(h event.Handler[ClickArgs]) { b.clicked.Remove(h) }
package event
