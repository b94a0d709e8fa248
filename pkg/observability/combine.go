package observability

import "github.com/aretw0/molcanvas/pkg/domain"

// Combine merges several hook sets into one. Each event is delivered to every
// set, in argument order. Nil callbacks are skipped.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, s := range sets {
		out.OnAttach = chain(out.OnAttach, s.OnAttach)
		out.OnDetach = chain(out.OnDetach, s.OnDetach)
		out.OnAction = chain(out.OnAction, s.OnAction)
		out.OnCursor = chain(out.OnCursor, s.OnCursor)
		out.OnMessage = chain(out.OnMessage, s.OnMessage)
	}
	return out
}

func chain[E any](first, next func(E)) func(E) {
	switch {
	case first == nil:
		return next
	case next == nil:
		return first
	}
	return func(e E) {
		first(e)
		next(e)
	}
}
