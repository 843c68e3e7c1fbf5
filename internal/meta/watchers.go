// internal/meta/watchers.go
package meta

// watchers — список наблюдателей с отменой подписки, в порядке добавления.
type watchers[T any] struct {
	next int
	list []watcher[T]
}

type watcher[T any] struct {
	id int
	fn func(T)
}

func (w *watchers[T]) add(fn func(T)) func() {
	w.next++
	id := w.next
	w.list = append(w.list, watcher[T]{id: id, fn: fn})
	return func() {
		for i, it := range w.list {
			if it.id == id {
				w.list = append(w.list[:i:i], w.list[i+1:]...)
				return
			}
		}
	}
}

func (w *watchers[T]) notify(v T) {
	for _, it := range w.list {
		it.fn(v)
	}
}
