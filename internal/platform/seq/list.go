// Package seq expone listados perezosos y reiniciables con un indicador
// explícito de "vacío", para que los callers no confundan "nada que listar"
// con "un elemento en blanco".
package seq

import (
	"encoding/json"
	"iter"
)

// List es una foto (snapshot) de una colección al momento de listar.
// All() puede recorrerse cuantas veces se quiera.
type List[T any] struct {
	items []T
}

// Of copia items; mutaciones posteriores del slice original no afectan la lista.
func Of[T any](items []T) List[T] {
	if len(items) == 0 {
		return List[T]{}
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return List[T]{items: cp}
}

func (l List[T]) Empty() bool { return len(l.items) == 0 }

func (l List[T]) Len() int { return len(l.items) }

func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range l.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Map transforma perezosamente cada elemento.
func Map[T, U any](l List[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for it := range l.All() {
			if !yield(fn(it)) {
				return
			}
		}
	}
}

type wire[T any] struct {
	Items []T  `json:"items"`
	Empty bool `json:"empty"`
}

func (l List[T]) MarshalJSON() ([]byte, error) {
	items := l.items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(wire[T]{Items: items, Empty: len(items) == 0})
}

func (l *List[T]) UnmarshalJSON(b []byte) error {
	var w wire[T]
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*l = Of(w.Items)
	return nil
}
