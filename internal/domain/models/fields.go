package models

import "iter"

// Record is implemented by every entity the console lists.
type Record interface {
	Fields() iter.Seq2[string, any]
}

type field struct {
	key   string
	value any
}

func seq(fs ...field) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, f := range fs {
			if !yield(f.key, f.value) {
				return
			}
		}
	}
}

// opt hands out nil for a missing optional value instead of a typed nil pointer.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
