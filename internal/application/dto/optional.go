package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distingue los tres estados de un campo en una actualización parcial:
// ausente (Set=false), presente con null (Null=true) y presente con valor.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some construye un Optional presente con valor.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null construye un Optional presente con null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// HasValue indica si el campo vino con un valor no nulo.
func (o Optional[T]) HasValue() bool { return o.Set && !o.Null }

// Ptr devuelve nil si el campo vino null (o ausente) y un puntero al valor si no.
func (o Optional[T]) Ptr() *T {
	if !o.HasValue() {
		return nil
	}
	v := o.Value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
