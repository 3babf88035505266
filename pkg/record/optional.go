package record

import "encoding/json"

// Optional holds a value that is either present or absent. Absent values
// encode as JSON null and are dropped by omitzero.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Or returns the value or fallback when absent.
func (o Optional[T]) Or(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

func (o Optional[T]) IsSet() bool {
	return o.ok
}

func (o Optional[T]) IsZero() bool {
	return !o.ok
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte(`null`), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
