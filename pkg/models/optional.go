package models

import "encoding/json"

// Optional is a tri-state patch field: absent (keep the stored value),
// present-null (clear a nullable column), or present-value (overwrite).
// The zero value means absent; a field that appears in the request body is
// marked Set by UnmarshalJSON.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some returns a present-value Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null returns a present-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a nullable pointer: nil for absent or null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

// Apply overwrites dst when the field is present; present-null writes the
// zero value.
func (o Optional[T]) Apply(dst *T) {
	if !o.Set {
		return
	}
	if !o.Valid {
		var zero T
		*dst = zero
		return
	}
	*dst = o.Value
}

// ApplyPtr overwrites a nullable destination when the field is present;
// present-null clears it.
func (o Optional[T]) ApplyPtr(dst **T) {
	if !o.Set {
		return
	}
	if !o.Valid {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}
