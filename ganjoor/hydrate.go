package ganjoor

import (
	"encoding/json"
	"fmt"
)

// builder constructs an entity from its raw remote mapping.
type builder[T any] func(raw json.RawMessage) (T, error)

// leaf returns a builder for entities without nested raw fields.
func leaf[T any](d decoder) builder[T] {
	return func(raw json.RawMessage) (T, error) {
		var v T
		err := d.record(raw, &v)
		return v, err
	}
}

func hydrateList[T any](raw json.RawMessage, build builder[T]) ([]T, error) {
	if isNull(raw) {
		return []T{}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := build(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func hydrateOne[T any](raw json.RawMessage, build builder[T]) (*T, error) {
	if isNull(raw) {
		return nil, nil
	}
	v, err := build(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// lazyList hydrates a nested collection that was validated at construction.
func lazyList[T any](raw json.RawMessage, build builder[T]) []T {
	items, err := hydrateList(raw, build)
	if err != nil {
		return []T{}
	}
	return items
}

// lazyOne hydrates a nested entity that was validated at construction.
func lazyOne[T any](raw json.RawMessage, build builder[T]) *T {
	v, err := hydrateOne(raw, build)
	if err != nil {
		return nil
	}
	return v
}

// validation records the first hydration failure of a nested field.
type validation struct {
	err error
}

func (v *validation) check(field string, err error) {
	if v.err == nil && err != nil {
		v.err = fmt.Errorf("%s: %w", field, err)
	}
}

func list[T any](v *validation, field string, raw json.RawMessage, build builder[T]) {
	_, err := hydrateList(raw, build)
	v.check(field, err)
}

func one[T any](v *validation, field string, raw json.RawMessage, build builder[T]) {
	_, err := hydrateOne(raw, build)
	v.check(field, err)
}
