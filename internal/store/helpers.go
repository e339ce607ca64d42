package store

import (
	"dario.cat/mergo"
)

type record[T any] interface {
	*T
	GetID() string
	SetID(id string)
}

func indexByID[T any, P record[T]](items []T, id string) int {
	for i := range items {
		if P(&items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// removeByID returns items without the record identified by id
func removeByID[T any, P record[T]](items []T, id string) ([]T, bool) {
	return removeAt(items, indexByID[T, P](items, id))
}

// updateByID merges the non-zero fields of patch into the record identified
// by id, keeping its id
func updateByID[T any, P record[T]](items []T, id string, patch T) (bool, error) {
	i := indexByID[T, P](items, id)
	if i < 0 {
		return false, nil
	}
	if err := mergo.Merge(&items[i], patch, mergo.WithOverride); err != nil {
		return false, err
	}
	P(&items[i]).SetID(id)
	return true, nil
}

// removeAt returns items without index i. The input slice is not modified.
func removeAt[T any](items []T, i int) ([]T, bool) {
	if i < 0 || i >= len(items) {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}

// updateAt merges the non-zero fields of patch into items[i]
func updateAt[T any](items []T, i int, patch T) (bool, error) {
	if i < 0 || i >= len(items) {
		return false, nil
	}
	if err := mergo.Merge(&items[i], patch, mergo.WithOverride); err != nil {
		return false, err
	}
	return true, nil
}
