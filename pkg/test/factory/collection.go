package factory

import fab "github.com/Goldziher/fabricator"

func NewCollection[T any](customData ...map[string]any) T {
	return fab.New(*new(T)).Build(customData...)
}

func NewFlashcard[T any](customData ...map[string]any) T {
	return fab.New(*new(T)).Build(customData...)
}
