// Package feed polls a fetch function on a schedule and keeps the latest
// result as a loading/data/error state that HTTP handlers can serve.
package feed

import "context"

// State is the observable value of one data source.
type State[T any] struct {
	Data    *T      `json:"data"`
	Loading bool    `json:"loading"`
	Error   *string `json:"error"`
	IsDemo  bool    `json:"isDemo"`
}

// FetchFunc produces one fresh value.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// FromGenerator adapts an infallible generator.
func FromGenerator[T any](gen func() T) FetchFunc[T] {
	return func(context.Context) (T, error) { return gen(), nil }
}
