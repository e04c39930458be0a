package gplite

import "github.com/evoflow/gp-lite/gplite/selector"

// Option configures generic, type-parameterized injections that cannot
// live on the JSON-serializable Config: a custom Selector and Hooks. See
// config.go's RNG field comment for why these are split out.
type Option[T any] func(*engineOptions[T])

type engineOptions[T any] struct {
	selector selector.Selector
	hooks    Hooks[T]
}

// WithSelector overrides the default tournament selector.
func WithSelector[T any](s selector.Selector) Option[T] {
	return func(o *engineOptions[T]) { o.selector = s }
}

// WithHooks installs OnGenerationStart/OnGenerationEnd observers.
func WithHooks[T any](h Hooks[T]) Option[T] {
	return func(o *engineOptions[T]) { o.hooks = h }
}
