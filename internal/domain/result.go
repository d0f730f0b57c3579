package domain

// Origin tells which branch of a fetch-with-fallback produced a Result.
type Origin string

const (
	OriginCMS      Origin = "cms"
	OriginFeed     Origin = "feed"
	OriginFallback Origin = "fallback"
)

// Result carries fetched items together with where they came from.
// Reason is nil unless Origin is OriginFallback.
type Result[T any] struct {
	Items  []T
	Origin Origin
	Reason error
}

func FromCMS[T any](items []T) Result[T] {
	return Result[T]{Items: items, Origin: OriginCMS}
}

func Fallback[T any](items []T, reason error) Result[T] {
	return Result[T]{Items: items, Origin: OriginFallback, Reason: reason}
}

// IsFallback reports whether the static fixtures were served.
func (r Result[T]) IsFallback() bool {
	return r.Origin == OriginFallback
}
