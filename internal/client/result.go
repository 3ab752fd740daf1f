package client

// Result is the outcome of one request: a value, or an error whose kind
// (see KindOf) tells a renderer what went wrong.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func Failed[T any](err error) Result[T] { return Result[T]{Err: err} }

// From packs a (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failed[T](err)
	}
	return Ok(v)
}

func (r Result[T]) IsOK() bool { return r.Err == nil }

// Kind is "" on success.
func (r Result[T]) Kind() ErrorKind {
	if r.Err == nil {
		return ""
	}
	if k := KindOf(r.Err); k != "" {
		return k
	}
	return KindNetwork
}
