package parway

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one work unit applied to one input element.
// TryMap produces one Result per element, recording failures in place
// instead of aborting the call.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	index     int
	value     T
	err       error
}

func Success[T any](index int, v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		index:     index,
		value:     v,
	}
}

func Failure[T any](index int, err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		index:     index,
		err:       err,
	}
}

// Value returns the successful result value.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error if the work unit failed.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Index is the element's position in the input sequence.
func (r Result[T]) Index() int {
	return r.index
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}
