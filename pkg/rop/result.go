package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result carries either a value or the error that replaced it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From folds a (value, error) pair into a Result.
func From[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(r)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Unpack returns the value and error as a Go pair.
func (r Result[T]) Unpack() (T, error) {
	return r.result, r.err
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
