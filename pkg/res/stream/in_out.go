package stream

import (
	"context"
	"sync"

	"github.com/ib-77/res3/pkg/res"
)

func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults feeds plain values into the pipeline as Ok results.
func ToChanResults[T any](ctx context.Context, values ...T) <-chan res.Result[T, error] {
	in := make(chan res.Result[T, error])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- res.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	v := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case first, ok := <-out:
			if ok {
				v = first
			}
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return v
}

func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	collected := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				collected = append(collected, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return collected
}
