// Package cq implements simple concurrent queues.
package cq

import (
	"log/slog"
	"sync"

	"deedles.dev/xlist"
)

// A Queue concurrently collects values and returns them in FIFO
// order. A zero value Queue is ready to use.
//
// Buffered values are held in an [xlist.LinkedList] that only the
// Queue's own goroutine ever touches.
type Queue[T any] struct {
	start sync.Once

	done  chan struct{}
	close sync.Once

	add chan T
	get chan T
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.done = make(chan struct{})
		q.add = make(chan T)
		q.get = make(chan T)

		go q.run()
	})
}

// Stop stops the queue. Values still buffered are discarded.
func (q *Queue[T]) Stop() {
	q.init()
	q.close.Do(func() {
		close(q.done)
	})
}

// Add returns a channel that enqueues values sent to it. This channel
// must not be closed.
func (q *Queue[T]) Add() chan<- T {
	q.init()
	return q.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.init()
	return q.get
}

func (q *Queue[T]) run() {
	var s xlist.LinkedList[T]
	var get chan T

	defer func() {
		if !s.Empty() {
			slog.Debug("queue stopped with pending values", "pending", s.Len())
		}
		s.Clear()
		close(q.get)
	}()

	for {
		select {
		case <-q.done:
			return

		case v := <-q.add:
			s.AppendBack(v)
			get = q.get

		case get <- peek(&s):
			s.Remove(0)
			if s.Empty() {
				get = nil
			}
		}
	}
}

// peek returns the head of s, or the zero value if s is empty.
func peek[T any](s *xlist.LinkedList[T]) T {
	v, _ := s.At(0)
	return v
}
