package kernel_test

import (
	"errors"
	"sync"
)

var errCloseFailed = errors.New("close failed")

// releaseLog records the order in which spies were released.
type releaseLog struct {
	mu    sync.Mutex
	names []string
}

func (l *releaseLog) add(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

func (l *releaseLog) order() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.names...)
}

// disposableSpy implements kernel.Disposable.
type disposableSpy struct {
	name     string
	log      *releaseLog
	disposed int
}

func (d *disposableSpy) Dispose() {
	d.disposed++
	d.log.add(d.name)
}

// closerSpy implements io.Closer and optionally fails.
type closerSpy struct {
	name   string
	log    *releaseLog
	err    error
	closed int
}

func (c *closerSpy) Close() error {
	c.closed++
	c.log.add(c.name)
	return c.err
}

// panickingSpy panics from Dispose.
type panickingSpy struct {
	calls int
}

func (p *panickingSpy) Dispose() {
	p.calls++
	panic("boom")
}

// panickingCloser panics from Close.
type panickingCloser struct {
	calls int
}

func (p *panickingCloser) Close() error {
	p.calls++
	panic("close boom")
}

// sliceResource is a slice-backed Disposable; reslices share its array.
type sliceResource []int

func (sliceResource) Dispose() {}

// valueDisposable is a non-pointer Disposable compared by value.
type valueDisposable struct {
	id int
}

func (valueDisposable) Dispose() {}

// sliceDisposable is a non-comparable Disposable with no usable identity.
type sliceDisposable struct {
	items []int
}

func (sliceDisposable) Dispose() {}

type request struct{ name string }

type dummyContext struct{}

func (dummyContext) Resolve(r any) (any, error) { return nil, nil }
