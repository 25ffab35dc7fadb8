package load

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vrmkit/gltf/errors"
)

func TestFanOut(t *testing.T) {
	l := &Loader{Workers: 2}

	var n int32
	if err := l.fanOut(50, func(i int) error {
		atomic.AddInt32(&n, 1)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if n != 50 {
		t.Errorf("expected 50 calls, got %d", n)
	}

	errA := errors.New("a")
	errB := errors.New("b")
	err := l.fanOut(10, func(i int) error {
		switch i {
		case 3:
			return errA
		case 7:
			return errB
		}
		return nil
	})
	if err != errA {
		t.Errorf("expected first error by index, got %v", err)
	}

	err = l.fanOut(4, func(i int) error {
		if i == 2 {
			panic("boom")
		}
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected panic to be returned as error, got %v", err)
	}

	if err := l.fanOut(0, nil); err != nil {
		t.Errorf("empty fan out: %v", err)
	}
}

func TestFanOutWorkers(t *testing.T) {
	l := &Loader{Workers: 2}
	var running, peak int32
	err := l.fanOut(20, func(i int) error {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&running, -1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if peak > 2 {
		t.Errorf("expected at most 2 concurrent calls, got %d", peak)
	}
}
