package errlist

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushAndRemove(t *testing.T) {
	l := New()
	l.Push("a")
	l.Push("b")
	l.Push("c")

	assert.True(t, l.RemoveAt(1))
	assert.Equal(t, []string{"a", "c"}, l.Errors())

	assert.False(t, l.RemoveAt(5))
	assert.False(t, l.RemoveAt(-1))
	assert.Equal(t, 2, l.Len())
}

func TestSnapshotIsDetached(t *testing.T) {
	l := New()
	l.Push("a")
	snap := l.Errors()
	snap[0] = "changed"
	assert.Equal(t, []string{"a"}, l.Errors())
}

func TestConcurrentPush(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Push("x")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, l.Len())
}
