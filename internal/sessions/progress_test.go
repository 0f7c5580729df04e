package sessions

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressClampsAndNeverRegresses(t *testing.T) {
	p := NewProgress()

	_, ok := p.Get("s1")
	assert.False(t, ok)

	report := p.Reporter("s1")
	report(40)
	report(20)
	v, ok := p.Get("s1")
	assert.True(t, ok)
	assert.Equal(t, 40, v)

	report(150)
	v, _ = p.Get("s1")
	assert.Equal(t, 100, v)

	p.Clear("s1")
	_, ok = p.Get("s1")
	assert.False(t, ok)
}

func TestProgressZeroIsTracked(t *testing.T) {
	p := NewProgress()
	p.Set("s1", -5)

	v, ok := p.Get("s1")
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestProgressConcurrentUse(t *testing.T) {
	p := NewProgress()
	var wg sync.WaitGroup
	for i := 0; i <= 100; i++ {
		wg.Add(1)
		go func(pct int) {
			defer wg.Done()
			p.Set("s1", pct)
		}(i)
	}
	wg.Wait()

	v, _ := p.Get("s1")
	assert.Equal(t, 100, v)
}
