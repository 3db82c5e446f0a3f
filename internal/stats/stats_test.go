package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectorRecord(t *testing.T) {
	c := NewCollector()

	c.Record(ReasonNone)
	c.Record(ReasonNone)
	c.Record(ReasonEmpty)
	c.Record(ReasonTooShort)
	c.Record(ReasonTooLong)
	c.Record(ReasonNotAlpha)
	c.Record(ReasonNotAlpha)

	report := c.Snapshot()
	assert.Equal(t, 7, report.LinesRead)
	assert.Equal(t, 2, report.Kept)
	assert.Equal(t, 1, report.RejectedEmpty)
	assert.Equal(t, 1, report.RejectedTooShort)
	assert.Equal(t, 1, report.RejectedTooLong)
	assert.Equal(t, 2, report.RejectedNotAlpha)
	assert.Equal(t, 5, report.Rejected())
}

func TestCollectorDuration(t *testing.T) {
	c := NewCollector()
	c.SetDuration(42 * time.Millisecond)
	assert.Equal(t, 42*time.Millisecond, c.Snapshot().Duration)
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Record(ReasonNone)
			}
		}()
	}
	wg.Wait()

	report := c.Snapshot()
	assert.Equal(t, 1000, report.LinesRead)
	assert.Equal(t, 1000, report.Kept)
}

func TestSnapshotIsCopy(t *testing.T) {
	c := NewCollector()
	c.Record(ReasonNone)

	snap := c.Snapshot()
	c.Record(ReasonNone)

	assert.Equal(t, 1, snap.Kept)
	assert.Equal(t, 2, c.Snapshot().Kept)
}
