package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_DoesNotMove(t *testing.T) {
	c := NewFixedClockOn("2024-09-01")

	first := c.Now()
	time.Sleep(time.Millisecond)
	assert.Equal(t, first, c.Now())
	assert.Equal(t, "2024-09-01", first.Format("2006-01-02"))
}

func TestFixedClock_Advance(t *testing.T) {
	c := NewFixedClockOn("2024-09-01")
	c.Advance(48 * time.Hour)
	assert.Equal(t, "2024-09-03", c.Now().Format("2006-01-02"))
}

func TestNewFixedClockOn_PanicsOnBadDate(t *testing.T) {
	assert.Panics(t, func() { NewFixedClockOn("not-a-date") })
}
