//go:build unit

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday_usesBusinessTimezone(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	// 2024-05-31 17:00 UTC is already June 1st in UTC+8.
	c := NewMockClock(time.Date(2024, 5, 31, 17, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Today(c, shanghai))
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), Today(c, time.UTC))
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), Today(c, nil))
}

func TestMockClock_Add(t *testing.T) {
	c := NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c.Add(36 * time.Hour)
	assert.Equal(t, time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), c.Now())
}
