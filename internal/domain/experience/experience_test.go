package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestDuration(t *testing.T) {
	end := date(2025, time.July)

	current := &Experience{StartDate: date(2025, time.July), IsCurrent: true}
	assert.Equal(t, "Jul 2025–Present", current.Duration())

	finished := &Experience{StartDate: date(2025, time.March), EndDate: &end}
	assert.Equal(t, "Mar 2025–Jul 2025", finished.Duration())

	// current wins even if an end date is recorded
	both := &Experience{StartDate: date(2023, time.January), EndDate: &end, IsCurrent: true}
	assert.Equal(t, "Jan 2023–Present", both.Duration())

	missingEnd := &Experience{StartDate: date(2016, time.February), IsCurrent: false}
	assert.Equal(t, "Feb 2016–Present", missingEnd.Duration())
}

func TestDuration_UsesUTCMonth(t *testing.T) {
	ny := time.FixedZone("EST", -5*3600)
	start := date(2021, time.March).In(ny)

	e := &Experience{StartDate: start, IsCurrent: true}
	assert.Equal(t, "Mar 2021–Present", e.Duration())
}
