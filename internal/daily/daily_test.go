package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	assert.Equal(t, "2024-02-29", DateKey(time.Date(2024, 3, 1, 5, 0, 0, 0, loc)))
}

func TestSeedStablePerDay(t *testing.T) {
	morning := time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 1, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 6, 2, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, Seed(morning, "salt"), Seed(evening, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(nextDay, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(morning, "pepper"))
}
