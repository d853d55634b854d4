package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 12*time.Hour, ParseDuration("12h", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("twelve hours", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.14, Round2(3.142857))
	assert.Equal(t, 66.67, Round2(66.666666))
	assert.Equal(t, 0.0, Round2(0))
}

func TestDateOnly(t *testing.T) {
	stamp := time.Date(2024, 10, 7, 15, 42, 30, 999, time.FixedZone("UTC+0", 0))
	assert.Equal(t, time.Date(2024, 10, 7, 0, 0, 0, 0, time.UTC), DateOnly(stamp))
}
