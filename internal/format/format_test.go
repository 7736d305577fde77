package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFmtCurrency(t *testing.T) {
	assert.Equal(t, "$1.200.000", FmtCurrency(1200000, "CLP", "es"))
	assert.Equal(t, "$920.000", FmtCurrency(920000, "clp", "es"))
	assert.Equal(t, "$1,200,000", FmtCurrency(1200000, "CLP", "en"))
	assert.Equal(t, "-$920,000", FmtCurrency(-920000, "CLP", "en"))
	assert.Equal(t, "US$1,234.00", FmtCurrency(1234, "USD", "en"))
}

func TestFmtDate(t *testing.T) {
	d := time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "28-09-2025", FmtDate(d, "es"))
	assert.Equal(t, "Sep 28, 2025", FmtDate(d, "en"))
	assert.Empty(t, FmtDate(time.Time{}, "es"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "-23%", Percent(23, "es"))
}
