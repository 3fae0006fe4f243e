package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortField(t *testing.T) {
	for _, name := range []string{"name", "startDate", "endDate", "budget", "channel"} {
		f, ok := ParseSortField(name)
		assert.True(t, ok, name)
		assert.True(t, f.Valid(), name)
		assert.Equal(t, name, f.String())
	}

	for _, name := range []string{"", "__proto__", "StartDate", "start_date", "budget;drop"} {
		_, ok := ParseSortField(name)
		assert.False(t, ok, name)
	}

	assert.False(t, SortField(0).Valid())
	assert.False(t, SortField(42).Valid())
}

func TestParseSortOrder(t *testing.T) {
	o, ok := ParseSortOrder("desc")
	assert.True(t, ok)
	assert.Equal(t, SortDesc, o)

	_, ok = ParseSortOrder("DESC")
	assert.False(t, ok)
	assert.False(t, SortOrder("").Valid())
}

func TestParseChannelStatus(t *testing.T) {
	s, ok := ParseChannelStatus(" Passive ")
	assert.True(t, ok)
	assert.Equal(t, ChannelPassive, s)

	_, ok = ParseChannelStatus("paused")
	assert.False(t, ok)
}
