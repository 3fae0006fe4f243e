package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChannelStatus is the lifecycle state of a channel.
type ChannelStatus string

const (
	ChannelActive  ChannelStatus = "active"
	ChannelPassive ChannelStatus = "passive"
)

// ParseChannelStatus normalises s to lower case and reports whether it names
// a known status.
func ParseChannelStatus(s string) (ChannelStatus, bool) {
	switch st := ChannelStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case ChannelActive, ChannelPassive:
		return st, true
	default:
		return "", false
	}
}

// Channel is a marketing medium (TV, radio, ...) campaigns run through.
type Channel struct {
	ID        uuid.UUID
	Name      string
	Status    ChannelStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChannelPatch holds the fields of a partial channel update.
type ChannelPatch struct {
	Name   *string
	Status *ChannelStatus
}
