package models

import "time"

// SyncAction names a remote mutation captured for later replay.
type SyncAction string

const (
	ActionSaveTranslation SyncAction = "save_translation"
	ActionCreateBroadcast SyncAction = "create_broadcast"
)

// Sync queue priorities. Emergency-tagged work replays first.
const (
	PriorityEmergency = 10
	PriorityNormal    = 5
)

// SyncEntry is one local mutation that could not reach the remote store.
// Payload carries the JSON-encoded request of the original call.
type SyncEntry struct {
	ID         string
	Action     SyncAction
	Payload    []byte
	Priority   int
	Processed  bool
	RetryCount int
	CreatedAt  time.Time
}
