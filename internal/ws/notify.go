package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type MatchesComputedEvent struct {
	Type       string `json:"type"`
	ResumeID   string `json:"resume_id"`
	JobsScored int    `json:"jobs_scored"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyMatchesComputed broadcasts that a scoring pass finished for a
// resume. A nil default hub (tests, seed runs) makes this a no-op.
func NotifyMatchesComputed(resumeID uuid.UUID, jobsScored int) {
	h := defaultHub.Load()
	if h == nil || resumeID == uuid.Nil {
		return
	}

	evt := MatchesComputedEvent{
		Type:       "matches_computed",
		ResumeID:   resumeID.String(),
		JobsScored: jobsScored,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
