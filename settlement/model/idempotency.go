package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one request: the endpoint path plus the caller's
// key. The same key against a different endpoint is a different request.
type IdempotencyKey struct {
	Resource string
	Key      string
}

// IdempotencyCacheEntry records the lifecycle of a keyed request. Status is
// "processing" while the first request runs and "completed" once its response
// has been recorded; RequestBodyHash guards against replays with a different
// body under the same key.
type IdempotencyCacheEntry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
