// Package submission captures filled form values into immutable records with
// a review lifecycle. Records are append-only: form-definition edits never
// reshape a stored submission, and later changes go through the explicit
// status/notes operations on the Log.
package submission

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/document"
)

// Status is the review state of a submission.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Known reports whether the status belongs to the closed set.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Submission is one filled-out instance of a form. Data maps field keys to
// captured values; FieldOrder records the key order observed at capture time
// so table exports can derive stable columns after a reload.
type Submission struct {
	ID          string            `json:"id"`
	FormID      string            `json:"formId"`
	Data        map[string]string `json:"data"`
	FieldOrder  []string          `json:"fieldOrder,omitempty"`
	Status      Status            `json:"status"`
	SubmittedAt time.Time         `json:"submittedAt"`
	Notes       string            `json:"notes,omitempty"`
}

// Clone returns a deep copy of the submission.
func (s Submission) Clone() Submission {
	cp := s
	cp.Data = make(map[string]string, len(s.Data))
	for k, v := range s.Data {
		cp.Data[k] = v
	}
	cp.FieldOrder = append([]string(nil), s.FieldOrder...)
	return cp
}

type captureConfig struct {
	labelKeys bool
	now       func() time.Time
}

// CaptureOption configures Capture.
type CaptureOption func(*captureConfig)

// WithLabelKeys keys captured data by field label instead of field id.
// Labels collide across duplicate names; this exists only for compatibility
// with exports produced by older tooling and should not be used for new data.
func WithLabelKeys() CaptureOption {
	return func(cfg *captureConfig) {
		cfg.labelKeys = true
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) CaptureOption {
	return func(cfg *captureConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// Capture walks every step's input fields in order and records their values
// (empty string when unset) into a fresh pending submission. The source
// document is not mutated.
func Capture(doc document.Document, formID string, options ...CaptureOption) Submission {
	cfg := captureConfig{now: time.Now}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	data := make(map[string]string)
	var order []string
	for _, step := range doc.Steps {
		for _, f := range step.Fields {
			if !f.Type.Input() {
				continue
			}
			key := f.ID
			if cfg.labelKeys {
				key = f.Label
			}
			if _, seen := data[key]; !seen {
				order = append(order, key)
			}
			data[key] = f.Value
		}
	}

	return Submission{
		ID:          uuid.NewString(),
		FormID:      formID,
		Data:        data,
		FieldOrder:  order,
		Status:      StatusPending,
		SubmittedAt: cfg.now().UTC(),
	}
}
