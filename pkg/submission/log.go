package submission

// Log holds every captured submission grouped by owning form. The store is
// single-writer: operations run synchronously on the interaction path, so no
// locking is involved. All mutators report whether anything changed so
// callers can skip redundant persistence.
type Log struct {
	byForm map[string][]Submission
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{byForm: make(map[string][]Submission)}
}

// RestoreLog rebuilds a log from a persisted snapshot. Entries with unknown
// statuses are normalised to pending rather than dropped.
func RestoreLog(snapshot map[string][]Submission) *Log {
	log := NewLog()
	for formID, subs := range snapshot {
		for _, sub := range subs {
			if !sub.Status.Known() {
				sub.Status = StatusPending
			}
			log.byForm[formID] = append(log.byForm[formID], sub.Clone())
		}
	}
	return log
}

// Append adds a captured submission to its form's record list.
func (l *Log) Append(sub Submission) {
	l.byForm[sub.FormID] = append(l.byForm[sub.FormID], sub.Clone())
}

// ForForm returns copies of the form's submissions in capture order.
func (l *Log) ForForm(formID string) []Submission {
	subs := l.byForm[formID]
	out := make([]Submission, len(subs))
	for i, sub := range subs {
		out[i] = sub.Clone()
	}
	return out
}

// Count reports the number of submissions captured for a form.
func (l *Log) Count(formID string) int {
	return len(l.byForm[formID])
}

// UpdateStatus moves a submission to the given review status. Setting the
// status it already has, or naming an unknown submission, is a no-op.
func (l *Log) UpdateStatus(formID, subID string, status Status) bool {
	if !status.Known() {
		return false
	}
	sub := l.find(formID, subID)
	if sub == nil || sub.Status == status {
		return false
	}
	sub.Status = status
	return true
}

// SetNotes replaces a submission's freeform notes.
func (l *Log) SetNotes(formID, subID, notes string) bool {
	sub := l.find(formID, subID)
	if sub == nil || sub.Notes == notes {
		return false
	}
	sub.Notes = notes
	return true
}

// Delete removes a submission. Unknown ids are a no-op.
func (l *Log) Delete(formID, subID string) bool {
	subs := l.byForm[formID]
	for i, sub := range subs {
		if sub.ID == subID {
			l.byForm[formID] = append(subs[:i], subs[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteForm drops every submission owned by a form, reporting whether any
// existed.
func (l *Log) DeleteForm(formID string) bool {
	if len(l.byForm[formID]) == 0 {
		delete(l.byForm, formID)
		return false
	}
	delete(l.byForm, formID)
	return true
}

// Snapshot returns a deep copy of the full log keyed by form id, suitable
// for serialisation.
func (l *Log) Snapshot() map[string][]Submission {
	out := make(map[string][]Submission, len(l.byForm))
	for formID, subs := range l.byForm {
		cp := make([]Submission, len(subs))
		for i, sub := range subs {
			cp[i] = sub.Clone()
		}
		out[formID] = cp
	}
	return out
}

func (l *Log) find(formID, subID string) *Submission {
	subs := l.byForm[formID]
	for i := range subs {
		if subs[i].ID == subID {
			return &subs[i]
		}
	}
	return nil
}
