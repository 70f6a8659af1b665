// Package audit classifies state transitions into human-meaningful actions
// and appends the immutable history records every mutating operation owes.
package audit

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"agos/pkg/models"
)

// Snapshot is the audited slice of an asset or asset instance: the fields
// whose changes an operator needs to read back later.
type Snapshot struct {
	Status           models.Status
	AssignedTo       *int
	OfficeID         int
	SpecificLocation string
}

// Classify compares two snapshots and names the transition. Priority when
// several fields changed at once: disposal wins over everything; then an
// assignment transition (unassigned to assigned reads as Issued, assigned to
// unassigned as Returned, reassignment or an office move as Transferred);
// anything else is a plain update. The notes string carries one sentence per
// changed attribute. An empty action means nothing changed and no history
// record should be written.
func Classify(old, new Snapshot) (models.Action, string) {
	var notes []string

	statusChanged := old.Status != new.Status
	assignChanged := !sameRef(old.AssignedTo, new.AssignedTo)
	officeChanged := old.OfficeID != new.OfficeID
	locationChanged := old.SpecificLocation != new.SpecificLocation

	if statusChanged {
		notes = append(notes, fmt.Sprintf("Status changed from %q to %q.", old.Status, new.Status))
	}
	if assignChanged {
		switch {
		case old.AssignedTo == nil:
			notes = append(notes, fmt.Sprintf("Assigned to employee #%d.", *new.AssignedTo))
		case new.AssignedTo == nil:
			notes = append(notes, fmt.Sprintf("Returned from employee #%d.", *old.AssignedTo))
		default:
			notes = append(notes, fmt.Sprintf("Reassigned from employee #%d to employee #%d.", *old.AssignedTo, *new.AssignedTo))
		}
	}
	if officeChanged {
		notes = append(notes, fmt.Sprintf("Office changed from #%d to #%d.", old.OfficeID, new.OfficeID))
	}
	if locationChanged {
		notes = append(notes, fmt.Sprintf("Specific location changed from %q to %q.", old.SpecificLocation, new.SpecificLocation))
	}

	if len(notes) == 0 {
		return "", ""
	}

	var action models.Action
	switch {
	case statusChanged && new.Status == models.StatusDisposed:
		action = models.ActionDisposed
	case assignChanged && old.AssignedTo == nil:
		action = models.ActionIssued
	case assignChanged && new.AssignedTo == nil:
		action = models.ActionReturned
	case assignChanged || officeChanged:
		action = models.ActionTransferred
	default:
		action = models.ActionUpdated
	}

	return action, strings.Join(notes, " ")
}

func sameRef(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Timestamp returns the UTC wall clock in the format every history record
// uses.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// SortNewestFirst orders history entries most recent first, the ordering the
// listing surface promises. Unparseable timestamps sort last.
func SortNewestFirst[T any](items []T, timestamp func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, erri := time.Parse(time.RFC3339Nano, timestamp(items[i]))
		tj, errj := time.Parse(time.RFC3339Nano, timestamp(items[j]))
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return ti.After(tj)
	})
}
