package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agos/pkg/models"
)

func intPtr(v int) *int { return &v }

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		old, new   Snapshot
		wantAction models.Action
		wantNotes  string
	}{
		{
			name:       "no change writes nothing",
			old:        Snapshot{Status: models.StatusInStorage, OfficeID: 1},
			new:        Snapshot{Status: models.StatusInStorage, OfficeID: 1},
			wantAction: "",
			wantNotes:  "",
		},
		{
			name:       "assignment reads as issued",
			old:        Snapshot{Status: models.StatusInStorage, OfficeID: 1},
			new:        Snapshot{Status: models.StatusIssued, AssignedTo: intPtr(42), OfficeID: 1},
			wantAction: models.ActionIssued,
			wantNotes:  `Status changed from "In Storage" to "Issued". Assigned to employee #42.`,
		},
		{
			name:       "unassignment reads as returned",
			old:        Snapshot{Status: models.StatusIssued, AssignedTo: intPtr(42), OfficeID: 1},
			new:        Snapshot{Status: models.StatusInStorage, OfficeID: 1},
			wantAction: models.ActionReturned,
			wantNotes:  `Status changed from "Issued" to "In Storage". Returned from employee #42.`,
		},
		{
			name:       "reassignment reads as transferred",
			old:        Snapshot{Status: models.StatusIssued, AssignedTo: intPtr(42), OfficeID: 1},
			new:        Snapshot{Status: models.StatusIssued, AssignedTo: intPtr(7), OfficeID: 1},
			wantAction: models.ActionTransferred,
			wantNotes:  "Reassigned from employee #42 to employee #7.",
		},
		{
			name:       "office move reads as transferred",
			old:        Snapshot{Status: models.StatusInStorage, OfficeID: 1},
			new:        Snapshot{Status: models.StatusInStorage, OfficeID: 2},
			wantAction: models.ActionTransferred,
			wantNotes:  "Office changed from #1 to #2.",
		},
		{
			name:       "disposal wins over assignment change",
			old:        Snapshot{Status: models.StatusIssued, AssignedTo: intPtr(42), OfficeID: 1},
			new:        Snapshot{Status: models.StatusDisposed, OfficeID: 2},
			wantAction: models.ActionDisposed,
			wantNotes:  `Status changed from "Issued" to "Disposed". Returned from employee #42. Office changed from #1 to #2.`,
		},
		{
			name:       "location only is a plain update",
			old:        Snapshot{Status: models.StatusInStorage, OfficeID: 1, SpecificLocation: "Shelf A"},
			new:        Snapshot{Status: models.StatusInStorage, OfficeID: 1, SpecificLocation: "Shelf B"},
			wantAction: models.ActionUpdated,
			wantNotes:  `Specific location changed from "Shelf A" to "Shelf B".`,
		},
		{
			name:       "status change without assignment is a plain update",
			old:        Snapshot{Status: models.StatusInStorage, OfficeID: 1},
			new:        Snapshot{Status: models.StatusTransferred, OfficeID: 1},
			wantAction: models.ActionUpdated,
			wantNotes:  `Status changed from "In Storage" to "Transferred".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, notes := Classify(tt.old, tt.new)
			assert.Equal(t, tt.wantAction, action)
			assert.Equal(t, tt.wantNotes, notes)
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	entries := []models.HistoryEntry{
		{Notes: "middle", Timestamp: "2026-03-02T10:00:00Z"},
		{Notes: "oldest", Timestamp: "2026-03-01T10:00:00Z"},
		{Notes: "newest", Timestamp: "2026-03-03T10:00:00Z"},
		{Notes: "broken", Timestamp: "not-a-time"},
	}

	SortNewestFirst(entries, func(e models.HistoryEntry) string { return e.Timestamp })

	assert.Equal(t, "newest", entries[0].Notes)
	assert.Equal(t, "middle", entries[1].Notes)
	assert.Equal(t, "oldest", entries[2].Notes)
	assert.Equal(t, "broken", entries[3].Notes)
}
