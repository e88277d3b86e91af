package workspace

import (
	"cleanspace/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Criteria narrows an availability search. Nil/empty fields do not filter.
type Criteria struct {
	MinCapacity        *int
	RequiredProperties Properties
}

func (c Criteria) Matches(w *Workspace) bool {
	if w.capacity < ptr.Deref(c.MinCapacity, 0) {
		return false
	}
	if len(c.RequiredProperties) > 0 && !w.properties.ContainsAll(c.RequiredProperties) {
		return false
	}
	return true
}

// SelectAvailable keeps the workspaces matching criteria whose capacity strictly
// exceeds their number of conflicting reservations. Input order is preserved.
func SelectAvailable(all []*Workspace, criteria Criteria, conflictCounts map[uuid.UUID]int) []*Workspace {
	available := make([]*Workspace, 0, len(all))
	for _, w := range all {
		if !criteria.Matches(w) {
			continue
		}
		if w.capacity > conflictCounts[w.id] {
			available = append(available, w)
		}
	}
	return available
}
