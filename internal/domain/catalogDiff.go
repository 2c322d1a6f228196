package domain

// Membership indica em quais snapshots o título aparece
type Membership string

const (
	MembershipBoth    Membership = "both"
	MembershipNew     Membership = "new-only"
	MembershipRemoved Membership = "removed-only"
)

// JoinedEntry é uma linha do full outer join entre dois snapshots.
// Deltas indefinidos ficam nil e nunca são calculados sobre valores ausentes.
type JoinedEntry struct {
	ID            string        `json:"imdb_id"`
	Old           *CatalogEntry `json:"old,omitempty"`
	New           *CatalogEntry `json:"new,omitempty"`
	VotesDelta    *int          `json:"votes_delta,omitempty"`
	VotesDeltaPct *float64      `json:"votes_delta_pct,omitempty"`
	RatingDelta   *float64      `json:"rating_delta,omitempty"`
	RankDelta     *int          `json:"rank_delta,omitempty"` // positivo = subiu no ranking
}

// Membership deriva a categoria da presença de Old/New
func (j JoinedEntry) Membership() Membership {
	switch {
	case j.Old != nil && j.New != nil:
		return MembershipBoth
	case j.New != nil:
		return MembershipNew
	default:
		return MembershipRemoved
	}
}

// CatalogDiff é o resultado completo do join entre dois snapshots
type CatalogDiff struct {
	OldLabel string        `json:"old_label"`
	NewLabel string        `json:"new_label"`
	Entries  []JoinedEntry `json:"entries"`
}

// Counts retorna as cardinalidades (both, new-only, removed-only)
func (d *CatalogDiff) Counts() (common, newOnly, removed int) {
	for i := range d.Entries {
		switch d.Entries[i].Membership() {
		case MembershipBoth:
			common++
		case MembershipNew:
			newOnly++
		case MembershipRemoved:
			removed++
		}
	}
	return common, newOnly, removed
}
