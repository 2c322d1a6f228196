// Package diffing faz o full outer join entre dois snapshots normalizados
// do catálogo e calcula os deltas derivados de cada título
package diffing

import (
	"sort"

	"github.com/vfg2006/media-trends-api/internal/domain"
)

type Differ interface {
	Diff(oldRel, newRel *domain.CatalogRelation) *domain.CatalogDiff
}

type Service struct{}

func NewService() Differ {
	return &Service{}
}

// Diff produz exatamente uma JoinedEntry por IMDbID presente em qualquer um
// dos snapshots. Nenhuma linha de entrada é descartada.
func (s *Service) Diff(oldRel, newRel *domain.CatalogRelation) *domain.CatalogDiff {
	oldByID := indexByID(oldRel.Entries)
	newByID := indexByID(newRel.Entries)

	ids := make([]string, 0, len(oldByID)+len(newByID))
	for id := range oldByID {
		ids = append(ids, id)
	}
	for id := range newByID {
		if _, exists := oldByID[id]; !exists {
			ids = append(ids, id)
		}
	}
	// Ordem determinística para que duas execuções produzam o mesmo diff
	sort.Strings(ids)

	entries := make([]domain.JoinedEntry, 0, len(ids))
	for _, id := range ids {
		joined := domain.JoinedEntry{ID: id}
		if entry, ok := oldByID[id]; ok {
			joined.Old = entry
		}
		if entry, ok := newByID[id]; ok {
			joined.New = entry
		}
		computeDeltas(&joined)
		entries = append(entries, joined)
	}

	return &domain.CatalogDiff{
		OldLabel: oldRel.Label,
		NewLabel: newRel.Label,
		Entries:  entries,
	}
}

func indexByID(entries []domain.CatalogEntry) map[string]*domain.CatalogEntry {
	byID := make(map[string]*domain.CatalogEntry, len(entries))
	for i := range entries {
		byID[entries[i].ID] = &entries[i]
	}
	return byID
}

// computeDeltas preenche os quatro deltas conforme as regras do domínio:
// deltas indefinidos permanecem nil, nunca zero ou NaN
func computeDeltas(j *domain.JoinedEntry) {
	// VotesDelta existe sempre que o título está no snapshot novo
	if j.New != nil {
		oldVotes := 0
		if j.Old != nil {
			oldVotes = j.Old.VotesOrZero()
		}
		delta := j.New.VotesOrZero() - oldVotes
		j.VotesDelta = &delta

		// Percentual só é definido com denominador positivo
		if j.Old != nil && oldVotes > 0 {
			pct := float64(delta) / float64(oldVotes)
			j.VotesDeltaPct = &pct
		}
	}

	if j.Old != nil && j.New != nil {
		if j.Old.Rating != nil && j.New.Rating != nil {
			ratingDelta := *j.New.Rating - *j.Old.Rating
			j.RatingDelta = &ratingDelta
		}

		// Rank antigo - rank novo: positivo significa aproximação do topo
		rankDelta := j.Old.VotesRank - j.New.VotesRank
		j.RankDelta = &rankDelta
	}
}
