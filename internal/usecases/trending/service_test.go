package trending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// both monta uma linha presente nos dois snapshots com os deltas já calculados
func both(id string, oldVotes, newVotes int, oldRating, newRating *float64, oldRank, newRank int) domain.JoinedEntry {
	j := domain.JoinedEntry{
		ID:  id,
		Old: &domain.CatalogEntry{ID: id, Votes: intPtr(oldVotes), Rating: oldRating, VotesRank: oldRank},
		New: &domain.CatalogEntry{ID: id, Votes: intPtr(newVotes), Rating: newRating, VotesRank: newRank},
	}
	delta := newVotes - oldVotes
	j.VotesDelta = &delta
	if oldVotes > 0 {
		pct := float64(delta) / float64(oldVotes)
		j.VotesDeltaPct = &pct
	}
	if oldRating != nil && newRating != nil {
		ratingDelta := *newRating - *oldRating
		j.RatingDelta = &ratingDelta
	}
	rankDelta := oldRank - newRank
	j.RankDelta = &rankDelta
	return j
}

func newOnly(id string, votes int, rating *float64, rank int) domain.JoinedEntry {
	j := domain.JoinedEntry{
		ID:  id,
		New: &domain.CatalogEntry{ID: id, Votes: intPtr(votes), Rating: rating, VotesRank: rank},
	}
	delta := votes
	j.VotesDelta = &delta
	return j
}

func removedOnly(id string, votes int, rating *float64, rank int) domain.JoinedEntry {
	return domain.JoinedEntry{
		ID:  id,
		Old: &domain.CatalogEntry{ID: id, Votes: intPtr(votes), Rating: rating, VotesRank: rank},
	}
}

func ids(entries []domain.JoinedEntry) []string {
	result := make([]string, len(entries))
	for i, entry := range entries {
		result[i] = entry.ID
	}
	return result
}

func TestBuild_TopVoteGainers(t *testing.T) {
	service := NewService()

	diff := &domain.CatalogDiff{
		Entries: []domain.JoinedEntry{
			both("tt1", 100, 150, nil, nil, 1, 1), // delta 50
			both("tt2", 100, 300, nil, nil, 2, 2), // delta 200
			both("tt3", 100, 300, nil, nil, 3, 3), // delta 200, empate total com tt2
			newOnly("tt4", 9999, nil, 1),          // fora: só no novo
			removedOnly("tt5", 9999, nil, 1),      // fora: só no antigo
		},
	}

	boards := service.Build(diff, domain.TrendingParams{TopN: 50})

	got := ids(boards.TopVoteGainers.Entries)
	// Empate em delta resolve por votos novos; empate total preserva a ordem de entrada
	assert.Equal(t, []string{"tt2", "tt3", "tt1"}, got)
}

func TestBuild_TopNTruncatesAfterSort(t *testing.T) {
	service := NewService()

	diff := &domain.CatalogDiff{
		Entries: []domain.JoinedEntry{
			both("tt1", 100, 110, nil, nil, 1, 1), // delta 10
			both("tt2", 100, 400, nil, nil, 2, 2), // delta 300
			both("tt3", 100, 200, nil, nil, 3, 3), // delta 100
		},
	}

	boards := service.Build(diff, domain.TrendingParams{TopN: 2})

	got := ids(boards.TopVoteGainers.Entries)
	// O corte acontece depois da ordenação: os dois maiores deltas, não os dois primeiros
	assert.Equal(t, []string{"tt2", "tt3"}, got)
}

func TestBuild_PctGainersEligibility(t *testing.T) {
	service := NewService()

	diff := &domain.CatalogDiff{
		Entries: []domain.JoinedEntry{
			both("tt1", 1000, 2000, nil, nil, 1, 1), // piso exato: elegível (inclusive)
			both("tt2", 999, 5000, nil, nil, 2, 2),  // abaixo do piso: fora
			both("tt3", 0, 100, nil, nil, 3, 3),     // percentual indefinido: fora
			both("tt4", 2000, 3000, nil, nil, 4, 4), // +50%
		},
	}

	boards := service.Build(diff, domain.TrendingParams{TopN: 50, MinOldVotesForPercent: 1000})

	got := ids(boards.TopPctVoteGainers.Entries)
	// tt1 +100% vem antes de tt4 +50%
	assert.Equal(t, []string{"tt1", "tt4"}, got)
}

func TestBuild_RatingBoards(t *testing.T) {
	service := NewService()

	diff := &domain.CatalogDiff{
		Entries: []domain.JoinedEntry{
			both("tt1", 100, 100, floatPtr(7.0), floatPtr(8.0), 1, 1), // +1.0
			both("tt2", 100, 100, floatPtr(8.0), floatPtr(7.5), 2, 2), // -0.5
			both("tt3", 100, 100, floatPtr(6.0), floatPtr(6.2), 3, 3), // +0.2
			both("tt4", 100, 100, nil, floatPtr(9.9), 4, 4),           // delta indefinido: fora dos dois
		},
	}

	boards := service.Build(diff, domain.TrendingParams{TopN: 50})

	assert.Equal(t, []string{"tt1", "tt3", "tt2"}, ids(boards.RatingUp.Entries))
	// Quedas em ordem crescente de delta: a maior queda primeiro
	assert.Equal(t, []string{"tt2", "tt3", "tt1"}, ids(boards.RatingDown.Entries))
}

func TestBuild_RankJumps(t *testing.T) {
	service := NewService()

	diff := &domain.CatalogDiff{
		Entries: []domain.JoinedEntry{
			both("tt1", 100, 100, nil, nil, 10, 2), // +8
			both("tt2", 100, 100, nil, nil, 5, 6),  // -1
			both("tt3", 100, 100, nil, nil, 4, 1),  // +3
		},
	}

	boards := service.Build(diff, domain.TrendingParams{TopN: 50})

	assert.Equal(t, []string{"tt1", "tt3", "tt2"}, ids(boards.RankJumps.Entries))
}

func TestBuild_NewAndRemovedTitles(t *testing.T) {
	service := NewService()

	diff := &domain.CatalogDiff{
		Entries: []domain.JoinedEntry{
			newOnly("tt1", 500, floatPtr(8.0), 1),
			newOnly("tt2", 500, floatPtr(9.0), 2), // empate em votos: rating decide
			newOnly("tt3", 40, floatPtr(9.9), 3),  // abaixo do mínimo de votos
			removedOnly("tt4", 700, floatPtr(5.0), 1),
			removedOnly("tt5", 900, floatPtr(6.0), 2),
		},
	}

	boards := service.Build(diff, domain.TrendingParams{TopN: 50, NewTitleMinVotes: 100})

	assert.Equal(t, []string{"tt2", "tt1"}, ids(boards.NewTitles.Entries))
	assert.Equal(t, []string{"tt5", "tt4"}, ids(boards.RemovedTitles.Entries))
}

func TestBuild_SanitizesParams(t *testing.T) {
	service := NewService()

	diff := &domain.CatalogDiff{
		Entries: []domain.JoinedEntry{
			both("tt1", 100, 200, nil, nil, 1, 1),
			both("tt2", 100, 300, nil, nil, 2, 2),
		},
	}

	boards := service.Build(diff, domain.TrendingParams{TopN: -5, MinOldVotesForPercent: -1, NewTitleMinVotes: -1})

	require.Equal(t, 1, boards.Params.TopN)
	assert.Len(t, boards.TopVoteGainers.Entries, 1)
}
