// Package trending constrói os sete leaderboards do relatório a partir do
// diff entre dois snapshots. Cada leaderboard é um passe independente de
// filtro + ordenação estável + corte em TopN.
package trending

import (
	"sort"

	"github.com/vfg2006/media-trends-api/internal/domain"
)

type Builder interface {
	Build(diff *domain.CatalogDiff, params domain.TrendingParams) *domain.TrendingBoards
}

type Service struct{}

func NewService() Builder {
	return &Service{}
}

func (s *Service) Build(diff *domain.CatalogDiff, params domain.TrendingParams) *domain.TrendingBoards {
	params = params.Sanitize()

	common := filter(diff.Entries, func(j *domain.JoinedEntry) bool {
		return j.Membership() == domain.MembershipBoth
	})
	newOnly := filter(diff.Entries, func(j *domain.JoinedEntry) bool {
		return j.Membership() == domain.MembershipNew
	})
	removedOnly := filter(diff.Entries, func(j *domain.JoinedEntry) bool {
		return j.Membership() == domain.MembershipRemoved
	})

	boards := &domain.TrendingBoards{Params: params}

	boards.TopVoteGainers = domain.Leaderboard{
		Kind: domain.LeaderboardTopVoteGainers,
		Entries: top(params.TopN, sortBy(common,
			descIntPtr(func(j *domain.JoinedEntry) *int { return j.VotesDelta }),
			descNewVotes(),
		)),
	}

	// Percentual exige piso de votos antigos (inclusive) e delta definido;
	// old.votes = 0 nunca entra porque o percentual é indefinido, não infinito
	pctEligible := filter(common, func(j *domain.JoinedEntry) bool {
		return j.VotesDeltaPct != nil && j.Old.VotesOrZero() >= params.MinOldVotesForPercent
	})
	boards.TopPctVoteGainers = domain.Leaderboard{
		Kind: domain.LeaderboardTopPctVoteGainers,
		Entries: top(params.TopN, sortBy(pctEligible,
			descFloatPtr(func(j *domain.JoinedEntry) *float64 { return j.VotesDeltaPct }),
			descIntPtr(func(j *domain.JoinedEntry) *int { return j.VotesDelta }),
		)),
	}

	ratingEligible := filter(common, func(j *domain.JoinedEntry) bool {
		return j.RatingDelta != nil
	})
	boards.RatingUp = domain.Leaderboard{
		Kind: domain.LeaderboardRatingUp,
		Entries: top(params.TopN, sortBy(ratingEligible,
			descFloatPtr(func(j *domain.JoinedEntry) *float64 { return j.RatingDelta }),
			descNewVotes(),
		)),
	}
	boards.RatingDown = domain.Leaderboard{
		Kind: domain.LeaderboardRatingDown,
		Entries: top(params.TopN, sortBy(ratingEligible,
			ascFloatPtr(func(j *domain.JoinedEntry) *float64 { return j.RatingDelta }),
			descNewVotes(),
		)),
	}

	rankEligible := filter(common, func(j *domain.JoinedEntry) bool {
		return j.RankDelta != nil
	})
	boards.RankJumps = domain.Leaderboard{
		Kind: domain.LeaderboardRankJumps,
		Entries: top(params.TopN, sortBy(rankEligible,
			descIntPtr(func(j *domain.JoinedEntry) *int { return j.RankDelta }),
			descNewVotes(),
		)),
	}

	newEligible := filter(newOnly, func(j *domain.JoinedEntry) bool {
		return j.New.VotesOrZero() >= params.NewTitleMinVotes
	})
	boards.NewTitles = domain.Leaderboard{
		Kind: domain.LeaderboardNewTitles,
		Entries: top(params.TopN, sortBy(newEligible,
			descNewVotes(),
			descFloatPtr(func(j *domain.JoinedEntry) *float64 {
				return j.New.Rating
			}),
		)),
	}

	boards.RemovedTitles = domain.Leaderboard{
		Kind: domain.LeaderboardRemovedTitles,
		Entries: top(params.TopN, sortBy(removedOnly,
			descIntPtr(func(j *domain.JoinedEntry) *int {
				if j.Old.Votes == nil {
					zero := 0
					return &zero
				}
				return j.Old.Votes
			}),
			descFloatPtr(func(j *domain.JoinedEntry) *float64 {
				return j.Old.Rating
			}),
		)),
	}

	return boards
}

// lessFunc compara duas linhas; retorna -1, 0 ou 1
type lessFunc func(a, b *domain.JoinedEntry) int

func filter(entries []domain.JoinedEntry, keep func(*domain.JoinedEntry) bool) []domain.JoinedEntry {
	result := make([]domain.JoinedEntry, 0, len(entries))
	for i := range entries {
		if keep(&entries[i]) {
			result = append(result, entries[i])
		}
	}
	return result
}

// sortBy ordena uma cópia das linhas pela cadeia de comparadores, de forma
// estável em relação à ordem de entrada
func sortBy(entries []domain.JoinedEntry, chain ...lessFunc) []domain.JoinedEntry {
	sorted := make([]domain.JoinedEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(a, b int) bool {
		for _, cmp := range chain {
			switch cmp(&sorted[a], &sorted[b]) {
			case -1:
				return true
			case 1:
				return false
			}
		}
		return false
	})

	return sorted
}

// top corta a lista depois da ordenação, nunca antes
func top(n int, entries []domain.JoinedEntry) []domain.JoinedEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

func descNewVotes() lessFunc {
	return func(a, b *domain.JoinedEntry) int {
		av, bv := a.New.VotesOrZero(), b.New.VotesOrZero()
		switch {
		case av > bv:
			return -1
		case av < bv:
			return 1
		}
		return 0
	}
}

func descIntPtr(key func(*domain.JoinedEntry) *int) lessFunc {
	return func(a, b *domain.JoinedEntry) int {
		av, bv := key(a), key(b)
		switch {
		case *av > *bv:
			return -1
		case *av < *bv:
			return 1
		}
		return 0
	}
}

func descFloatPtr(key func(*domain.JoinedEntry) *float64) lessFunc {
	return func(a, b *domain.JoinedEntry) int {
		av, bv := key(a), key(b)
		// nil só aparece em chaves de desempate (ex.: rating do título novo)
		switch {
		case av == nil && bv == nil:
			return 0
		case av == nil:
			return 1
		case bv == nil:
			return -1
		case *av > *bv:
			return -1
		case *av < *bv:
			return 1
		}
		return 0
	}
}

func ascFloatPtr(key func(*domain.JoinedEntry) *float64) lessFunc {
	desc := descFloatPtr(key)
	return func(a, b *domain.JoinedEntry) int {
		return -desc(a, b)
	}
}
