package domain

// TrendingParams são os parâmetros ajustáveis dos leaderboards.
// Valores negativos devem ser saneados pelo chamador antes de chegar aqui.
type TrendingParams struct {
	TopN                  int `json:"top_n"`
	MinOldVotesForPercent int `json:"min_old_votes_for_percent"`
	NewTitleMinVotes      int `json:"new_title_min_votes"`
}

// DefaultTrendingParams retorna os valores padrão usados pelo pipeline diário
func DefaultTrendingParams() TrendingParams {
	return TrendingParams{
		TopN:                  50,
		MinOldVotesForPercent: 1000,
		NewTitleMinVotes:      0,
	}
}

// Sanitize aplica os limites mínimos legais a cada parâmetro
func (p TrendingParams) Sanitize() TrendingParams {
	if p.TopN < 1 {
		p.TopN = 1
	}
	if p.MinOldVotesForPercent < 0 {
		p.MinOldVotesForPercent = 0
	}
	if p.NewTitleMinVotes < 0 {
		p.NewTitleMinVotes = 0
	}
	return p
}

// LeaderboardKind identifica cada um dos sete recortes do relatório
type LeaderboardKind string

const (
	LeaderboardTopVoteGainers    LeaderboardKind = "top_vote_gainers"
	LeaderboardTopPctVoteGainers LeaderboardKind = "top_pct_vote_gainers"
	LeaderboardRatingUp          LeaderboardKind = "rating_up"
	LeaderboardRatingDown        LeaderboardKind = "rating_down"
	LeaderboardRankJumps         LeaderboardKind = "rank_jumps"
	LeaderboardNewTitles         LeaderboardKind = "new_titles"
	LeaderboardRemovedTitles     LeaderboardKind = "removed_titles"
)

// Leaderboard é um recorte ordenado e limitado a TopN linhas do diff
type Leaderboard struct {
	Kind    LeaderboardKind `json:"kind"`
	Entries []JoinedEntry   `json:"entries"`
}

// TrendingBoards agrupa os sete leaderboards de um diff
type TrendingBoards struct {
	Params            TrendingParams `json:"params"`
	TopVoteGainers    Leaderboard    `json:"top_vote_gainers"`
	TopPctVoteGainers Leaderboard    `json:"top_pct_vote_gainers"`
	RatingUp          Leaderboard    `json:"rating_up"`
	RatingDown        Leaderboard    `json:"rating_down"`
	RankJumps         Leaderboard    `json:"rank_jumps"`
	NewTitles         Leaderboard    `json:"new_titles"`
	RemovedTitles     Leaderboard    `json:"removed_titles"`
}

// All retorna os leaderboards na ordem em que aparecem no relatório
func (b *TrendingBoards) All() []Leaderboard {
	return []Leaderboard{
		b.TopVoteGainers,
		b.TopPctVoteGainers,
		b.RatingUp,
		b.RatingDown,
		b.RankJumps,
		b.NewTitles,
		b.RemovedTitles,
	}
}
