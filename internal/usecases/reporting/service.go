// Package reporting converte os leaderboards em um documento estruturado:
// painel de KPIs mais uma tabela por leaderboard, com células já formatadas
package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/media-trends-api/internal/domain"
	"github.com/vfg2006/media-trends-api/pkg/utils"
)

// IMDbURLTemplate é o link canônico de cada título no relatório
const IMDbURLTemplate = "https://www.imdb.com/title/%s/"

type Renderer interface {
	Render(diff *domain.CatalogDiff, boards *domain.TrendingBoards, generatedAt time.Time) *domain.Report
	RenderHTML(report *domain.Report) (string, error)
}

type Service struct{}

func NewService() Renderer {
	return &Service{}
}

func (s *Service) Render(diff *domain.CatalogDiff, boards *domain.TrendingBoards, generatedAt time.Time) *domain.Report {
	common, newOnly, removed := diff.Counts()

	report := &domain.Report{
		OldLabel: diff.OldLabel,
		NewLabel: diff.NewLabel,
		Summary: domain.ReportSummary{
			CommonTitles:  common,
			NewTitles:     newOnly,
			RemovedTitles: removed,
			GeneratedAt:   generatedAt,
		},
	}

	for _, board := range boards.All() {
		report.Sections = append(report.Sections, s.section(board, diff, boards.Params))
	}

	return report
}

func (s *Service) section(board domain.Leaderboard, diff *domain.CatalogDiff, params domain.TrendingParams) domain.ReportSection {
	meta := sectionMeta(board.Kind, diff.OldLabel, diff.NewLabel, params)

	section := domain.ReportSection{
		Kind:        board.Kind,
		Title:       meta.title,
		Description: meta.description,
		Columns:     meta.columns,
	}

	for i := range board.Entries {
		section.Rows = append(section.Rows, rowCells(&board.Entries[i], board.Kind, meta.columns))
	}

	return section
}

type sectionLayout struct {
	title       string
	description string
	columns     []string
}

func sectionMeta(kind domain.LeaderboardKind, oldLabel, newLabel string, params domain.TrendingParams) sectionLayout {
	votesOld := fmt.Sprintf("Votes (%s)", oldLabel)
	votesNew := fmt.Sprintf("Votes (%s)", newLabel)
	rankOld := fmt.Sprintf("Rank (%s)", oldLabel)
	rankNew := fmt.Sprintf("Rank (%s)", newLabel)

	baseColumns := []string{"Score", "Title", "Year", "Type", "primary_genre", "runtime"}

	switch kind {
	case domain.LeaderboardTopVoteGainers:
		return sectionLayout{
			title:       fmt.Sprintf("Top vote gainers (%s → %s)", oldLabel, newLabel),
			description: fmt.Sprintf("Largest absolute increase in votes among titles present in both files (top %d).", params.TopN),
			columns:     append(baseColumns, votesOld, votesNew, "Votes Δ", "Votes Δ%"),
		}
	case domain.LeaderboardTopPctVoteGainers:
		minVotes := params.MinOldVotesForPercent
		return sectionLayout{
			title: fmt.Sprintf("Top percent vote gainers (%s → %s)", oldLabel, newLabel),
			description: fmt.Sprintf(
				"Largest percent increase in votes among titles present in both files. Filtered to old votes ≥ %s to reduce noise (top %d).",
				utils.FormatInt(&minVotes), params.TopN),
			columns: append(baseColumns, votesOld, votesNew, "Votes Δ", "Votes Δ%"),
		}
	case domain.LeaderboardRatingUp:
		return sectionLayout{
			title:       fmt.Sprintf("Biggest rating increases (%s → %s)", oldLabel, newLabel),
			description: fmt.Sprintf("Largest positive rating change among titles present in both files (top %d).", params.TopN),
			columns:     append(baseColumns, votesNew, "Votes Δ"),
		}
	case domain.LeaderboardRatingDown:
		return sectionLayout{
			title:       fmt.Sprintf("Biggest rating decreases (%s → %s)", oldLabel, newLabel),
			description: fmt.Sprintf("Largest negative rating change among titles present in both files (top %d).", params.TopN),
			columns:     append(baseColumns, votesNew, "Votes Δ"),
		}
	case domain.LeaderboardRankJumps:
		return sectionLayout{
			title: fmt.Sprintf("Biggest rank jumps by votes (%s → %s)", oldLabel, newLabel),
			description: fmt.Sprintf(
				"Rank is by total votes (descending). Positive Rank Δ means it moved up (toward rank 1). (top %d)", params.TopN),
			columns: append(baseColumns, rankOld, rankNew, "Rank Δ", "Votes Δ", votesNew),
		}
	case domain.LeaderboardNewTitles:
		minVotes := params.NewTitleMinVotes
		return sectionLayout{
			title: fmt.Sprintf("New titles (only in %s)", newLabel),
			description: fmt.Sprintf(
				"Present only in the new file, sorted by votes (min new votes: %s).", utils.FormatInt(&minVotes)),
			columns: append(baseColumns, votesNew, rankNew),
		}
	default:
		return sectionLayout{
			title:       fmt.Sprintf("Removed titles (only in %s)", oldLabel),
			description: "Present only in the old file, sorted by votes.",
			columns:     append(baseColumns, votesOld, rankOld),
		}
	}
}

// rowCells monta as células na ordem fixa das colunas de cada tipo de
// leaderboard. Campos descritivos preferem o snapshot novo e caem para o
// antigo quando ausentes.
func rowCells(j *domain.JoinedEntry, kind domain.LeaderboardKind, _ []string) []domain.ReportCell {
	latest := j.New
	if latest == nil {
		latest = j.Old
	}

	var score string
	switch kind {
	case domain.LeaderboardNewTitles:
		score = utils.FormatScore(j.New.Rating, nil)
	case domain.LeaderboardRemovedTitles:
		score = utils.FormatScore(j.Old.Rating, nil)
	default:
		score = utils.FormatScore(j.New.Rating, j.RatingDelta)
	}

	cells := []domain.ReportCell{
		{Text: score},
		{Text: latest.Title, URL: fmt.Sprintf(IMDbURLTemplate, j.ID)},
		{Text: plainInt(latest.Year)},
		{Text: latest.Type},
		{Text: stringOrEmpty(latest.PrimaryGenre)},
		{Text: utils.FormatInt(latest.RuntimeMinutes)},
	}

	switch kind {
	case domain.LeaderboardTopVoteGainers, domain.LeaderboardTopPctVoteGainers:
		cells = append(cells,
			votesCell(j.Old),
			votesCell(j.New),
			domain.ReportCell{Text: utils.FormatSignedInt(j.VotesDelta)},
			domain.ReportCell{Text: utils.FormatPct(j.VotesDeltaPct)},
		)
	case domain.LeaderboardRatingUp, domain.LeaderboardRatingDown:
		cells = append(cells,
			votesCell(j.New),
			domain.ReportCell{Text: utils.FormatSignedInt(j.VotesDelta)},
		)
	case domain.LeaderboardRankJumps:
		cells = append(cells,
			rankCell(j.Old),
			rankCell(j.New),
			domain.ReportCell{Text: utils.FormatSignedInt(j.RankDelta)},
			domain.ReportCell{Text: utils.FormatSignedInt(j.VotesDelta)},
			votesCell(j.New),
		)
	case domain.LeaderboardNewTitles:
		cells = append(cells, votesCell(j.New), rankCell(j.New))
	case domain.LeaderboardRemovedTitles:
		cells = append(cells, votesCell(j.Old), rankCell(j.Old))
	}

	return cells
}

func votesCell(entry *domain.CatalogEntry) domain.ReportCell {
	if entry == nil {
		return domain.ReportCell{}
	}
	return domain.ReportCell{Text: utils.FormatInt(entry.Votes)}
}

func rankCell(entry *domain.CatalogEntry) domain.ReportCell {
	if entry == nil {
		return domain.ReportCell{}
	}
	rank := entry.VotesRank
	return domain.ReportCell{Text: utils.FormatInt(&rank)}
}

func plainInt(value *int) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%d", *value)
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
