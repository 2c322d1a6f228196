package diffing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/media-trends-api/internal/domain"
	"github.com/vfg2006/media-trends-api/internal/usecases/loading"
	"github.com/vfg2006/media-trends-api/internal/usecases/trending"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func entry(id string, votes *int, rating *float64, rank int) domain.CatalogEntry {
	return domain.CatalogEntry{ID: id, Votes: votes, Rating: rating, VotesRank: rank}
}

func joinedByID(t *testing.T, diff *domain.CatalogDiff, id string) domain.JoinedEntry {
	t.Helper()
	for _, j := range diff.Entries {
		if j.ID == id {
			return j
		}
	}
	t.Fatalf("linha %s não encontrada no diff", id)
	return domain.JoinedEntry{}
}

func TestDiff_UnionOfIDs(t *testing.T) {
	service := NewService()

	oldRel := &domain.CatalogRelation{
		Label: "2024-01-01",
		Entries: []domain.CatalogEntry{
			entry("tt1", intPtr(100), floatPtr(8.0), 1),
			entry("tt2", intPtr(50), floatPtr(7.0), 2),
		},
	}
	newRel := &domain.CatalogRelation{
		Label: "2024-01-02",
		Entries: []domain.CatalogEntry{
			entry("tt1", intPtr(150), floatPtr(8.2), 1),
			entry("tt3", intPtr(30), floatPtr(6.5), 2),
		},
	}

	diff := service.Diff(oldRel, newRel)

	assert.Equal(t, "2024-01-01", diff.OldLabel)
	assert.Equal(t, "2024-01-02", diff.NewLabel)
	assert.Len(t, diff.Entries, 3)

	common, newOnly, removed := diff.Counts()
	assert.Equal(t, 1, common)
	assert.Equal(t, 1, newOnly)
	assert.Equal(t, 1, removed)

	assert.Equal(t, domain.MembershipBoth, joinedByID(t, diff, "tt1").Membership())
	assert.Equal(t, domain.MembershipRemoved, joinedByID(t, diff, "tt2").Membership())
	assert.Equal(t, domain.MembershipNew, joinedByID(t, diff, "tt3").Membership())
}

func TestDiff_Deltas(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		old      *domain.CatalogEntry
		new      *domain.CatalogEntry
		validate func(t *testing.T, j domain.JoinedEntry)
	}{
		{
			name: "Presente nos dois com todos os valores",
			old:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(1000), Rating: floatPtr(8.0), VotesRank: 5},
			new:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(1500), Rating: floatPtr(8.2), VotesRank: 2},
			validate: func(t *testing.T, j domain.JoinedEntry) {
				require.NotNil(t, j.VotesDelta)
				assert.Equal(t, 500, *j.VotesDelta)
				require.NotNil(t, j.VotesDeltaPct)
				assert.InDelta(t, 0.5, *j.VotesDeltaPct, 1e-9)
				require.NotNil(t, j.RatingDelta)
				assert.InDelta(t, 0.2, *j.RatingDelta, 1e-9)
				require.NotNil(t, j.RankDelta)
				assert.Equal(t, 3, *j.RankDelta) // subiu do rank 5 para o 2
			},
		},
		{
			name: "Votos antigos zero deixam o percentual indefinido",
			old:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(0), VotesRank: 2},
			new:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(10), VotesRank: 1},
			validate: func(t *testing.T, j domain.JoinedEntry) {
				require.NotNil(t, j.VotesDelta)
				assert.Equal(t, 10, *j.VotesDelta)
				assert.Nil(t, j.VotesDeltaPct)
			},
		},
		{
			name: "Votos antigos ausentes contam como zero no delta",
			old:  &domain.CatalogEntry{ID: "tt1", VotesRank: 2},
			new:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(25), VotesRank: 1},
			validate: func(t *testing.T, j domain.JoinedEntry) {
				require.NotNil(t, j.VotesDelta)
				assert.Equal(t, 25, *j.VotesDelta)
				assert.Nil(t, j.VotesDeltaPct)
			},
		},
		{
			name: "Rating ausente em um dos lados deixa o delta indefinido",
			old:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(100), Rating: floatPtr(7.0), VotesRank: 1},
			new:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(120), VotesRank: 1},
			validate: func(t *testing.T, j domain.JoinedEntry) {
				assert.Nil(t, j.RatingDelta)
				require.NotNil(t, j.RankDelta)
				assert.Equal(t, 0, *j.RankDelta)
			},
		},
		{
			name: "Apenas no snapshot novo",
			new:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(40), Rating: floatPtr(6.0), VotesRank: 1},
			validate: func(t *testing.T, j domain.JoinedEntry) {
				require.NotNil(t, j.VotesDelta)
				assert.Equal(t, 40, *j.VotesDelta)
				assert.Nil(t, j.VotesDeltaPct)
				assert.Nil(t, j.RatingDelta)
				assert.Nil(t, j.RankDelta)
			},
		},
		{
			name: "Apenas no snapshot antigo",
			old:  &domain.CatalogEntry{ID: "tt1", Votes: intPtr(40), Rating: floatPtr(6.0), VotesRank: 1},
			validate: func(t *testing.T, j domain.JoinedEntry) {
				assert.Nil(t, j.VotesDelta)
				assert.Nil(t, j.VotesDeltaPct)
				assert.Nil(t, j.RatingDelta)
				assert.Nil(t, j.RankDelta)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldRel := &domain.CatalogRelation{Label: "old"}
			if tt.old != nil {
				oldRel.Entries = []domain.CatalogEntry{*tt.old}
			}
			newRel := &domain.CatalogRelation{Label: "new"}
			if tt.new != nil {
				newRel.Entries = []domain.CatalogEntry{*tt.new}
			}

			diff := service.Diff(oldRel, newRel)
			require.Len(t, diff.Entries, 1)
			tt.validate(t, diff.Entries[0])
		})
	}
}

// Compara dois snapshots pequenos passando pelo loader, pelo diff e pelos
// leaderboards, validando o resultado de ponta a ponta
func TestDiff_PipelineWithLoaderAndLeaderboards(t *testing.T) {
	loader := loading.NewService()
	differ := NewService()
	trends := trending.NewService()

	table := func(rows ...[]string) *domain.CatalogTable {
		columns := []string{"IMDbID", "Title", "Year", "Type", "Rating", "Votes"}
		out := &domain.CatalogTable{Columns: columns}
		for _, row := range rows {
			cells := make(map[string]string, len(columns))
			for i, c := range columns {
				cells[c] = row[i]
			}
			out.Rows = append(out.Rows, cells)
		}
		return out
	}

	oldRel, err := loader.Load(table(
		[]string{"A", "Alpha", "2020", "movie", "7.0", "100"},
		[]string{"B", "Beta", "2021", "movie", "8.0", "50"},
	), "2024-01-01")
	require.NoError(t, err)

	newRel, err := loader.Load(table(
		[]string{"A", "Alpha", "2020", "movie", "7.2", "150"},
		[]string{"C", "Gamma", "2022", "movie", "6.0", "40"},
	), "2024-01-02")
	require.NoError(t, err)

	diff := differ.Diff(oldRel, newRel)

	common, newOnly, removed := diff.Counts()
	assert.Equal(t, 1, common)
	assert.Equal(t, 1, newOnly)
	assert.Equal(t, 1, removed)

	a := joinedByID(t, diff, "A")
	require.NotNil(t, a.VotesDelta)
	assert.Equal(t, 50, *a.VotesDelta)
	require.NotNil(t, a.VotesDeltaPct)
	assert.InDelta(t, 0.5, *a.VotesDeltaPct, 1e-9)
	require.NotNil(t, a.RatingDelta)
	assert.InDelta(t, 0.2, *a.RatingDelta, 1e-9)

	assert.Equal(t, domain.MembershipNew, joinedByID(t, diff, "C").Membership())
	assert.Equal(t, domain.MembershipRemoved, joinedByID(t, diff, "B").Membership())

	boards := trends.Build(diff, domain.TrendingParams{TopN: 5, MinOldVotesForPercent: 0}.Sanitize())
	require.Len(t, boards.TopVoteGainers.Entries, 1)
	assert.Equal(t, "A", boards.TopVoteGainers.Entries[0].ID)
}

func TestDiff_Deterministic(t *testing.T) {
	service := NewService()

	oldRel := &domain.CatalogRelation{
		Label: "old",
		Entries: []domain.CatalogEntry{
			entry("tt9", intPtr(10), nil, 1),
			entry("tt1", intPtr(5), nil, 2),
		},
	}
	newRel := &domain.CatalogRelation{
		Label: "new",
		Entries: []domain.CatalogEntry{
			entry("tt5", intPtr(7), nil, 1),
			entry("tt1", intPtr(6), nil, 2),
		},
	}

	first := service.Diff(oldRel, newRel)
	second := service.Diff(oldRel, newRel)

	require.Equal(t, len(first.Entries), len(second.Entries))
	for i := range first.Entries {
		assert.Equal(t, first.Entries[i].ID, second.Entries[i].ID)
	}
}
