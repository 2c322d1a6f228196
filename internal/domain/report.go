package domain

import "time"

// ReportCell é uma célula já formatada para exibição. URL preenchida apenas
// em células de título com link para o IMDb.
type ReportCell struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// ReportSection é uma tabela do relatório, correspondente a um leaderboard
type ReportSection struct {
	Kind        LeaderboardKind `json:"kind"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Columns     []string        `json:"columns"`
	Rows        [][]ReportCell  `json:"rows"`
}

// ReportSummary é o painel de KPIs do topo do relatório
type ReportSummary struct {
	CommonTitles  int       `json:"common_titles"`
	NewTitles     int       `json:"new_titles"`
	RemovedTitles int       `json:"removed_titles"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Report é o documento estruturado final: sumário + uma seção por leaderboard
type Report struct {
	OldLabel string          `json:"old_label"`
	NewLabel string          `json:"new_label"`
	Summary  ReportSummary   `json:"summary"`
	Sections []ReportSection `json:"sections"`
}
