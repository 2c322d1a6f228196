package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFormatInt(t *testing.T) {
	tests := []struct {
		name  string
		value *int
		want  string
	}{
		{"Nil vira célula vazia", nil, ""},
		{"Sem agrupamento até três dígitos", intPtr(999), "999"},
		{"Milhar agrupado", intPtr(1234), "1,234"},
		{"Milhões agrupados", intPtr(1500000), "1,500,000"},
		{"Zero", intPtr(0), "0"},
		{"Negativo", intPtr(-1234), "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInt(tt.value))
		})
	}
}

func TestFormatSignedInt(t *testing.T) {
	assert.Equal(t, "", FormatSignedInt(nil))
	assert.Equal(t, "+1,234", FormatSignedInt(intPtr(1234)))
	assert.Equal(t, "-56", FormatSignedInt(intPtr(-56)))
	assert.Equal(t, "+0", FormatSignedInt(intPtr(0)))
}

func TestFormatSignedFloat(t *testing.T) {
	assert.Equal(t, "", FormatSignedFloat(nil, 1))
	assert.Equal(t, "+0.2", FormatSignedFloat(floatPtr(0.2), 1))
	assert.Equal(t, "-1.5", FormatSignedFloat(floatPtr(-1.5), 1))
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "", FormatPct(nil))
	assert.Equal(t, "50.0%", FormatPct(floatPtr(0.5)))
	assert.Equal(t, "-12.5%", FormatPct(floatPtr(-0.125)))
	assert.Equal(t, "100.0%", FormatPct(floatPtr(1.0)))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "", FormatScore(nil, floatPtr(0.2)))
	assert.Equal(t, "8.4 (—)", FormatScore(floatPtr(8.4), nil))
	assert.Equal(t, "8.4 (+0.2)", FormatScore(floatPtr(8.4), floatPtr(0.2)))
	assert.Equal(t, "7.0 (-0.3)", FormatScore(floatPtr(7.0), floatPtr(-0.3)))
}

func TestSnapshotLabel(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"Data no nome do arquivo", "/data/media_catalog_2024-01-02.csv", "2024-01-02"},
		{"Pasta com data", "/data/2024-01-02", "2024-01-02"},
		{"Pasta com sufixo de colisão", "/data/2024-01-02_2", "2024-01-02"},
		{"Sem data usa o nome sem extensão", "/data/media_catalog_old.csv", "media_catalog_old"},
		{"Data inválida cai no nome", "/data/catalog_2024-13-99.csv", "catalog_2024-13-99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SnapshotLabel(tt.path))
		})
	}
}
