package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Funções puras de formatação para o relatório. Valores ausentes (nil)
// sempre viram célula vazia, nunca texto de erro.

// FormatInt formata um inteiro com separador de milhar: 1234567 -> "1,234,567"
func FormatInt(value *int) string {
	if value == nil {
		return ""
	}
	return groupThousands(*value, false)
}

// FormatSignedInt formata um delta inteiro com sinal explícito: "+1,234" / "-56"
func FormatSignedInt(value *int) string {
	if value == nil {
		return ""
	}
	return groupThousands(*value, true)
}

// FormatFloat formata um float com o número de casas pedido
func FormatFloat(value *float64, digits int) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', digits, 64)
}

// FormatSignedFloat formata um delta float com sinal explícito: "+0.2" / "-1.5"
func FormatSignedFloat(value *float64, digits int) string {
	if value == nil {
		return ""
	}
	formatted := strconv.FormatFloat(*value, 'f', digits, 64)
	if *value >= 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatPct formata uma fração como percentual com uma casa: 0.5 -> "50.0%"
func FormatPct(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(100.0**value, 'f', 1, 64) + "%"
}

// FormatScore produz a célula combinada de nota: "<rating> (<delta com sinal>)",
// "<rating> (—)" quando não há delta aplicável, e vazio sem rating
func FormatScore(rating *float64, ratingDelta *float64) string {
	if rating == nil {
		return ""
	}
	latest := strconv.FormatFloat(*rating, 'f', 1, 64)
	if ratingDelta == nil {
		return fmt.Sprintf("%s (—)", latest)
	}
	return fmt.Sprintf("%s (%s)", latest, FormatSignedFloat(ratingDelta, 1))
}

func groupThousands(value int, signed bool) string {
	prefix := ""
	if value < 0 {
		prefix = "-"
		value = -value
	} else if signed {
		prefix = "+"
	}

	digits := strconv.Itoa(value)
	if len(digits) <= 3 {
		return prefix + digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return prefix + b.String()
}
