package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber — разделители тысяч в целой части, дробная часть как есть.
// Пустое/нулевое значение отдаём как "0". Без округления и без локалей.
func FormatNumber(value any) string {
	s := stringify(value)
	if s == "" || s == "0" {
		return "0"
	}

	whole, decimal, hasDecimal := strings.Cut(s, ".")

	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = strings.TrimPrefix(whole, "-")
	}

	grouped := groupThousands(whole)
	if neg {
		grouped = "-" + grouped
	}
	if hasDecimal {
		return grouped + "." + decimal
	}
	return grouped
}

// ParseNumber — обратная операция: убирает разделители.
// FormatNumber(ParseNumber(x)) == x для любого вывода FormatNumber.
func ParseNumber(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == 0 {
			return "0"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return stringify(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
