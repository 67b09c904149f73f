package carteira

import "strings"

// EvolutionPoint is one month of the net-worth series as the backend reports
// it. Field names mirror the wire payload.
type EvolutionPoint struct {
	Date           string  `json:"date"` // "Mon/YY" token, e.g. "Jan/24"
	InvestedAmount float64 `json:"valorAplicado"`
	TotalValue     float64 `json:"patrimonio"`
}

// EvolutionEntry is a display-ready point: deduplicated, date translated,
// capital gain derived.
type EvolutionEntry struct {
	Date           string
	InvestedAmount float64
	CapitalGain    float64
	TotalValue     float64
}

// monthNames translates the backend's English month tokens. Unrecognized
// tokens pass through.
var monthNames = map[string]string{
	"Jan": "Jan", "Feb": "Fev", "Mar": "Mar", "Apr": "Abr",
	"May": "Mai", "Jun": "Jun", "Jul": "Jul", "Aug": "Ago",
	"Sep": "Set", "Oct": "Out", "Nov": "Nov", "Dec": "Dez",
}

// FormatChartDate rewrites a "Mon/YY" token with the translated month name.
// Anything that is not a month/year token is returned unchanged.
func FormatChartDate(date string) string {
	month, year, ok := strings.Cut(date, "/")
	if !ok {
		return date
	}
	if translated, found := monthNames[month]; found {
		month = translated
	}
	return month + "/" + year
}

// Dedupe keeps the last occurrence per date, preserving chronological order.
// Input is oldest-to-newest; the scan runs newest-to-oldest recording
// first-seen dates, which are by construction the last occurrence of each.
// Applying Dedupe twice yields the same result as applying it once.
func Dedupe(points []EvolutionPoint) []EvolutionPoint {
	seen := make(map[string]bool, len(points))
	kept := make([]EvolutionPoint, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		if seen[p.Date] {
			continue
		}
		seen[p.Date] = true
		kept = append(kept, p)
	}
	// kept is newest-to-oldest; reverse it back.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// Shape turns the raw series into display entries: dedupe, derive the capital
// gain, translate the date token.
func Shape(points []EvolutionPoint) []EvolutionEntry {
	deduped := Dedupe(points)
	entries := make([]EvolutionEntry, 0, len(deduped))
	for _, p := range deduped {
		entries = append(entries, EvolutionEntry{
			Date:           FormatChartDate(p.Date),
			InvestedAmount: p.InvestedAmount,
			CapitalGain:    p.TotalValue - p.InvestedAmount,
			TotalValue:     p.TotalValue,
		})
	}
	return entries
}

// TrailingReturn computes the return between the first point holding actual
// value and the newest point. It is undefined (ok=false) for series shorter
// than two points or with no positive-value point; callers must render it as
// absent, never as zero.
func TrailingReturn(points []EvolutionPoint) (r Percent, ok bool) {
	if len(points) < 2 {
		return 0, false
	}
	baseline := -1
	for i, p := range points {
		if p.TotalValue > 0 {
			baseline = i
			break
		}
	}
	if baseline < 0 {
		return 0, false
	}
	base := points[baseline].TotalValue
	if base == 0 { // unreachable given the search above, kept as a division guard
		return 0, false
	}
	newest := points[len(points)-1].TotalValue
	return Percent((newest - base) / base * 100), true
}
