package parser

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/myusername/leaderboard-extractor/pkg/models"
)

const recentResultsMarker = "Recent 10 Results"

var (
	decimalPctRe = regexp.MustCompile(`^([\d.]+)%$`)
	mmrChangeRe  = regexp.MustCompile(`^\+?(-?[\d.]+)`)
	pctOfTotalRe = regexp.MustCompile(`([\d.]+)%\s*of\s*total`)
)

// Matches extracts the recent-results table in rendered order, most recent
// first. Pages without the section yield an empty slice, not an error. Rows
// that do not carry the full six-cell shape are dropped whole; a row never
// produces a partial record.
func (d *Document) Matches() []models.Match {
	var matches []models.Match

	marker := d.findMarker(recentResultsMarker)
	if marker == nil {
		return matches
	}
	table := nextElement(marker, "table", "archiveResults")
	if table == nil {
		return matches
	}

	goquery.NewDocumentFromNode(table).Find("tr").Each(func(_ int, row *goquery.Selection) {
		if m, ok := parseMatchRow(row); ok {
			matches = append(matches, m)
		}
	})
	return matches
}

// parseMatchRow reads one results row: match id, map icon, role icon, win
// probability, outcome label and rating change. The header row fails the
// first check (its id cell is not numeric) and is skipped like any other
// non-conforming row.
func parseMatchRow(row *goquery.Selection) (models.Match, bool) {
	var m models.Match

	id, ok := cellInt(row.ChildrenFiltered("th").First())
	if !ok {
		return m, false
	}

	cells := row.ChildrenFiltered("td")
	if cells.Length() < 5 {
		return m, false
	}

	mapImg := cells.Eq(0).Find("img")
	roleImg := cells.Eq(1).Find("img")
	if mapImg.Length() == 0 || roleImg.Length() == 0 {
		return m, false
	}

	winProb, ok := cellDecimalPct(cells.Eq(2))
	if !ok {
		return m, false
	}
	result, ok := models.ParseResult(cellText(cells.Eq(3)))
	if !ok {
		return m, false
	}
	change, pctOfTotal, ok := parseMMRCell(cellText(cells.Eq(4)))
	if !ok {
		return m, false
	}

	return models.Match{
		ID:             id,
		Map:            models.ParseMap(mapImg.AttrOr("src", "")),
		Role:           models.ParseRole(roleImg.AttrOr("src", "")),
		WinProbability: winProb,
		Result:         result,
		MMRChange:      change,
		MMRPctOfTotal:  pctOfTotal,
	}, true
}

// cellDecimalPct parses a cell whose entire text is a decimal percentage,
// keeping the number as printed.
func cellDecimalPct(s *goquery.Selection) (string, bool) {
	m := decimalPctRe.FindStringSubmatch(cellText(s))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// parseMMRCell splits a "+12 (5% of total)" style cell into the signed
// rating change and the optional share annotation. A leading "+" is
// stripped, a leading "-" preserved; the annotation stays "" when absent.
func parseMMRCell(text string) (change, pctOfTotal string, ok bool) {
	m := mmrChangeRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	change = m[1]

	rest := text[len(m[0]):]
	if pm := pctOfTotalRe.FindStringSubmatch(rest); pm != nil {
		pctOfTotal = pm[1]
	}
	return change, pctOfTotal, true
}
