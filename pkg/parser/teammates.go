package parser

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/myusername/leaderboard-extractor/pkg/models"
)

const teammatesMarker = "Top 10 Common Teammates"

var countBracketPctRe = regexp.MustCompile(`^(\d+)\s*\[(\d+)%\]$`)

// Teammates extracts the common-teammates table in rendered rank order.
// Pages without the section yield an empty slice, not an error; rows failing
// the expected shape are dropped whole.
func (d *Document) Teammates() []models.Teammate {
	var teammates []models.Teammate

	marker := d.findMarker(teammatesMarker)
	if marker == nil {
		return teammates
	}
	table := nextElement(marker, "table", "")
	if table == nil {
		return teammates
	}

	goquery.NewDocumentFromNode(table).Find("tr").Each(func(_ int, row *goquery.Selection) {
		if tm, ok := parseTeammateRow(row); ok {
			teammates = append(teammates, tm)
		}
	})
	return teammates
}

// parseTeammateRow reads one clickable teammate row. The row's own data-href
// carries the teammate's discord id; the username cell is the one holding
// the avatar image, immediately followed by the mmr cell and the combined
// "count [pct%]" cell, which splits into two fields.
func parseTeammateRow(row *goquery.Selection) (models.Teammate, bool) {
	var tm models.Teammate

	href, ok := row.Attr("data-href")
	if !ok {
		return tm, false
	}
	idm := idParamRe.FindStringSubmatch(href)
	if idm == nil {
		return tm, false
	}

	rank, ok := cellInt(row.ChildrenFiltered("th").First())
	if !ok {
		return tm, false
	}

	cells := row.ChildrenFiltered("td")
	nameIdx := -1
	for i := 0; i < cells.Length(); i++ {
		if cells.Eq(i).Find("img").Length() > 0 {
			nameIdx = i
			break
		}
	}
	if nameIdx == -1 || nameIdx+2 >= cells.Length() {
		return tm, false
	}

	mmr, ok := cellInt(cells.Eq(nameIdx + 1))
	if !ok {
		return tm, false
	}
	cm := countBracketPctRe.FindStringSubmatch(cellText(cells.Eq(nameIdx + 2)))
	if cm == nil {
		return tm, false
	}
	count, _ := strconv.Atoi(cm[1])
	pct, _ := strconv.Atoi(cm[2])

	return models.Teammate{
		Rank:               rank,
		DiscordID:          idm[1],
		Username:           cellText(cells.Eq(nameIdx)),
		MMR:                mmr,
		MatchesTogether:    count,
		MatchesTogetherPct: pct,
	}, true
}
