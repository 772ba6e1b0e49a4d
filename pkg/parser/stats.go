package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/myusername/leaderboard-extractor/pkg/models"
)

// Stats extracts the per-role aggregate rows of the profile table. Role rows
// are recognized by their header-cell markers, not by table position, so the
// profile table needs no id or class of its own. A role whose row is missing
// or malformed stays nil; a page never yields a partially filled sub-record.
func (d *Document) Stats() models.PlayerStats {
	var stats models.PlayerStats
	d.doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		th := row.ChildrenFiltered("th").First()
		if th.Length() == 0 {
			return
		}

		style, _ := th.Attr("style")
		var icons []string
		th.Find("img").Each(func(_ int, img *goquery.Selection) {
			icons = append(icons, img.AttrOr("src", ""))
		})

		category, ok := models.ClassifyStatRow(style, strings.Join(icons, " "))
		if !ok {
			return
		}
		line, ok := parseStatCells(row.ChildrenFiltered("td"))
		if !ok {
			return
		}

		// First matching row per category wins.
		switch category {
		case models.CATEGORY_COMBINED:
			if stats.Combined == nil {
				stats.Combined = line
			}
		case models.CATEGORY_CREWMATE:
			if stats.Crewmate == nil {
				stats.Crewmate = line
			}
		case models.CATEGORY_IMPOSTOR:
			if stats.Impostor == nil {
				stats.Impostor = line
			}
		}
	})
	return stats
}

// parseStatCells reads the six profile columns: rank, mmr, games-played
// share, wins, losses and win rate. Rank and the two shares must be the
// cell's entire text; the others only need to lead with digits because the
// page appends change arrows to them.
func parseStatCells(cells *goquery.Selection) (*models.RoleStats, bool) {
	if cells.Length() < 6 {
		return nil, false
	}

	rank, ok := cellInt(cells.Eq(0))
	if !ok {
		return nil, false
	}
	mmr, ok := cellLeadingInt(cells.Eq(1))
	if !ok {
		return nil, false
	}
	played, ok := cellIntPct(cells.Eq(2))
	if !ok {
		return nil, false
	}
	wins, ok := cellLeadingInt(cells.Eq(3))
	if !ok {
		return nil, false
	}
	losses, ok := cellLeadingInt(cells.Eq(4))
	if !ok {
		return nil, false
	}
	winPct, ok := cellIntPct(cells.Eq(5))
	if !ok {
		return nil, false
	}

	return &models.RoleStats{
		Rank:           rank,
		MMR:            mmr,
		GamesPlayedPct: played,
		Wins:           wins,
		Losses:         losses,
		WinPct:         winPct,
	}, true
}
