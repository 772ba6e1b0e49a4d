// Package tables shapes extracted records into flat rows for the three
// output tables.
package tables

import (
	"fmt"
	"strconv"

	"github.com/myusername/leaderboard-extractor/pkg/models"
	"github.com/myusername/leaderboard-extractor/pkg/parser"
)

// Kind selects which record kind a run extracts.
type Kind string

const (
	KIND_STATS     Kind = "stats"
	KIND_MATCHES   Kind = "matches"
	KIND_TEAMMATES Kind = "teammates"
)

// AbsentStat is the literal the stats table renders for a missing value.
// The match and teammate tables leave absent fields empty instead.
const AbsentStat = "N/A"

// ParseKind maps a command-line kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KIND_STATS, KIND_MATCHES, KIND_TEAMMATES:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown record kind '%s' (want stats, matches or teammates)", s)
}

// Name returns the output table's name.
func (k Kind) Name() string {
	switch k {
	case KIND_STATS:
		return "player_main_stats"
	case KIND_MATCHES:
		return "match_history"
	case KIND_TEAMMATES:
		return "common_teammates"
	}
	return ""
}

// DefaultOutput returns the default output filename for the kind.
func (k Kind) DefaultOutput() string {
	return k.Name() + ".csv"
}

// Columns returns the kind's header row. The stats table names its identity
// columns without the player_ prefix; its consumers expect that shape.
func (k Kind) Columns() []string {
	switch k {
	case KIND_STATS:
		cols := []string{"server_name", "season", "discord_id", "username"}
		for _, role := range []string{"combined", "crewmate", "impostor"} {
			for _, field := range []string{"rank", "mmr", "games_played_pct", "wins", "losses", "win_pct"} {
				cols = append(cols, role+"_"+field)
			}
		}
		return cols
	case KIND_MATCHES:
		return []string{
			"server_name", "season", "player_discord_id", "player_username",
			"match_id", "map", "role", "win_probability_pct", "result",
			"mmr_change", "mmr_pct_of_total",
		}
	case KIND_TEAMMATES:
		return []string{
			"server_name", "season", "player_discord_id", "player_username",
			"teammate_rank", "teammate_discord_id", "teammate_username",
			"teammate_mmr", "matches_together_count", "matches_together_pct",
		}
	}
	return nil
}

// Rows extracts the kind's records from a parsed page and assembles them
// into output rows. The stats kind always yields exactly one row; the other
// kinds yield one row per record, in page order.
func Rows(k Kind, ident models.Identity, doc *parser.Document) [][]string {
	switch k {
	case KIND_STATS:
		return [][]string{StatsRow(ident, doc.Stats())}
	case KIND_MATCHES:
		return MatchRows(ident, doc.Matches())
	case KIND_TEAMMATES:
		return TeammateRows(ident, doc.Teammates())
	}
	return nil
}

// StatsRow builds the aggregate-stats row for a page. A role whose stats
// were missing or malformed renders as six absent fields.
func StatsRow(ident models.Identity, stats models.PlayerStats) []string {
	row := identityFields(ident)
	row = append(row, roleFields(stats.Combined)...)
	row = append(row, roleFields(stats.Crewmate)...)
	row = append(row, roleFields(stats.Impostor)...)
	return row
}

// MatchRows builds one match-history row per match, keyed by the page's
// identity.
func MatchRows(ident models.Identity, matches []models.Match) [][]string {
	var rows [][]string
	for _, m := range matches {
		row := identityFields(ident)
		row = append(row,
			strconv.Itoa(m.ID),
			string(m.Map),
			string(m.Role),
			m.WinProbability,
			string(m.Result),
			m.MMRChange,
			m.MMRPctOfTotal,
		)
		rows = append(rows, row)
	}
	return rows
}

// TeammateRows builds one teammates row per teammate, keyed by the page's
// identity.
func TeammateRows(ident models.Identity, teammates []models.Teammate) [][]string {
	var rows [][]string
	for _, tm := range teammates {
		row := identityFields(ident)
		row = append(row,
			strconv.Itoa(tm.Rank),
			tm.DiscordID,
			tm.Username,
			strconv.Itoa(tm.MMR),
			strconv.Itoa(tm.MatchesTogether),
			strconv.Itoa(tm.MatchesTogetherPct),
		)
		rows = append(rows, row)
	}
	return rows
}

func identityFields(ident models.Identity) []string {
	return []string{ident.ServerName, ident.Season, ident.DiscordID, ident.Username}
}

func roleFields(rs *models.RoleStats) []string {
	if rs == nil {
		return []string{AbsentStat, AbsentStat, AbsentStat, AbsentStat, AbsentStat, AbsentStat}
	}
	return []string{
		strconv.Itoa(rs.Rank),
		strconv.Itoa(rs.MMR),
		strconv.Itoa(rs.GamesPlayedPct),
		strconv.Itoa(rs.Wins),
		strconv.Itoa(rs.Losses),
		strconv.Itoa(rs.WinPct),
	}
}
