// Package models contains the record types extracted from leaderboard pages
package models

// Identity holds the composite key shared by every record from one page.
// ServerName and Username default to "Unknown" and Season to "0" when the
// page does not carry them; DiscordID has no default because a page without
// it cannot be keyed at all.
type Identity struct {
	ServerName string
	Season     string
	DiscordID  string
	Username   string
}

// RoleStats holds the six aggregate columns of one role row on the profile
type RoleStats struct {
	Rank           int
	MMR            int
	GamesPlayedPct int
	Wins           int
	Losses         int
	WinPct         int
}

// PlayerStats groups the per-role rows of a profile page. A nil sub-record
// means the page had no well-formed row for that role; there is no partially
// filled sub-record.
type PlayerStats struct {
	Combined *RoleStats
	Crewmate *RoleStats
	Impostor *RoleStats
}

// Match is one entry of the recent-results table. The decimal fields keep
// the text as printed on the page so that "63.5" is not rewritten to "63.50"
// somewhere downstream. MMRChange has a leading "+" stripped and a leading
// "-" preserved; MMRPctOfTotal is empty when the page omits the share
// annotation.
type Match struct {
	ID             int
	Map            MapName
	Role           Role
	WinProbability string
	Result         MatchResult
	MMRChange      string
	MMRPctOfTotal  string
}

// Teammate is one entry of the common-teammates table
type Teammate struct {
	Rank               int
	DiscordID          string
	Username           string
	MMR                int
	MatchesTogether    int
	MatchesTogetherPct int
}
