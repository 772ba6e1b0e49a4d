package models

import (
	"regexp"
	"strings"
)

type MapName string

const (
	MAP_UNKNOWN MapName = "Unknown"
	MAP_POLUS   MapName = "Polus"
	MAP_MIRA_HQ MapName = "MIRA HQ"
	MAP_SKELD   MapName = "The Skeld"
	MAP_AIRSHIP MapName = "Airship"
)

// ParseMap classifies a map icon by the asset name its reference contains.
// Checks run in a fixed order so that an ambiguous reference always resolves
// the same way.
func ParseMap(src string) MapName {
	src = strings.ToLower(src)
	switch {
	case strings.Contains(src, "polus"):
		return MAP_POLUS
	case strings.Contains(src, "mira"):
		return MAP_MIRA_HQ
	case strings.Contains(src, "skeld"):
		return MAP_SKELD
	case strings.Contains(src, "airship"):
		return MAP_AIRSHIP
	default:
		return MAP_UNKNOWN
	}
}

type Role string

const (
	ROLE_UNKNOWN  Role = "Unknown"
	ROLE_CREWMATE Role = "Crewmate"
	ROLE_IMPOSTOR Role = "Impostor"
)

// ParseRole classifies a role icon by the asset name its reference contains.
func ParseRole(src string) Role {
	src = strings.ToLower(src)
	switch {
	case strings.Contains(src, "crew"):
		return ROLE_CREWMATE
	case strings.Contains(src, "impostor"):
		return ROLE_IMPOSTOR
	default:
		return ROLE_UNKNOWN
	}
}

type MatchResult string

const (
	RESULT_WON  MatchResult = "Won"
	RESULT_LOSS MatchResult = "Loss"
)

// ParseResult accepts only the two literal outcome labels the results table
// renders. Anything else means the cell is not a result cell.
func ParseResult(s string) (MatchResult, bool) {
	switch s {
	case "Won":
		return RESULT_WON, true
	case "Loss":
		return RESULT_LOSS, true
	default:
		return "", false
	}
}

type StatCategory string

const (
	CATEGORY_COMBINED StatCategory = "Combined"
	CATEGORY_CREWMATE StatCategory = "Crewmate"
	CATEGORY_IMPOSTOR StatCategory = "Impostor"
)

var (
	crewmateColor = regexp.MustCompile(`color:\s*royalblue`)
	impostorColor = regexp.MustCompile(`color:\s*red`)
	combinedColor = regexp.MustCompile(`color:\s*white`)
)

// ClassifyStatRow identifies which per-role stats row a header cell marks,
// from its inline style and the icon references it embeds. Crewmate rows are
// royalblue with a crew icon, impostor rows red with an impostor icon, and
// the combined row plain white with no icon requirement. Rows matching none
// of the markers carry no sub-record.
func ClassifyStatRow(style, iconSrc string) (StatCategory, bool) {
	switch {
	case crewmateColor.MatchString(style) && strings.Contains(iconSrc, "steam_AboutCrew"):
		return CATEGORY_CREWMATE, true
	case impostorColor.MatchString(style) && strings.Contains(iconSrc, "steam_AboutImpostor"):
		return CATEGORY_IMPOSTOR, true
	case combinedColor.MatchString(style):
		return CATEGORY_COMBINED, true
	default:
		return "", false
	}
}
