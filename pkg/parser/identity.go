package parser

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/myusername/leaderboard-extractor/pkg/models"
)

// ErrNoDiscordID reports a page with no resolvable player discord id. Such a
// page cannot be keyed, so it yields no rows for any record kind.
var ErrNoDiscordID = errors.New("no player discord id found")

var (
	titleRe   = regexp.MustCompile(`(?i)^\s*(.+?)\s*-\s*Ranked Among Us Leaderboards\s*$`)
	seasonRe  = regexp.MustCompile(`(?i)Season\s+(\d+)`)
	avatarRe  = regexp.MustCompile(`cdn\.discordapp\.com/avatars/(\d+)/`)
	idParamRe = regexp.MustCompile(`[?&]id=(\d+)`)
)

// ServerName returns the server name from the page title. Every leaderboard
// page titles itself "<server> - Ranked Among Us Leaderboards"; a title in
// any other shape means the name is absent.
func (d *Document) ServerName() (string, bool) {
	title := d.doc.Find("title").First().Text()
	m := titleRe.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Season returns the season number advertised by the page's tournament
// navigation references. The first reference carrying a tournament query
// parameter decides: a value without a "Season N" token yields "0", the same
// default as a page with no tournament reference at all.
func (d *Document) Season() string {
	season := "0"
	d.doc.Find("[data-href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("data-href")
		val, ok := queryParam(href, "tournament")
		if !ok {
			return true
		}
		if m := seasonRe.FindStringSubmatch(val); m != nil {
			season = m[1]
		}
		return false
	})
	return season
}

// DiscordID returns the player's discord id. The avatar image URL is the
// primary source; pages showing a stock avatar fall back to the id parameter
// of the first navigation reference that has one. The fallback applies to
// every record kind so that all three tables key a given page identically.
func (d *Document) DiscordID() (string, bool) {
	id := ""
	d.doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if m := avatarRe.FindStringSubmatch(src); m != nil {
			id = m[1]
			return false
		}
		return true
	})
	if id != "" {
		return id, true
	}

	d.doc.Find("[data-href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("data-href")
		if m := idParamRe.FindStringSubmatch(href); m != nil {
			id = m[1]
			return false
		}
		return true
	})
	return id, id != ""
}

// Username returns the display name heading that follows the top avatar
// image in document order.
func (d *Document) Username() (string, bool) {
	avatar := d.doc.Find(".avatar.avatarTop").First()
	if avatar.Length() == 0 {
		return "", false
	}
	h1 := nextElement(avatar.Nodes[0], "h1", "")
	if h1 == nil {
		return "", false
	}
	name := cellText(goquery.NewDocumentFromNode(h1).Selection)
	if name == "" {
		return "", false
	}
	return name, true
}

// Identity resolves the composite key shared by every row of the page,
// applying the documented defaults for the optional fields.
func (d *Document) Identity() (models.Identity, error) {
	id, ok := d.DiscordID()
	if !ok {
		return models.Identity{}, ErrNoDiscordID
	}

	ident := models.Identity{
		ServerName: "Unknown",
		Season:     d.Season(),
		DiscordID:  id,
		Username:   "Unknown",
	}
	if name, ok := d.ServerName(); ok {
		ident.ServerName = name
	}
	if user, ok := d.Username(); ok {
		ident.Username = user
	}
	return ident, nil
}

// queryParam pulls one query parameter out of a navigation reference.
// References in these pages are relative ("./?tournament=Season 3&id=...")
// and may carry raw spaces, which url.Parse tolerates.
func queryParam(href, key string) (string, bool) {
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	vals := u.Query()
	if _, ok := vals[key]; !ok {
		return "", false
	}
	return strings.TrimSpace(vals.Get(key)), true
}
