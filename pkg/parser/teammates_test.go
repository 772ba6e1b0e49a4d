package parser

import (
	"testing"

	"github.com/myusername/leaderboard-extractor/pkg/models"
)

const teammatesPage = `<!DOCTYPE html>
<html>
<head><title>Mira Central - Ranked Among Us Leaderboards</title></head>
<body>
<img class="avatar avatarTop" src="https://cdn.discordapp.com/avatars/184325924726571008/9f2b.png">
<h1>AmongSus</h1>
<h4 class="sectionTitle">Top 10 Common Teammates</h4>
<table class="teammates sortable">
  <tbody>
    <tr><th>#</th><th>Player</th><th>MMR</th><th>Matches</th></tr>
    <tr class="clickable-row" data-href="./?tournament=Season 3&amp;id=98765432109876543">
      <th>1</th>
      <td><img class="avatar" src="https://cdn.discordapp.com/avatars/98765432109876543/ef.png"> Redshift </td>
      <td>1422</td>
      <td>87 [42%]</td>
    </tr>
    <tr class="clickable-row" data-href="./?tournament=Season 3&amp;id=12345678901234567">
      <th>2</th>
      <td><img class="avatar" src="/img/default_avatar.png">Blueshift</td>
      <td>1371</td>
      <td>61 [29%]</td>
    </tr>
    <tr class="clickable-row">
      <th>3</th>
      <td><img src="/img/default_avatar.png">NoHref</td>
      <td>1300</td>
      <td>10 [5%]</td>
    </tr>
    <tr class="clickable-row" data-href="./?tournament=Season 3&amp;id=22222222222222222">
      <th>4</th>
      <td><img src="/img/default_avatar.png">BadCombo</td>
      <td>1280</td>
      <td>12 of 40</td>
    </tr>
  </tbody>
</table>
</body>
</html>`

func TestTeammates(t *testing.T) {
	doc := mustParse(t, teammatesPage)
	teammates := doc.Teammates()

	expected := []models.Teammate{
		{Rank: 1, DiscordID: "98765432109876543", Username: "Redshift", MMR: 1422, MatchesTogether: 87, MatchesTogetherPct: 42},
		{Rank: 2, DiscordID: "12345678901234567", Username: "Blueshift", MMR: 1371, MatchesTogether: 61, MatchesTogetherPct: 29},
	}

	if len(teammates) != len(expected) {
		t.Fatalf("expected %d teammates, got %d: %+v", len(expected), len(teammates), teammates)
	}
	for i, tm := range teammates {
		if tm != expected[i] {
			t.Errorf("teammate %d expected %+v, got %+v", i, expected[i], tm)
		}
	}
}

func TestTeammatesSectionMissing(t *testing.T) {
	doc := mustParse(t, `<html><body><h1>Loner</h1></body></html>`)
	if teammates := doc.Teammates(); len(teammates) != 0 {
		t.Errorf("expected no teammates, got %+v", teammates)
	}
}

func TestTeammatePageIdentity(t *testing.T) {
	// Teammate rows carry their own discord avatar URLs; the player's id
	// must still come from the top avatar, which renders first.
	doc := mustParse(t, teammatesPage)

	ident, err := doc.Identity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ident.DiscordID != "184325924726571008" {
		t.Errorf("player discord id was not expected value: '%s'", ident.DiscordID)
	}
}
