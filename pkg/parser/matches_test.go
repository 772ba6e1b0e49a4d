package parser

import (
	"testing"

	"github.com/myusername/leaderboard-extractor/pkg/models"
)

const matchesPage = `<!DOCTYPE html>
<html>
<head><title>Airship Alley - Ranked Among Us Leaderboards</title></head>
<body>
<img class="avatar avatarTop" src="https://cdn.discordapp.com/avatars/777888999000111222/cd.png">
<h1>LastOneOut</h1>
<h3 class="sectionTitle">Recent 10 Results</h3>
<table class="archiveResults sortable">
  <tbody>
    <tr>
      <th>Match</th><th>Map</th><th>Role</th><th>Win %</th><th>Result</th><th>MMR</th>
    </tr>
    <tr>
      <th>88121</th>
      <td><img src="/img/airship_banner.png"></td>
      <td><img src="/img/steam_AboutImpostor_v2.png"></td>
      <td>63.5%</td>
      <td><span class="result-badge">Won</span></td>
      <td>+12 (5% of total)</td>
    </tr>
    <tr>
      <th>88120</th>
      <td><img src="/img/polus.png"></td>
      <td><img src="/img/steam_AboutCrew_v2.png"></td>
      <td>41.0%</td>
      <td><span>Loss</span></td>
      <td>-7.5</td>
    </tr>
    <tr>
      <th>88119</th>
      <td><img src="/img/fungle.png"></td>
      <td><img src="/img/ghost.png"></td>
      <td>50.0%</td>
      <td><span>Won</span></td>
      <td>+3 (1% of total)</td>
    </tr>
    <tr>
      <th>88118</th>
      <td><img src="/img/mira_hq.png"></td>
      <td><img src="/img/steam_AboutCrew_v2.png"></td>
      <td>55%</td>
      <td><span>Draw</span></td>
      <td>+1</td>
    </tr>
    <tr>
      <th>88117</th>
      <td>?</td>
      <td><img src="/img/steam_AboutCrew_v2.png"></td>
      <td>48.2%</td>
      <td><span>Loss</span></td>
      <td>-4</td>
    </tr>
  </tbody>
</table>
</body>
</html>`

func TestMatches(t *testing.T) {
	doc := mustParse(t, matchesPage)
	matches := doc.Matches()

	expected := []models.Match{
		{ID: 88121, Map: models.MAP_AIRSHIP, Role: models.ROLE_IMPOSTOR, WinProbability: "63.5", Result: models.RESULT_WON, MMRChange: "12", MMRPctOfTotal: "5"},
		{ID: 88120, Map: models.MAP_POLUS, Role: models.ROLE_CREWMATE, WinProbability: "41.0", Result: models.RESULT_LOSS, MMRChange: "-7.5", MMRPctOfTotal: ""},
		{ID: 88119, Map: models.MAP_UNKNOWN, Role: models.ROLE_UNKNOWN, WinProbability: "50.0", Result: models.RESULT_WON, MMRChange: "3", MMRPctOfTotal: "1"},
	}

	if len(matches) != len(expected) {
		t.Fatalf("expected %d matches, got %d: %+v", len(expected), len(matches), matches)
	}
	for i, m := range matches {
		if m != expected[i] {
			t.Errorf("match %d expected %+v, got %+v", i, expected[i], m)
		}
	}
}

func TestMatchesSectionMissing(t *testing.T) {
	doc := mustParse(t, `<html><body><h1>NoHistory</h1></body></html>`)
	if matches := doc.Matches(); len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestMatchesMarkerWithoutTable(t *testing.T) {
	doc := mustParse(t, `<html><body><h3>Recent 10 Results</h3><p>coming soon</p></body></html>`)
	if matches := doc.Matches(); len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestMatchesSkipsUnrelatedTable(t *testing.T) {
	// A legend table sits between the heading and the results; only the
	// results table should be read.
	page := `<html><body>
<h3>Recent 10 Results</h3>
<table class="legend"><tr><th>1</th><td>a</td><td>b</td><td>c</td><td>d</td><td>e</td></tr></table>
<table class="archiveResults">
<tr>
  <th>500</th>
  <td><img src="/img/polus.png"></td>
  <td><img src="/img/steam_AboutImpostor_v2.png"></td>
  <td>70.1%</td>
  <td><span>Won</span></td>
  <td>+9</td>
</tr>
</table>
</body></html>`

	doc := mustParse(t, page)
	matches := doc.Matches()
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(matches), matches)
	}
	if matches[0].ID != 500 || matches[0].Map != models.MAP_POLUS {
		t.Errorf("unexpected match: %+v", matches[0])
	}
}

func TestParseMMRCell(t *testing.T) {
	tests := map[string]struct {
		input      string
		change     string
		pctOfTotal string
		ok         bool
	}{
		"gain with share":        {input: "+12 (5% of total)", change: "12", pctOfTotal: "5", ok: true},
		"loss with share":        {input: "-8 (3% of total)", change: "-8", pctOfTotal: "3", ok: true},
		"decimal loss, no share": {input: "-7.5", change: "-7.5", ok: true},
		"bare gain":              {input: "+1", change: "1", ok: true},
		"unsigned value":         {input: "15 (2% of total)", change: "15", pctOfTotal: "2", ok: true},
		"no leading number":      {input: "n/a"},
		"empty":                  {input: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			change, pctOfTotal, ok := parseMMRCell(tc.input)
			if ok != tc.ok || change != tc.change || pctOfTotal != tc.pctOfTotal {
				t.Errorf("input: '%s', expected ('%s', '%s', %t), got ('%s', '%s', %t)",
					tc.input, tc.change, tc.pctOfTotal, tc.ok, change, pctOfTotal, ok)
			}
		})
	}
}
