package catalog

// Futures catalogs the futurestable: season-long award, championship and
// milestone markets, one row per outcome per book.
var Futures = Table{
	Name:        "futurestable",
	Description: "NFL futures markets such as championship winners, award races and season totals.",
	Columns: []Column{
		{Name: "PlayerID", Type: "double precision", Doc: "For a player future, the unique identifier for the player."},
		{Name: "BettingOutcomeID", Type: "bigint"},
		{Name: "BettingMarketID", Type: "bigint"},
		{Name: "PayoutAmerican", Type: "bigint", Doc: "Payout in American odds format."},
		{Name: "GlobalTeamID", Type: "double precision", Doc: "For a team future, the unique identifier for the team."},
		{Name: "BettingEventID", Type: "bigint"},
		{Name: "BettingOutcomeType", Type: "text", Enum: []string{"No", "Yes", "Under", "Over"}},
		{Name: "SportsbookUrl", Type: "text", Doc: "URL for the sportsbook."},
		{Name: "SportsBook", Type: "text", Enum: []string{"FanDuel", "Caesars", "Consensus", "BetMGM", "Fanatics", "DraftKings"}},
		{Name: "BettingMarketType", Type: "text", Enum: []string{"Team Future", "Player Future", "Coach Future", "Miscellaneous Future"}},
		{Name: "BettingBetType", Type: "text", Enum: []string{
			"NFL Championship Winner", "AFC Champion", "NFC Champion", "MVP",
			"To Make the Playoffs", "Win Total", "Coach of the Year",
			"Offensive Player of the Year", "Defensive Player of the Year",
			"AFC South Division Winner", "AFC West Division Winner",
			"NFC East Division Winner", "NFC North Division Winner",
			"AFC East Division Winner", "NFC South Division Winner",
			"NFC West Division Winner", "AFC North Division Winner",
			"Total Receiving Yards", "Total Receiving Touchdowns",
			"Total Rushing Yards", "Total Rushing Touchdowns",
			"AFC East Second Place", "AFC East Third Place",
			"AFC East Fourth Place", "AFC North Fourth Place",
			"AFC North Second Place", "AFC North Third Place",
			"AFC South Second Place", "AFC South Third Place",
			"AFC South Fourth Place", "AFC West Top 2 Finish",
			"AFC West Second Place", "AFC West Third Place",
			"AFC West Fourth Place", "NFC East Second Place",
			"NFC East Third Place", "NFC East Fourth Place",
			"NFC East Top 2 Finish", "AFC East Top 2 Finish",
			"NFC North Second Place", "NFC North Third Place",
			"NFC North Fourth Place", "NFC South Second Place",
			"NFC South Third Place", "NFC South Fourth Place",
			"NFC West Third Place", "NFC West Fourth Place",
			"NFC West Top 2 Finish", "NFC West Second Place",
			"Total Passing Yards", "Total Passing Touchdowns", "Total Sacks",
			"Most Passing Yards", "Offensive Rookie of the Year",
			"Defensive Rookie of the Year", "Any Team To Go 0-17",
			"Any Team To Go 17-0", "Most Rookie Passing Yards",
			"Most Rookie Receiving Yards", "Most Passing Touchdowns",
			"Most Receiving Yards", "Most Rushing Yards",
			"Comeback Player of the Year", "Best Record",
			"Lowest Scoring Team", "Highest Scoring Team", "AFC #1 Seed",
			"NFC #1 Seed", "Last Winless Team", "Last Team to Lose",
			"Team To Start 5-0", "Team To Start 0-5",
			"Any Game to Finish in a Tie", "To Win All 6 Division Games",
			"To Win All Home Games", "To Win All Away Games",
			"To Lose All 6 Division Games", "To Concede Most Points",
			"To Concede Least Points", "To Lose All Home Games",
			"To Lose All Road Games", "Most Rushing Touchdowns",
			"Most Receiving Touchdowns", "Total Interceptions (DEF/ST)",
			"Least Wins", "Most Wins", "Team to Go 20-0 and Win Super Bowl",
			"Team to Go 17-0", "Team to Go 0-17",
			"Most Tackles Leader (Solo & Assists)",
			"Most Interceptions Thrown", "Sack Leader", "Total Points",
			"Total Division Wins", "Worst Record", "Receptions Leader",
			"Most Quarterback Rushing Yards", "NFC Wildcard Team",
			"AFC Wildcard Team", "To Have 750+ Receiving Yards",
			"To Have 1250+ Receiving Yards", "To Have 1000+ Receiving Yards",
			"Highest Rushing Yards Total", "Longest Field Goal Made",
			"Highest Passing Yards Total", "Highest Passing TD Total",
			"Highest Interceptions Thrown Total",
			"Highest Individual Receptions Total",
			"Highest Individual Sack Total",
			"Highest Individual FG Made Total", "Highest Rushing TD Total",
			"Longest Reception", "Longest Rush", "Highest Receiving TD Total",
			"Highest Individual Passing Yards Game",
			"Highest Individual Defensive Interception Total",
			"Total Games To Go To Overtime",
			"Most Receiving Yards in Any Game",
			"Most Rushing Yards in Any Game", "Total Receptions",
			"To Have 750+ Rushing Yards", "To Have 1000+ Rushing Yards",
			"To Have 1250+ Rushing Yards",
			"Team To Score 1+ Touchdown in Every Game",
			"Most Kickoff Return Touchdowns", "Interceptions Thrown",
			"Total Yards of Longest Touchdown", "To Throw 35+ Touchdowns",
			"To Throw 30+ Touchdowns", "To Have 10+ Receiving Touchdowns",
			"To Have 12+ Receiving Touchdowns", "To Throw 40+ Touchdowns",
			"To Score 10+ Rushing Touchdowns",
			"To Have 6+ Receiving Touchdowns",
			"To Have 8+ Receiving Touchdowns", "Most Rookie Rushing Yards",
			"Total Individual 200+ Receiving Yard Games",
			"Highest Receiving Yards Total", "Assistant Coach of the Year",
			"To Be Named AP First Team All-Pro DE",
			"To Be Named AP First Team All-Pro DL",
			"To Be Named AP First Team All-Pro LB",
			"To Be Named AP First Team All-Pro TE",
			"To Be Named AP First Team All-Pro LG",
			"To Be Named AP First Team All-Pro LT",
			"To Be Named AP First Team All-Pro RB",
			"To Be Named AP First Team All-Pro RG",
			"To Be Named AP First Team All-Pro C",
			"To Be Named AP First Team All-Pro RT",
			"To Be Named AP First Team All-Pro CB",
			"To Be Named AP First Team All-Pro WR",
			"To Be Named AP First Team All-Pro QB",
			"To Be Named AP First Team All-Pro S",
			"To Be Named AP First Team All-Pro K",
			"To Be Named AP First Team All-Pro P",
		}},
		{Name: "BettingPeriodType", Type: "text", Enum: []string{"NFL Championship Game", "Regular Season - Including Playoffs", "Regular Season"}},
		{Name: "TeamKey", Type: "text", Doc: "For a team future, the short form of the team, for example the 49ers are SF."},
		{Name: "PlayerName", Type: "text", Doc: "For a player future, the name of the player."},
		{Name: "Created", Type: "text", Doc: "Timestamp the record was created, like 2024-09-07T00:15:00."},
		{Name: "Updated", Type: "text", Doc: "Timestamp the record was last updated, like 2024-09-07T00:15:00."},
	},
}
