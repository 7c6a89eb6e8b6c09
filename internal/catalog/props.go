package catalog

// Props catalogs the props table: sportsbook game lines and prop markets,
// one row per outcome per book.
var Props = Table{
	Name:        "props",
	Description: "NFL betting lines and props across sportsbooks, one row per betting outcome.",
	Columns: []Column{
		{Name: "PointSpreadAwayTeamMoneyLine", Type: "bigint"},
		{Name: "PointSpreadHomeTeamMoneyLine", Type: "bigint"},
		{Name: "ScoreID", Type: "bigint", Doc: "Unique identifier for the game score."},
		{Name: "Week", Type: "bigint", Doc: "The week number of the game in the season."},
		{Name: "OverPayout", Type: "bigint", Doc: "Payout for betting over the total points."},
		{Name: "UnderPayout", Type: "bigint", Doc: "Payout for betting under the total points."},
		{Name: "PlayerID", Type: "double precision", Doc: "Unique identifier for a player."},
		{Name: "BettingOutcomeID", Type: "double precision"},
		{Name: "BettingEventID", Type: "bigint"},
		{Name: "PayoutAmerican", Type: "double precision", Doc: "Payout in American odds format."},
		{Name: "Value", Type: "double precision", Doc: "The betting line or total for props."},
		{Name: "TeamID", Type: "double precision"},
		{Name: "BettingPeriodTypeID", Type: "bigint"},
		{Name: "BettingMarketID", Type: "bigint"},
		{Name: "PointSpread", Type: "double precision", Doc: "The point spread for the game."},
		{Name: "OverUnder", Type: "double precision", Doc: "The over/under total for the game."},
		{Name: "GameKey", Type: "bigint", Doc: "Unique identifier for the game."},
		{Name: "AwayTeamMoneyLine", Type: "bigint", Doc: "Money line for betting on the away team to win outright."},
		{Name: "HomeTeamMoneyLine", Type: "bigint", Doc: "Money line for betting on the home team to win outright."},
		{Name: "SeasonType", Type: "bigint", Doc: SeasonTypeDoc},
		{Name: "Season", Type: "bigint", Doc: "The year of the season."},
		{Name: "AwayTeamID", Type: "bigint"},
		{Name: "HomeTeamID", Type: "bigint"},
		{Name: "SportsBook", Type: "text", Doc: "Name of the sportsbook offering the odds.", Enum: []string{"BetMGM", "Caesars", "FanDuel", "Consensus", "DraftKings"}},
		{Name: "BettingMarketType", Type: "text", Enum: []string{"Game Line", "Player Prop", "Team Prop", "Game Prop"}},
		{Name: "BettingBetType", Type: "text", Enum: []string{
			"Total Points", "Spread", "Moneyline", "Total Passing Yards",
			"Total Rushing Yards", "Total Receiving Yards",
			"To Score First Touchdown", "To Score a Touchdown",
			"To Score a D/ST Touchdown", "To Score 2+ Touchdowns",
			"To Score 2+ D/ST Touchdowns", "Total Field Goals Scored",
			"Total Passing Touchdowns", "Total Rushing + Receiving TDs",
			"Interceptions Thrown", "Total Fumbles Lost",
			"Total Passing + Rushing Yards", "Total Rushing & Receiving Yards",
			"Extra Points Made", "Total Kicking Points",
			"Total Interceptions (DEF/ST)", "Total Tackles (Solo)",
			"Total Assists", "Total Tackles (Solo & Assists)",
			"Total Passing Attempts", "Total Pass Completions",
			"Total Receiving Touchdowns", "Total Rushing Touchdowns",
			"Longest Reception", "Player To Score Last Touchdown",
			"Longest Pass", "To Score 3+ Touchdowns", "Total Touchdowns",
			"Moneyline (3-Way)", "Both Teams to Score on Their 1st Drive",
			"Both teams to score 1+ TD in each half", "Total Points Odd/Even",
			"Race To 20 Points", "Race To 15 Points", "Race To 5 Points",
			"To Go To Overtime", "Race to 10 Points",
			"Both Teams to Score 40 Points", "To Score First and Win",
			"Both teams to score 3+ TD in each half", "Both Teams to Score",
			"Both Teams to Score 10 Points", "Both Teams to Score 30 Points",
			"Both Teams to Score 20 Points", "Both Teams to Score 35 Points",
			"Last Team To Score", "First Team To Score",
			"Both teams to score 2+ TD in each half",
			"Both teams to score 4+ TD in each half",
			"To Score First and Lose", "Race To 25 Points",
			"To Score First Field Goal", "Both Teams to Score 15 Points",
			"Race To 30 Points", "Longest Rush",
			"To Score A Defensive Touchdown",
			"To Score 2+ Defensive Touchdowns",
			"Team To Score First Touchdown",
			"Either Team To Score 3 Unanswered Times",
			"A Score In Final Two Minutes", "To Record A Safety",
			"First Team To Call Timeout", "To Attempt an Onside Kick",
			"Punt Returned For Touchdown", "Punt To Be Blocked",
			"Field Goal To Be Blocked", "Both Teams To Score A Touchdown",
			"Both Teams To Score 2+ Touchdowns",
			"Both Teams To Score 3+ Touchdowns",
			"Both Teams To Score 3+ Points", "Both Teams To Score 7+ Points",
			"First Team to Use Coach Challenge", "Total Sacks",
			"Total Receptions", "To Record Successful Two Point Conversion",
			"To Attempt 2-Point Conversion",
			"Total Pass + Rush + Rec Touchdowns",
			"Punt Downed Inside The 5-yard line", "Total Rushing Attempts",
			"To Complete First Pass",
		}},
		{Name: "BettingPeriodType", Type: "text", Enum: []string{"Full Game", "1st Quarter", "2nd Quarter", "3rd Quarter", "4th Quarter", "First Half", "Second Half", "Regular Season"}},
		{Name: "PlayerName", Type: "text", Doc: "For player props, the player's name as first name last name, like 'Jordan Love'."},
		{Name: "AwayTeam", Type: "text", Doc: "Away team in short form, like the San Francisco 49ers are SF."},
		{Name: "HomeTeam", Type: "text", Doc: "Home team in short form, like the San Francisco 49ers are SF."},
		{Name: "Channel", Type: "text", Doc: "Broadcast network.", Enum: []string{"PEA", "NBC", "FOX", "CBS", "ABC", "ESPN", "AMZN", "NFLN", "NFLX"}},
		{Name: "QuarterDescription", Type: "text", Doc: "Description of the current quarter or game state."},
		{Name: "Day", Type: "text", Doc: "Formatted like 2024-09-06T00:00:00; use when the exact game time is unknown."},
		{Name: "DateTime", Type: "text", Doc: "Formatted like 2024-09-06T20:15:00; use when the exact starting time is known."},
		{Name: "DateTimeUTC", Type: "text", Doc: "Game datetime in UTC, like 2024-09-07T00:15:00."},
		{Name: "BettingOutcomeType", Type: "text", Enum: []string{"Over", "Under", "Away", "Home", "Yes", "Draw", "No", "Odd", "Even", "Neither"}},
		{Name: "SportsbookUrl", Type: "text", Doc: "URL to the sportsbook's page for this game or bet."},
		{Name: "BetPercentage", Type: "double precision", Doc: "Percentage of bets on this outcome; frequently null."},
		{Name: "MoneyPercentage", Type: "double precision", Doc: "Percentage of money on this outcome; frequently null."},
	},
}
