package catalog

// PlayerLog catalogs the playerlog table: one row per player per game,
// including rows for inactive or injured players, so "games played"
// queries filter on Played = 1.
var PlayerLog = Table{
	Name:        "playerlog",
	Description: "NFL player game logs at game-level granularity, including injuries, salaries and snap counts.",
	Columns: []Column{
		{Name: "GameKey", Type: "bigint", Doc: "Unique identifier for the game. MIN(GameKey) is the earliest game, MAX(GameKey) the latest."},
		{Name: "PlayerID", Type: "bigint"},
		{Name: "SeasonType", Type: "bigint", Doc: SeasonTypeDoc},
		{Name: "Season", Type: "bigint"},
		{Name: "GameDate", Type: "text"},
		{Name: "Week", Type: "bigint", Doc: "Resets for each season type; the first week of the regular season is 1."},
		{Name: "Team", Type: "text", Doc: "Shorthand, such as WAS for Washington or BAL for Baltimore."},
		{Name: "Opponent", Type: "text"},
		{Name: "HomeOrAway", Type: "text", Enum: []string{"HOME", "AWAY"}},
		{Name: "Number", Type: "bigint", Doc: "Jersey number."},
		{Name: "Name", Type: "text", Doc: "First name and last name. Beware of periods: TJ Watt is T.J. Watt in the database."},
		{Name: "Position", Type: "text", Doc: "Player's position for this particular game.", Enum: []string{"C", "CB", "DB", "DE", "DE/LB", "DL", "DT", "FB", "FS", "G", "ILB", "K", "KR", "LB", "LS", "NT", "OL", "OLB", "OT", "P", "QB", "RB", "S", "SS", "T", "TE", "WR"}},
		{Name: "PositionCategory", Type: "text", Doc: "Offense, defense or special teams.", Enum: []string{"OFF", "DEF", "ST"}},
		{Name: "Activated", Type: "bigint"},
		{Name: "Played", Type: "bigint", Doc: "1 if the player had at least one play, 0 otherwise."},
		{Name: "Started", Type: "bigint", Doc: "1 if the player started."},
		{Name: "PassingAttempts", Type: "double precision"},
		{Name: "PassingCompletions", Type: "double precision"},
		{Name: "PassingYards", Type: "double precision"},
		{Name: "PassingCompletionPercentage", Type: "double precision"},
		{Name: "PassingYardsPerAttempt", Type: "double precision"},
		{Name: "PassingTouchdowns", Type: "double precision"},
		{Name: "PassingInterceptions", Type: "double precision"},
		{Name: "PassingRating", Type: "double precision"},
		{Name: "PassingLong", Type: "double precision"},
		{Name: "PassingSacks", Type: "double precision"},
		{Name: "PassingSackYards", Type: "double precision"},
		{Name: "RushingAttempts", Type: "double precision"},
		{Name: "RushingYards", Type: "double precision"},
		{Name: "RushingYardsPerAttempt", Type: "double precision"},
		{Name: "RushingTouchdowns", Type: "double precision"},
		{Name: "RushingLong", Type: "double precision"},
		{Name: "ReceivingTargets", Type: "double precision"},
		{Name: "Receptions", Type: "double precision"},
		{Name: "ReceivingYards", Type: "double precision"},
		{Name: "ReceivingYardsPerReception", Type: "double precision"},
		{Name: "ReceivingTouchdowns", Type: "double precision"},
		{Name: "ReceivingLong", Type: "double precision"},
		{Name: "ReceptionPercentage", Type: "double precision"},
		{Name: "ReceivingYardsPerTarget", Type: "double precision"},
		{Name: "Fumbles", Type: "double precision"},
		{Name: "FumblesLost", Type: "double precision"},
		{Name: "PuntReturns", Type: "double precision"},
		{Name: "PuntReturnYards", Type: "double precision"},
		{Name: "PuntReturnTouchdowns", Type: "double precision"},
		{Name: "KickReturns", Type: "double precision"},
		{Name: "KickReturnYards", Type: "double precision"},
		{Name: "KickReturnTouchdowns", Type: "double precision"},
		{Name: "SoloTackles", Type: "double precision"},
		{Name: "AssistedTackles", Type: "double precision"},
		{Name: "Tackles", Type: "bigint"},
		{Name: "TacklesForLoss", Type: "double precision"},
		{Name: "Sacks", Type: "double precision"},
		{Name: "SackYards", Type: "double precision"},
		{Name: "QuarterbackHits", Type: "double precision"},
		{Name: "PassesDefended", Type: "double precision"},
		{Name: "FumblesForced", Type: "double precision"},
		{Name: "FumblesRecovered", Type: "double precision"},
		{Name: "FumbleReturnTouchdowns", Type: "double precision"},
		{Name: "Interceptions", Type: "double precision"},
		{Name: "InterceptionReturnYards", Type: "double precision"},
		{Name: "InterceptionReturnTouchdowns", Type: "double precision"},
		{Name: "BlockedKicks", Type: "double precision"},
		{Name: "Punts", Type: "double precision"},
		{Name: "PuntYards", Type: "double precision"},
		{Name: "PuntAverage", Type: "double precision"},
		{Name: "PuntLong", Type: "double precision"},
		{Name: "FieldGoalsAttempted", Type: "double precision"},
		{Name: "FieldGoalsMade", Type: "double precision"},
		{Name: "FieldGoalsLongestMade", Type: "double precision"},
		{Name: "FieldGoalPercentage", Type: "double precision"},
		{Name: "FieldGoalsMade0to19", Type: "double precision"},
		{Name: "FieldGoalsMade20to29", Type: "double precision"},
		{Name: "FieldGoalsMade30to39", Type: "double precision"},
		{Name: "FieldGoalsMade40to49", Type: "double precision"},
		{Name: "FieldGoalsMade50Plus", Type: "double precision"},
		{Name: "ExtraPointsMade", Type: "double precision"},
		{Name: "ExtraPointsAttempted", Type: "double precision"},
		{Name: "TwoPointConversionPasses", Type: "double precision"},
		{Name: "TwoPointConversionRuns", Type: "double precision"},
		{Name: "TwoPointConversionReceptions", Type: "double precision"},
		{Name: "OffensiveTouchdowns", Type: "bigint"},
		{Name: "DefensiveTouchdowns", Type: "bigint"},
		{Name: "SpecialTeamsTouchdowns", Type: "bigint"},
		{Name: "Touchdowns", Type: "bigint"},
		{Name: "FantasyPoints", Type: "double precision"},
		{Name: "FantasyPointsPPR", Type: "double precision"},
		{Name: "FantasyPointsFanDuel", Type: "double precision"},
		{Name: "FantasyPointsDraftKings", Type: "double precision"},
		{Name: "FantasyPosition", Type: "text"},
		{Name: "FanDuelSalary", Type: "double precision"},
		{Name: "DraftKingsSalary", Type: "double precision"},
		{Name: "OffensiveSnapsPlayed", Type: "double precision"},
		{Name: "DefensiveSnapsPlayed", Type: "double precision"},
		{Name: "SpecialTeamsSnapsPlayed", Type: "double precision"},
		{Name: "OffensiveTeamSnaps", Type: "double precision"},
		{Name: "DefensiveTeamSnaps", Type: "double precision"},
		{Name: "InjuryStatus", Type: "text", Doc: "A player is injured if this is Doubtful, Out, or Questionable.", Enum: []string{"None", "Questionable", "Probable", "Out", "Doubtful"}},
		{Name: "InjuryBodyPart", Type: "text"},
		{Name: "DeclaredInactive", Type: "bigint"},
		{Name: "OpponentRank", Type: "double precision"},
		{Name: "OpponentPositionRank", Type: "double precision"},
		{Name: "PlayingSurface", Type: "text", Enum: []string{"Artificial", "Grass"}},
		{Name: "Stadium", Type: "text"},
		{Name: "Temperature", Type: "double precision"},
		{Name: "Humidity", Type: "double precision"},
		{Name: "WindSpeed", Type: "double precision"},
		{Name: "Day", Type: "text", Doc: "Looks like 2024-10-03T00:00:00; usable when the exact game time is unknown."},
		{Name: "DateTime", Type: "text"},
		{Name: "TeamID", Type: "bigint"},
		{Name: "OpponentID", Type: "bigint"},
		{Name: "GlobalGameID", Type: "bigint"},
		{Name: "ScoreID", Type: "bigint"},
		{Name: "Wins", Type: "double precision", Doc: "Team wins in the season up to this point."},
		{Name: "Losses", Type: "double precision", Doc: "Team losses in the season up to this point."},
		{Name: "OpponentWins", Type: "double precision", Doc: "Opponent wins in the season up to this point."},
		{Name: "OpponentLosses", Type: "double precision", Doc: "Opponent losses in the season up to this point."},
		{Name: "PointSpread", Type: "double precision", Doc: "Point spread of the game; negative means the player's team is favored."},
		{Name: "Score", Type: "double precision", Doc: "Score of the player's team."},
		{Name: "OpponentScore", Type: "double precision"},
		{Name: "Status", Type: "text", Enum: []string{"Active", "Inactive"}},
		{Name: "Height", Type: "text", Doc: "Feet and inches, like 6'0\"."},
		{Name: "BirthDate", Type: "text", Doc: "Like 1999-08-31T00:00:00."},
		{Name: "Weight", Type: "double precision", Doc: "Pounds."},
		{Name: "College", Type: "text"},
		{Name: "Experience", Type: "double precision", Doc: "Years in the NFL. Updated every spring, so rookies in the 2024 season have a value of 2."},
	},
}
