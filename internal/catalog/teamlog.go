package catalog

// TeamLog catalogs the teamlog table: one row per team per game, with each
// game appearing twice (once from each team's perspective), so queries must
// deduplicate with DISTINCT ON ("GameKey") when counting games.
var TeamLog = Table{
	Name:        "teamlog",
	Description: "NFL team game logs, including betting lines, coaches, stadium and conditions.",
	Columns: []Column{
		{Name: "GameKey", Type: "bigint", Doc: "Unique identifier for the game. MAX(GameKey) is a clever way to get a team's latest game."},
		{Name: "Date", Type: "text", Doc: "Format: 'YYYY-MM-DDTHH:MM:SS'. This is TEXT, not a Date type."},
		{Name: "SeasonType", Type: "bigint", Doc: SeasonTypeDoc},
		{Name: "Season", Type: "bigint", Doc: "The default season is 2024."},
		{Name: "Week", Type: "bigint", Doc: "Resets for each season type. Week 17 is the last week of the regular season."},
		{Name: "Team", Type: "text", Doc: "Shorthand of the team name (e.g. NE, NYJ, BAL)."},
		{Name: "Opponent", Type: "text", Doc: "Shorthand of the opponent team."},
		{Name: "HomeOrAway", Type: "text", Doc: "Whether Team played at home.", Enum: []string{"HOME", "AWAY"}},
		{Name: "Score", Type: "bigint"},
		{Name: "OpponentScore", Type: "bigint"},
		{Name: "TotalScore", Type: "bigint"},
		{Name: "Stadium", Type: "text", Doc: "Where the game was played. Games in England were played in Wembley Stadium or Tottenham Hotspur Stadium."},
		{Name: "PlayingSurface", Type: "text", Enum: []string{"Artificial", "Grass"}},
		{Name: "Temperature", Type: "double precision"},
		{Name: "Humidity", Type: "double precision"},
		{Name: "WindSpeed", Type: "double precision"},
		{Name: "OverUnder", Type: "double precision", Doc: "Estimated total points scored in the game. Divide by 2 for the average per team."},
		{Name: "PointSpread", Type: "double precision", Doc: "Negative means Team is favored, positive means underdog."},
		{Name: "ScoreQuarter1", Type: "bigint"},
		{Name: "ScoreQuarter2", Type: "bigint"},
		{Name: "ScoreQuarter3", Type: "bigint"},
		{Name: "ScoreQuarter4", Type: "bigint"},
		{Name: "ScoreOvertime", Type: "bigint"},
		{Name: "TimeOfPossession", Type: "text"},
		{Name: "FirstDowns", Type: "bigint"},
		{Name: "FirstDownsByRushing", Type: "double precision"},
		{Name: "FirstDownsByPassing", Type: "double precision"},
		{Name: "FirstDownsByPenalty", Type: "double precision"},
		{Name: "OffensivePlays", Type: "bigint"},
		{Name: "OffensiveYards", Type: "bigint"},
		{Name: "OffensiveYardsPerPlay", Type: "double precision"},
		{Name: "Touchdowns", Type: "double precision"},
		{Name: "RushingAttempts", Type: "bigint"},
		{Name: "RushingYards", Type: "bigint"},
		{Name: "RushingYardsPerAttempt", Type: "double precision"},
		{Name: "RushingTouchdowns", Type: "double precision"},
		{Name: "PassingAttempts", Type: "bigint"},
		{Name: "PassingCompletions", Type: "bigint"},
		{Name: "PassingYards", Type: "bigint"},
		{Name: "PassingTouchdowns", Type: "double precision"},
		{Name: "PassingInterceptions", Type: "bigint"},
		{Name: "PassingYardsPerAttempt", Type: "double precision"},
		{Name: "CompletionPercentage", Type: "double precision"},
		{Name: "PasserRating", Type: "double precision"},
		{Name: "ThirdDownAttempts", Type: "double precision"},
		{Name: "ThirdDownConversions", Type: "double precision"},
		{Name: "ThirdDownPercentage", Type: "double precision"},
		{Name: "FourthDownAttempts", Type: "double precision"},
		{Name: "FourthDownConversions", Type: "double precision"},
		{Name: "RedZoneAttempts", Type: "double precision"},
		{Name: "RedZoneConversions", Type: "double precision"},
		{Name: "RedZonePercentage", Type: "double precision"},
		{Name: "GoalToGoAttempts", Type: "double precision"},
		{Name: "GoalToGoConversions", Type: "double precision"},
		{Name: "ReturnYards", Type: "bigint"},
		{Name: "Penalties", Type: "bigint"},
		{Name: "PenaltyYards", Type: "bigint"},
		{Name: "Fumbles", Type: "bigint"},
		{Name: "FumblesLost", Type: "bigint"},
		{Name: "TimesSacked", Type: "bigint"},
		{Name: "TimesSackedYards", Type: "bigint"},
		{Name: "QuarterbackHits", Type: "double precision"},
		{Name: "TacklesForLoss", Type: "double precision"},
		{Name: "Safeties", Type: "double precision"},
		{Name: "Punts", Type: "bigint"},
		{Name: "PuntYards", Type: "bigint"},
		{Name: "PuntAverage", Type: "double precision"},
		{Name: "Giveaways", Type: "bigint"},
		{Name: "Takeaways", Type: "bigint"},
		{Name: "TurnoverDifferential", Type: "bigint"},
		{Name: "OpponentScoreQuarter1", Type: "bigint"},
		{Name: "OpponentScoreQuarter2", Type: "bigint"},
		{Name: "OpponentScoreQuarter3", Type: "bigint"},
		{Name: "OpponentScoreQuarter4", Type: "bigint"},
		{Name: "OpponentScoreOvertime", Type: "bigint"},
		{Name: "OpponentFirstDowns", Type: "bigint"},
		{Name: "OpponentOffensivePlays", Type: "bigint"},
		{Name: "OpponentOffensiveYards", Type: "bigint"},
		{Name: "OpponentOffensiveYardsPerPlay", Type: "double precision"},
		{Name: "OpponentTouchdowns", Type: "double precision"},
		{Name: "OpponentRushingAttempts", Type: "bigint"},
		{Name: "OpponentRushingYards", Type: "bigint"},
		{Name: "OpponentRushingTouchdowns", Type: "double precision"},
		{Name: "OpponentPassingAttempts", Type: "bigint"},
		{Name: "OpponentPassingCompletions", Type: "bigint"},
		{Name: "OpponentPassingYards", Type: "bigint"},
		{Name: "OpponentPassingTouchdowns", Type: "double precision"},
		{Name: "OpponentPassingInterceptions", Type: "bigint"},
		{Name: "OpponentPasserRating", Type: "double precision"},
		{Name: "OpponentThirdDownPercentage", Type: "double precision"},
		{Name: "OpponentRedZoneAttempts", Type: "double precision"},
		{Name: "OpponentRedZoneConversions", Type: "double precision"},
		{Name: "OpponentPenalties", Type: "bigint"},
		{Name: "OpponentPenaltyYards", Type: "bigint"},
		{Name: "OpponentFumbles", Type: "bigint"},
		{Name: "OpponentFumblesLost", Type: "bigint"},
		{Name: "OpponentTimesSacked", Type: "bigint"},
		{Name: "OpponentPunts", Type: "bigint"},
		{Name: "OpponentGiveaways", Type: "bigint"},
		{Name: "OpponentTakeaways", Type: "bigint"},
		{Name: "OpponentTurnoverDifferential", Type: "bigint"},
		{Name: "Kickoffs", Type: "double precision"},
		{Name: "KickoffTouchbacks", Type: "double precision"},
		{Name: "FieldGoalAttempts", Type: "double precision"},
		{Name: "FieldGoalsMade", Type: "double precision"},
		{Name: "ExtraPointKickingAttempts", Type: "double precision"},
		{Name: "ExtraPointKickingConversions", Type: "double precision"},
		{Name: "PuntReturns", Type: "double precision"},
		{Name: "PuntReturnYards", Type: "double precision"},
		{Name: "PuntReturnTouchdowns", Type: "double precision"},
		{Name: "KickReturns", Type: "double precision"},
		{Name: "KickReturnYards", Type: "double precision"},
		{Name: "KickReturnTouchdowns", Type: "double precision"},
		{Name: "InterceptionReturns", Type: "double precision"},
		{Name: "InterceptionReturnYards", Type: "double precision"},
		{Name: "InterceptionReturnTouchdowns", Type: "double precision"},
		{Name: "SoloTackles", Type: "double precision"},
		{Name: "AssistedTackles", Type: "double precision"},
		{Name: "Sacks", Type: "double precision"},
		{Name: "SackYards", Type: "double precision"},
		{Name: "PassesDefended", Type: "double precision"},
		{Name: "FumblesForced", Type: "double precision"},
		{Name: "FumblesRecovered", Type: "double precision"},
		{Name: "FumbleReturnTouchdowns", Type: "double precision"},
		{Name: "BlockedKicks", Type: "double precision"},
		{Name: "TeamName", Type: "text", Doc: "The full name of the team (e.g. New England Patriots)."},
		{Name: "DayOfWeek", Type: "text", Doc: "The day of the week this game was played on (e.g. Sunday, Monday)."},
		{Name: "Day", Type: "text"},
		{Name: "DateTime", Type: "text", Doc: "Looks like 2024-01-15T20:15:00."},
		{Name: "PassingDropbacks", Type: "bigint"},
		{Name: "OpponentPassingDropbacks", Type: "bigint"},
		{Name: "TeamID", Type: "bigint"},
		{Name: "OpponentID", Type: "bigint"},
		{Name: "GlobalGameID", Type: "bigint"},
		{Name: "HomeConference", Type: "text", Enum: []string{"AFC", "NFC"}},
		{Name: "HomeDivision", Type: "text", Enum: []string{"North", "East", "West", "South"}},
		{Name: "HomeFullName", Type: "text"},
		{Name: "AwayConference", Type: "text", Enum: []string{"AFC", "NFC"}},
		{Name: "AwayDivision", Type: "text", Enum: []string{"North", "East", "West", "South"}},
		{Name: "AwayFullName", Type: "text"},
		{Name: "TeamCoach", Type: "text"},
		{Name: "OpponentCoach", Type: "text"},
		{Name: "Wins", Type: "bigint", Doc: "Wins up to the current game. Resets each season and each season type."},
		{Name: "Losses", Type: "bigint", Doc: "Losses up to the current game. Resets each season and each season type."},
		{Name: "OpponentWins", Type: "bigint", Doc: "Opponent's wins up to the current game. Resets each season and each season type."},
		{Name: "OpponentLosses", Type: "bigint", Doc: "Opponent's losses up to the current game. Resets each season and each season type."},
		{Name: "Wins_After", Type: "bigint", Doc: "Wins after the current game. Resets each season and each season type."},
		{Name: "Losses_After", Type: "bigint", Doc: "Losses after the current game. Resets each season and each season type."},
		{Name: "Name", Type: "text", Doc: "Home team stadium name."},
		{Name: "Capacity", Type: "bigint", Doc: "Home team stadium capacity."},
		{Name: "GeoLat", Type: "double precision", Doc: "Home team stadium latitude."},
		{Name: "GeoLong", Type: "double precision", Doc: "Home team stadium longitude."},
		{Name: "Type", Type: "text", Doc: "Home team type of stadium.", Enum: []string{"Outdoor", "Indoor"}},
		{Name: "IsShortWeek", Type: "bigint", Doc: "1 if the team is playing on a short week, 0 if not."},
	},
}
