package catalog

// PlayByPlay catalogs the playbyplay table: one row per play, for
// situational questions such as red zone usage, third down conversions
// or the score at a point in a game.
var PlayByPlay = Table{
	Name:        "playbyplay",
	Description: "NFL play-by-play data, one row per play with down, distance, field position and result.",
	Columns: []Column{
		{Name: "PlayID", Type: "bigint", Doc: "Unique identifier for the play."},
		{Name: "GameKey", Type: "bigint", Doc: "Unique identifier for the game."},
		{Name: "Season", Type: "bigint"},
		{Name: "SeasonType", Type: "bigint", Doc: SeasonTypeDoc},
		{Name: "Week", Type: "bigint"},
		{Name: "Date", Type: "text", Doc: "Game date, like 2024-09-08T13:00:00."},
		{Name: "QuarterName", Type: "text", Enum: []string{"1", "2", "3", "4", "OT"}},
		{Name: "Sequence", Type: "bigint", Doc: "Order of the play within the game. Sort on this to replay a drive."},
		{Name: "TimeRemainingMinutes", Type: "bigint", Doc: "Minutes left in the quarter when the play started."},
		{Name: "TimeRemainingSeconds", Type: "bigint", Doc: "Seconds left in the quarter when the play started."},
		{Name: "Team", Type: "text", Doc: "Team with possession, in short form like SF or BAL."},
		{Name: "Opponent", Type: "text"},
		{Name: "HomeTeam", Type: "text"},
		{Name: "AwayTeam", Type: "text"},
		{Name: "HomeScoreBefore", Type: "bigint", Doc: "Home team score before the play."},
		{Name: "AwayScoreBefore", Type: "bigint", Doc: "Away team score before the play."},
		{Name: "Down", Type: "bigint", Doc: "0 for plays without a down, like kickoffs and extra points."},
		{Name: "Distance", Type: "bigint", Doc: "Yards to go for a first down."},
		{Name: "YardLine", Type: "bigint", Doc: "Yard line the play started from, 0 to 50."},
		{Name: "YardLineTerritory", Type: "text", Doc: "Whose side of the field the ball is on, in short form like SF."},
		{Name: "YardsToEndZone", Type: "bigint", Doc: "Yards from the line of scrimmage to the opposing end zone. Red zone plays have a value of 20 or less."},
		{Name: "Type", Type: "text", Doc: "Kind of play.", Enum: []string{"Rush", "PassCompleted", "PassIncompleted", "PassIntercepted", "Sack", "Punt", "Kickoff", "FieldGoal", "ExtraPoint", "TwoPointConversion", "Penalty", "Timeout", "Period", "Fumble", "Kneel", "Spike"}},
		{Name: "YardsGained", Type: "bigint", Doc: "Net yards gained on the play. Negative for losses."},
		{Name: "IsScoringPlay", Type: "bigint", Doc: "1 if the play scored points."},
		{Name: "ScoringPlayType", Type: "text", Enum: []string{"Touchdown", "FieldGoal", "ExtraPoint", "TwoPointConversion", "Safety"}},
		{Name: "PasserName", Type: "text", Doc: "Passer on pass plays. Format is first name last name, beware of periods in names."},
		{Name: "RusherName", Type: "text", Doc: "Rusher on rush plays."},
		{Name: "ReceiverName", Type: "text", Doc: "Targeted receiver on pass plays."},
		{Name: "KickerName", Type: "text"},
		{Name: "FieldGoalDistance", Type: "bigint", Doc: "Distance of the field goal attempt in yards."},
		{Name: "FieldGoalResult", Type: "text", Enum: []string{"Made", "Missed", "Blocked"}},
		{Name: "IsFirstDown", Type: "bigint", Doc: "1 if the play gained a first down."},
		{Name: "IsTouchdown", Type: "bigint"},
		{Name: "IsInterception", Type: "bigint"},
		{Name: "IsFumble", Type: "bigint"},
		{Name: "IsSack", Type: "bigint"},
		{Name: "IsPenalty", Type: "bigint"},
		{Name: "PenaltyTeam", Type: "text"},
		{Name: "PenaltyType", Type: "text"},
		{Name: "PenaltyYards", Type: "bigint"},
		{Name: "Description", Type: "text", Doc: "Free-text description of the play."},
	},
}
