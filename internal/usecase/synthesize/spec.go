package synthesize

import (
	"github.com/kailas-cloud/gridiron/internal/catalog"
	"github.com/kailas-cloud/gridiron/internal/domain"
)

// bucketSpec parameterizes the shared prompt template for one data bucket:
// which catalogs to embed, what the data is called, and the bucket-specific
// querying rules.
type bucketSpec struct {
	// DataName describes the dataset in the prompt framing line.
	DataName string
	// Tables are the schema catalogs rendered into the prompt.
	Tables []catalog.Table
	// Rules is the bucket-specific instruction text.
	Rules string
}

const teamRules = `The name of the table is teamlog.
Instead of HomeTeam and AwayTeam, reference the Team column and the HomeOrAway column. The Opponent column will have the opposite side.
The team in the Team column isn't always the home team, it could be the away team, so use HomeOrAway to determine if the team is the home team or the away team.
The games are double counted in the teamlog: in one occurrence the home team is the Team and away the Opponent, and in the other occurrence the away team is the Team and the home team is the Opponent. Use SELECT DISTINCT ON ("GameKey") to get the unique games for a team.
To calculate record, use WinsAfter for record after the game and Wins for record before the game. The same goes for losses. The Wins and Losses columns reset each season and each season type and are cumulative up to the current game.
A clever way to get the last game of a team is MAX(GameKey); MIN(GameKey) gives the earliest game.
There is no weather column, so use a combination of temperature, humidity, and wind speed to determine the weather conditions of the game.
Not all Sunday games are played at night.`

const playerRules = `The name of the table is playerlog.
The Team is always short hand, such as WAS for Washington or BAL for Baltimore.
Instead of HomeTeam and AwayTeam, reference the Team column and the HomeOrAway column. The Opponent column will have the opposite side.
You will have to infer player names from little data from your understanding of the NFL. For example, if the user only says Kelce, you have to infer the name Travis Kelce.
Be careful of periods in the player name. For example, TJ Watt is T.J. Watt in the database.
You can never not include the player name in the SQL query.
When asking about a player, assume that we want logs where the player has played, unless the question specifies otherwise like for injuries or missed games.
To find games where two players have played against each other, join the table on the GameKey where the Name matches the player.
Remember, rookies have a value of 2 in the Experience column.
A player is injured if the InjuryStatus is Doubtful, Out, or Questionable.
Usually, even when a player is out or injured, they will have a record in the database. To see how many games a player missed in the regular season, use 17 - COUNT(DISTINCT GameKey where the player played).
You can use MIN(GameKey) to get the earliest game and MAX(GameKey) to get the latest game.`

const playByPlayRules = `The name of the table is playbyplay.
Each row is one play. Use the Sequence column to order plays within a game.
Red zone plays have YardsToEndZone of 20 or less.
To reconstruct the score at a point in a game, use HomeScoreBefore and AwayScoreBefore on the relevant play.
Player names appear in PasserName, RusherName, ReceiverName and KickerName; be careful of periods in names, TJ Watt is T.J. Watt in the database.
Down is 0 for plays without a down, like kickoffs and extra points.`

const propsRules = `The name of the table is props.
There will only be a player name if the question is about a player, and a team name will only be non-null if the question is about the team. All props data is for 2024 only.
You must list all the sportsbooks (DraftKings, FanDuel, etc) and corresponding sportsbook urls for all the stats you are providing.
Props for a player use the PlayerName column; game lines use HomeTeam and AwayTeam in short form.`

const futuresRules = `The name of the table is futurestable.
Team futures carry the team in the TeamKey column in short form, for example the 49ers are SF. Player futures carry the player in the PlayerName column.
You must list all the sportsbooks and corresponding sportsbook urls for all the odds you are providing.
PayoutAmerican is the payout in American odds format.`

const atsRules = `To calculate "Against the Spread" (ATS), determine whether a team has covered the point spread in a game. If the team is a favorite, they have a negative point spread, and if the team is an underdog, they have a positive point spread.
Calculate the Cover Margin: Cover Margin = (Score + PointSpread) - OpponentScore.
If Cover Margin > 0, the team covered the spread. If Cover Margin < 0, the team did not cover the spread. If Cover Margin = 0, it is a push (no winner against the spread).`

// bucketSpecs maps every data bucket onto its prompt parameters.
var bucketSpecs = map[domain.Bucket]bucketSpec{
	domain.BucketTeamGameLog: {
		DataName: "NFL Team Game Logs",
		Tables:   []catalog.Table{catalog.TeamLog},
		Rules:    teamRules + "\n" + atsRules,
	},
	domain.BucketPlayerGameLog: {
		DataName: "NFL Player Game Logs",
		Tables:   []catalog.Table{catalog.PlayerLog},
		Rules:    playerRules + "\n" + atsRules,
	},
	domain.BucketPlayByPlay: {
		DataName: "NFL Play by Play data",
		Tables:   []catalog.Table{catalog.PlayByPlay},
		Rules:    playByPlayRules,
	},
	domain.BucketTeamAndPlayerLog: {
		DataName: "NFL Team and Player Game Logs",
		Tables:   []catalog.Table{catalog.TeamLog, catalog.PlayerLog},
		Rules:    teamRules + "\n" + playerRules + "\n" + atsRules,
	},
	domain.BucketProps: {
		DataName: "NFL Betting Props",
		Tables:   []catalog.Table{catalog.Props},
		Rules:    propsRules,
	},
	domain.BucketPlayerLogAndProps: {
		DataName: "NFL Player Game Logs and Betting Props",
		Tables:   []catalog.Table{catalog.PlayerLog, catalog.Props},
		Rules:    playerRules + "\n" + propsRules + "\n" + atsRules,
	},
	domain.BucketTeamLogAndProps: {
		DataName: "NFL Team Game Logs and Betting Props",
		Tables:   []catalog.Table{catalog.TeamLog, catalog.Props},
		Rules:    teamRules + "\n" + propsRules + "\n" + atsRules,
	},
	domain.BucketFutures: {
		DataName: "NFL Futures markets",
		Tables:   []catalog.Table{catalog.Futures},
		Rules:    futuresRules,
	},
}
