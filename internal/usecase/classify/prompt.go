package classify

import (
	"strings"
	"time"
)

// bucketTaxonomy describes each routing target for the classifier prompt.
const bucketTaxonomy = `TeamGameLog - This bucket is for questions that can be answered by looking at Team Game Logs in the NFL. This also includes information about coaches and weather. This includes against the spread stats.
PlayerGameLog - This bucket is for questions that can be answered by looking at individual Player Game Logs in the NFL. This includes information about player stats at a game level granularity. This is good for season based questions for players. You can also use this to compare player stats in the same game or over a stretch of games. You can also use this to see how a player performs against a certain team or player. This includes against the spread stats for the games so this can be used to also see how player teams perform by score and spread. You can use this bucket to see if a player is a rookie or not. You can also use this for information about player injuries.
PlayByPlay - This bucket is for questions that can be answered by looking at play by play data for the NFL. This is good for questions that require a more granular look at the game, such as what the score was at a certain point in the game or what the result of a specific play was. You can also use this to see how players perform in certain situations or against certain teams or players in a single game, some time period, or in some situation. Use this for player red zone stats.
TeamAndPlayerLog - This bucket is for questions that can be answered by looking at both Team and Player Game Logs in the NFL. This is good for questions that require both team and player stats, such as what the record of a team is when a certain player is/is not playing.
Props - This bucket is for questions that can be answered by looking at betting props for teams or players. This is good if the user inquires about betting information for a specific player or team this upcoming season.
PlayerLogAndProps - This bucket is for questions that can be answered by looking at both Player Game Logs and betting props for teams or players. This is good if the user inquires about betting information for a specific player or team this season and player stats.
TeamLogAndProps - This bucket is for questions that can be answered by looking at both Team Game Logs and betting props. This is good if the user inquires about betting information for a team together with its game results.
Futures - This bucket is for questions that can be answered by looking at futures data for teams or players. This is good if the user inquires about futures information for a specific player or team this upcoming season.
ExpertAnalysis - This bucket is for questions that require expert analysis or opinion. This is good for questions that require a more subjective answer, such as who the best player in the NFL is or what the best team in the NFL is. This is also good for questions that require a more in-depth analysis, such as what the best strategy is for a team to win the Super Bowl. This can also provide real time analysis of games or players, or odds for future/current games.
Conversation - This bucket is if the user is just trying to have a conversation.
NoBucket - This bucket is for questions that are not about the NFL or cannot be answered by looking at stats. If the question is too vague or unclear, it will also be placed in this bucket.`

// buildPrompt assembles the classification prompt: taxonomy, response
// format, season hints and the conversation so far.
func buildPrompt(history []string, question string, now time.Time) string {
	var b strings.Builder

	b.WriteString(`You are a chatbot that answers questions about the NFL.
You will be given a chat history with a user with a question at the end about the NFL. You are to choose which bucket it best fits in. You will also correct the grammar of the question.

Remember, the current question is the last line of the chat history.

Here are the buckets:

`)
	b.WriteString(bucketTaxonomy)
	b.WriteString(`

You will also correct the question and make it grammatically correct. Do not change anything else about the question.

By the way, the database does not have weather data, just temperature data.

You will respond in the following format:

Bucket: BucketName
Question: Corrected Question

<example_response>
Bucket: TeamGameLog
Question: How many games did the 49ers win in the 2005 regular season?
</example_response>

If you choose NoBucket, instead of a question in the question field, put the reason why it is NoBucket. Remember this is going to be shown to the user, so make sure it is clear and concise. If it is too vague, ask for clarification.
If you choose Conversation, instead of a question in the question field, put the natural conversation you would have with the user.

If no season is specified, assume the most recent season, 2024, and the season type to be the regular season unless said otherwise. For all props, the data is for 2024. We only have performance data up to the weeks that have been played. Players may have moved teams since you were last trained, so don't assume you know where players play and still choose an appropriate bucket.
`)

	b.WriteString("\nIf you need the current date, it is ")
	b.WriteString(now.Format("2006-01-02"))
	b.WriteString(". If the question mentions today, or tonight or anything of the sort, include this date in the response.\n")

	if len(history) > 0 {
		b.WriteString("\nChat history:\n")
		for _, line := range history {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString("\nThis is the user inputted question: ")
	b.WriteString(question)
	b.WriteByte('\n')

	return b.String()
}
