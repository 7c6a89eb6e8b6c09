package synthesize

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/gridiron/internal/catalog"
	"github.com/kailas-cloud/gridiron/internal/domain"
)

// buildPrompt renders the shared synthesis template for one bucket. Every
// bucket gets the same framing, schema block, exemplar slot and fixed
// constraints; only the catalogs and rule text vary.
func buildPrompt(spec bucketSpec, question string, exemplar domain.Exemplar, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<instructions>
You are a data analyst for an NFL team and you have been asked to generate a SQL query to answer the following question. You do not have to completely answer the question, just generate the SQL query to answer the question, and the result will be processed. Do your best to answer the question and do not use placeholder information. The question is:
`+"`%s`"+`
</instructions>

<database_schema>
The query will run on a database of %s with the following schema:
`, question, spec.DataName)

	for _, t := range spec.Tables {
		fmt.Fprintf(&b, "\nTable %s:\n%s", t.Name, t.Render())
	}

	b.WriteString(`</database_schema>

<special_instructions>
`)
	b.WriteString(spec.Rules)
	b.WriteString(`
</special_instructions>

Only respond with the sql query, no explanation or anything else. Encompass the sql query with
` + "```sql\n\n```" + `

All columns must be surrounded by double quotes, such as "Name" or "Team".
This is a postgres database. Do not create any new columns or tables. Only reference columns that are in the database schema provided.
`)

	fmt.Fprintf(&b, `The default SeasonType is Regular Season or %d. If the question is about a different SeasonType, please specify in the query. The default season is %d.
Never include the preseason in any of your responses, and make sure to include all the types of seasons that are provided in the response (regular season, postseason, or regular season and postseason). Also, try and name all the games relevant to the question.
If asked for ranking, make sure you rank everyone by the criteria given and then output the rank for that criteria, not in alphabetical order.
This is today's date: %s. If the question mentions today, or tonight or anything of the sort, include this date in the response.
Make sure you use parentheses correctly in your queries as well as commas to make logical sense.
If the question cannot be answered with the data provided, please return the string "Error: Cannot answer question with data provided."
`, catalog.DefaultSeasonType, catalog.DefaultSeason, now.Format("2006-01-02"))

	fmt.Fprintf(&b, `
Here is an example response for the question: %s
<example_response>

`+"```sql\n%s\n```"+`

</example_response>

Given the database schema, here is the SQL query that answers `+"`%s`"+`:
`, exemplar.Question, exemplar.SQL, question)

	return b.String()
}
