package domain

// Exemplar is a previously answered (question, SQL) pair used as a one-shot
// grounding example in synthesis prompts. Exemplars are read-only at query
// time; an out-of-band ingestion process owns writes to the index.
type Exemplar struct {
	Question string
	SQL      string
	Score    float64
}

// DefaultExemplar is returned when the similarity index has no match, so
// the pipeline never blocks on a cold or empty index.
var DefaultExemplar = Exemplar{
	Question: "How many games did the 49ers win in the 2023 regular season?",
	SQL: `SELECT COUNT(*) FROM (
  SELECT DISTINCT ON ("GameKey") *
  FROM teamlog
  WHERE "Team" = 'SF' AND "Season" = 2023 AND "SeasonType" = 1
) g
WHERE g."Score" > g."OpponentScore";`,
}
