package domain

// Bucket is the classified intent of a user question. It decides which
// schema catalogs and synthesis rules apply, or whether the request is
// answered without touching the analytical store at all.
type Bucket string

const (
	BucketTeamGameLog       Bucket = "TeamGameLog"
	BucketPlayerGameLog     Bucket = "PlayerGameLog"
	BucketPlayByPlay        Bucket = "PlayByPlay"
	BucketTeamAndPlayerLog  Bucket = "TeamAndPlayerLog"
	BucketProps             Bucket = "Props"
	BucketPlayerLogAndProps Bucket = "PlayerLogAndProps"
	BucketTeamLogAndProps   Bucket = "TeamLogAndProps"
	BucketFutures           Bucket = "Futures"
	BucketExpertAnalysis    Bucket = "ExpertAnalysis"
	BucketConversation      Bucket = "Conversation"
	BucketNoBucket          Bucket = "NoBucket"
)

// DataBuckets lists the buckets that own a SQL synthesis strategy.
var DataBuckets = []Bucket{
	BucketTeamGameLog,
	BucketPlayerGameLog,
	BucketPlayByPlay,
	BucketTeamAndPlayerLog,
	BucketProps,
	BucketPlayerLogAndProps,
	BucketTeamLogAndProps,
	BucketFutures,
}

// ParseBucket maps a classifier label to a Bucket. Unknown or empty labels
// are unroutable and collapse to NoBucket.
func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(s) {
	case BucketTeamGameLog, BucketPlayerGameLog, BucketPlayByPlay,
		BucketTeamAndPlayerLog, BucketProps, BucketPlayerLogAndProps,
		BucketTeamLogAndProps, BucketFutures, BucketExpertAnalysis,
		BucketConversation, BucketNoBucket:
		return Bucket(s), true
	default:
		return BucketNoBucket, false
	}
}

// IsTerminal reports whether the bucket is answered directly by the
// classifier or the expert path, with no SQL stage.
func (b Bucket) IsTerminal() bool {
	switch b {
	case BucketConversation, BucketNoBucket, BucketExpertAnalysis:
		return true
	default:
		return false
	}
}

func (b Bucket) String() string { return string(b) }
