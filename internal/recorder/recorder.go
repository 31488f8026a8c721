package recorder

import (
	"github.com/jergrif73/whale-watcher/internal/model"
	"github.com/jergrif73/whale-watcher/internal/portfolio"
)

// Recorder persists evaluation output as an audit trail. Recommendations are
// recomputed fresh each cycle; recorded rows are never read back by the
// engine.
type Recorder interface {
	RecordRecommendation(rec *model.Recommendation) error
	RecordSummary(sum *portfolio.Summary) error
	Close() error
}
