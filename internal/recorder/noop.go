package recorder

import (
	"github.com/jergrif73/whale-watcher/internal/model"
	"github.com/jergrif73/whale-watcher/internal/portfolio"
)

// NoopRecorder is used when no audit database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRecommendation(_ *model.Recommendation) error { return nil }
func (n *NoopRecorder) RecordSummary(_ *portfolio.Summary) error           { return nil }
func (n *NoopRecorder) Close() error                                       { return nil }
