package recommend

import "github.com/poiesic/readnext/core"

// RecommendMonitor provides hooks to observe the recommendation pipeline.
// Implement this interface to track intermediate steps during a query.
type RecommendMonitor interface {
	Start(query string, category string, tone core.Tone)
	AfterSimilaritySearch(matches []*core.Match)
	AfterCatalogJoin(records []*core.BookRecord)
	AfterCategoryFilter(records []*core.BookRecord)
	Finish(results []*core.BookRecord)
}

// noopMonitor is a no-op implementation of RecommendMonitor
type noopMonitor struct{}

var _ RecommendMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ string, _ core.Tone)    {}
func (n *noopMonitor) AfterSimilaritySearch(_ []*core.Match)    {}
func (n *noopMonitor) AfterCatalogJoin(_ []*core.BookRecord)    {}
func (n *noopMonitor) AfterCategoryFilter(_ []*core.BookRecord) {}
func (n *noopMonitor) Finish(_ []*core.BookRecord)              {}
