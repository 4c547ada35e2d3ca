package analysis

import (
	"github.com/griduniverse/griduniverse-go/core"
	"github.com/griduniverse/griduniverse-go/util"
)

// ReturnDataset records per-episode totals in episode order.
type ReturnDataset struct {
	Episodes   []int
	Returns    []float64
	Steps      []int
	Terminated []int
}

func (d *ReturnDataset) Copy() *ReturnDataset {
	return &ReturnDataset{
		Episodes:   util.CopyIntSlice(d.Episodes),
		Returns:    util.CopyFloat64Slice(d.Returns),
		Steps:      util.CopyIntSlice(d.Steps),
		Terminated: util.CopyIntSlice(d.Terminated),
	}
}

// ReturnAnalyzer accumulates the undiscounted return and length of every
// completed episode.
type ReturnAnalyzer struct {
	dataset *ReturnDataset
}

var _ core.Analyzer = &ReturnAnalyzer{}

func NewReturnAnalyzer() *ReturnAnalyzer {
	return &ReturnAnalyzer{
		dataset: newReturnDataset(),
	}
}

func newReturnDataset() *ReturnDataset {
	return &ReturnDataset{
		Episodes:   make([]int, 0),
		Returns:    make([]float64, 0),
		Steps:      make([]int, 0),
		Terminated: make([]int, 0),
	}
}

func (r *ReturnAnalyzer) Reset() {
	r.dataset = newReturnDataset()
}

func (r *ReturnAnalyzer) Analyze(eCtx *core.EpisodeContext, trace *core.Trace) {
	terminated := 0
	if trace.Terminated() {
		terminated = 1
	}
	r.dataset.Episodes = append(r.dataset.Episodes, eCtx.Episode)
	r.dataset.Returns = append(r.dataset.Returns, trace.TotalReward())
	r.dataset.Steps = append(r.dataset.Steps, trace.Len())
	r.dataset.Terminated = append(r.dataset.Terminated, terminated)
}

func (r *ReturnAnalyzer) DataSet() core.DataSet {
	return r.dataset.Copy()
}

type ReturnAnalyzerConstructor struct{}

func (c *ReturnAnalyzerConstructor) NewAnalyzer(_ int) core.Analyzer {
	return NewReturnAnalyzer()
}
