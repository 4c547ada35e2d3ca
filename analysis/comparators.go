package analysis

import (
	"fmt"
	"os"
	"path"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"

	"github.com/griduniverse/griduniverse-go/core"
	"github.com/griduniverse/griduniverse-go/util"
)

// FileComparator dumps the datasets of every experiment to a JSON file under
// the save path. Files are uuid-suffixed so that parallel workers never
// clobber each other.
type FileComparator struct {
	savePath string
	run      int
}

var _ core.Comparator = &FileComparator{}

func NewFileComparator(savePath string, run int) *FileComparator {
	return &FileComparator{savePath: savePath, run: run}
}

func (c *FileComparator) Compare(names []string, datasets []core.DataSet) {
	out := make(map[string]core.DataSet)
	for i, name := range names {
		if datasets[i] != nil {
			out[name] = datasets[i]
		}
	}
	file := path.Join(
		c.savePath,
		fmt.Sprintf("run-%d", c.run),
		fmt.Sprintf("datasets-%s.json", uuid.New().String()),
	)
	if err := util.SaveJson(file, out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save datasets: %v\n", err)
	}
}

type FileComparatorConstructor struct {
	SavePath string
}

func NewFileComparatorConstructor(savePath string) *FileComparatorConstructor {
	return &FileComparatorConstructor{SavePath: savePath}
}

func (c *FileComparatorConstructor) NewComparator(run int) core.Comparator {
	return NewFileComparator(c.SavePath, run)
}

// ChartComparator renders the per-episode returns of every experiment as a
// single go-echarts line page.
type ChartComparator struct {
	savePath string
	run      int
}

var _ core.Comparator = &ChartComparator{}

func NewChartComparator(savePath string, run int) *ChartComparator {
	return &ChartComparator{savePath: savePath, run: run}
}

func (c *ChartComparator) Compare(names []string, datasets []core.DataSet) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Episode returns, run %d", c.run),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	maxEpisodes := 0
	for i, name := range names {
		dataset, ok := datasets[i].(*ReturnDataset)
		if !ok || dataset == nil {
			continue
		}
		if len(dataset.Returns) > maxEpisodes {
			maxEpisodes = len(dataset.Returns)
		}
		items := make([]opts.LineData, len(dataset.Returns))
		for j, r := range dataset.Returns {
			items[j] = opts.LineData{Value: r}
		}
		line.AddSeries(name, items)
	}

	episodes := make([]string, maxEpisodes)
	for i := range episodes {
		episodes[i] = fmt.Sprintf("%d", i)
	}
	line.SetXAxis(episodes)

	page := components.NewPage()
	page.AddCharts(line)

	dir := path.Join(c.savePath, fmt.Sprintf("run-%d", c.run))
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create chart dir: %v\n", err)
		return
	}
	f, err := os.Create(path.Join(dir, "returns.html"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create chart file: %v\n", err)
		return
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "failed to render chart: %v\n", err)
	}
}

type ChartComparatorConstructor struct {
	SavePath string
}

func NewChartComparatorConstructor(savePath string) *ChartComparatorConstructor {
	return &ChartComparatorConstructor{SavePath: savePath}
}

func (c *ChartComparatorConstructor) NewComparator(run int) core.Comparator {
	return NewChartComparator(c.SavePath, run)
}
