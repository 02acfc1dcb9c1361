package trace

import "time"

// Reporter receives stage timings and counts between pipeline steps. It
// must not mutate anything it is handed — the core remains pure and
// single-threaded regardless of what a Reporter implementation does with
// the numbers (spec §5).
type Reporter interface {
	StageDone(stage string, count int, elapsed time.Duration)
}

// noopReporter is used when the caller passes a nil Reporter.
type noopReporter struct{}

func (noopReporter) StageDone(string, int, time.Duration) {}

// Summary is returned alongside the rendered document so a caller (the CLI)
// can print the per-file counts spec §7 requires without re-deriving them.
type Summary struct {
	Width, Height int
	Scale         int
	RegionCount   int
	ClusterCount  int
}

// Trace runs the full C2→C7 pipeline for one decoded image: partition by
// color, keep only opaque regions, label each into 4-connected clusters,
// trace and simplify each cluster's boundary, and emit one SVG path per
// cluster. Scale<1 is an invalid-argument error; everything else is
// expected to succeed on well-formed input (spec §4.4's "the builder
// itself never fails").
func Trace(pixels [][]Color, width, height, scale int, reporter Reporter) (*Document, Summary, error) {
	if scale < 1 {
		return nil, Summary{}, errInvalidArg("scale must be >= 1, got %d", scale)
	}
	if reporter == nil {
		reporter = noopReporter{}
	}

	start := time.Now()
	allRegions := PartitionByColor(pixels, width, height)
	var regions []*ColorRegion
	for _, r := range allRegions {
		if r.Color.Opaque() {
			regions = append(regions, r)
		}
	}
	reporter.StageDone("color regions", len(regions), time.Since(start))

	start = time.Now()
	var clusters []*Cluster
	for _, r := range regions {
		clusters = append(clusters, SplitIntoClusters(r)...)
	}
	reporter.StageDone("clusters", len(clusters), time.Since(start))

	start = time.Now()
	doc := NewDocument(width, height, scale)
	for _, cluster := range clusters {
		graph := BuildEdgeGraph(cluster.Bitmask)
		loops, err := ExtractLoops(graph)
		if err != nil {
			return nil, Summary{}, err
		}
		SimplifyLoops(loops)
		doc.AddPath(EmitClusterPath(cluster.Color, loops, scale))
	}
	reporter.StageDone("processing", len(clusters), time.Since(start))

	return doc, Summary{
		Width:        width,
		Height:       height,
		Scale:        scale,
		RegionCount:  len(regions),
		ClusterCount: len(clusters),
	}, nil
}
