// Package stats computes shape statistics over an interning pool: depth and
// fan-out distributions, and the memory the flyweight representation saves
// against storing every path expanded.
package stats

import (
	"github.com/Sumatoshi-tech/pathfang/pkg/pathpool"
)

// Report summarizes one pool. All figures are derived from the pool's public
// contract in a single O(paths) pass; parents always precede children, so
// per-node depth and expanded size fold over already-computed parents.
type Report struct {
	Strategy pathpool.Strategy `yaml:"strategy" json:"strategy"`

	// Paths is the number of interned paths, root included.
	Paths int `yaml:"paths" json:"paths"`

	// Leaves is the number of paths with no children.
	Leaves int `yaml:"leaves" json:"leaves"`

	// DistinctTags counts unique tag values across all paths.
	DistinctTags int `yaml:"distinct_tags" json:"distinct_tags"`

	MaxDepth  int     `yaml:"max_depth"  json:"max_depth"`
	MeanDepth float64 `yaml:"mean_depth" json:"mean_depth"`

	// TagBytes is what the pool actually stores: each tag once.
	TagBytes uint64 `yaml:"tag_bytes" json:"tag_bytes"`

	// ExpandedBytes is what storing every full path as a flat string would
	// cost, separators included. The flyweight saving is the difference.
	ExpandedBytes uint64 `yaml:"expanded_bytes" json:"expanded_bytes"`

	// DepthCounts[d] is the number of paths at depth d.
	DepthCounts []int `yaml:"depth_counts" json:"depth_counts"`

	// FanOutCounts maps a child count to the number of paths with exactly
	// that many children. Leaves are excluded (fan-out zero dominates).
	FanOutCounts map[int]int `yaml:"fan_out_counts" json:"fan_out_counts"`
}

// Collect computes a Report for pool. Separator length is charged per edge
// when estimating expanded storage (pass 1 for "/"-joined paths).
func Collect(pool *pathpool.Pool[string], separatorLen int) Report {
	n := pool.Len()

	depths := make([]int, n)
	expanded := make([]uint64, n)
	childCount := make([]int, n)
	tags := make(map[string]struct{}, n)

	var (
		tagBytes      uint64
		expandedTotal uint64
		depthTotal    int
		maxDepth      int
	)

	for i := range n {
		id := pathpool.PathID(i)
		tag := pool.Tag(id)
		parent := pool.Parent(id)

		tags[tag] = struct{}{}
		tagBytes += uint64(len(tag))

		if parent == id {
			expanded[i] = uint64(len(tag))
		} else {
			depths[i] = depths[parent] + 1
			expanded[i] = expanded[parent] + uint64(separatorLen) + uint64(len(tag))
			childCount[parent]++
		}

		expandedTotal += expanded[i]
		depthTotal += depths[i]
		maxDepth = max(maxDepth, depths[i])
	}

	depthCounts := make([]int, maxDepth+1)
	fanOut := make(map[int]int)
	leaves := 0

	for i := range n {
		depthCounts[depths[i]]++

		if childCount[i] == 0 {
			leaves++
		} else {
			fanOut[childCount[i]]++
		}
	}

	meanDepth := 0.0
	if n > 0 {
		meanDepth = float64(depthTotal) / float64(n)
	}

	return Report{
		Strategy:      pool.Strategy(),
		Paths:         n,
		Leaves:        leaves,
		DistinctTags:  len(tags),
		MaxDepth:      maxDepth,
		MeanDepth:     meanDepth,
		TagBytes:      tagBytes,
		ExpandedBytes: expandedTotal,
		DepthCounts:   depthCounts,
		FanOutCounts:  fanOut,
	}
}

// SavedBytes returns how many bytes the flyweight representation saves over
// expanded storage. Zero when the pool is too small to share anything.
func (r Report) SavedBytes() uint64 {
	if r.ExpandedBytes <= r.TagBytes {
		return 0
	}

	return r.ExpandedBytes - r.TagBytes
}
