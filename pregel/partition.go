package pregel

import "github.com/vanderheijden86/hugegraph/graph"

// Partitioning selects how the scheduler divides node ids among workers.
type Partitioning int

const (
	// Range splits nodes into P partitions of roughly nodeCount/P
	// contiguous ids each.
	Range Partitioning = iota
	// Degree greedily bin-packs contiguous id runs so each partition's
	// summed degree is approximately equal.
	Degree
	// Auto starts with Range and falls back to Degree on subsequent
	// supersteps if observed per-partition imbalance exceeds a threshold.
	Auto
)

// autoImbalanceThreshold is the ratio of slowest-to-fastest partition
// duration above which Auto mode switches from Range to Degree.
const autoImbalanceThreshold = 1.5

// Partition is a contiguous slice of internal node ids assigned to one
// worker for a superstep. Partitions are formed once per run (or
// recomputed by Auto mode); their union equals [0, nodeCount) and they are
// disjoint.
type Partition struct {
	Start     int
	Length    int
	DegreeSum int64
}

// End returns the exclusive upper bound of the partition's node range.
func (p Partition) End() int { return p.Start + p.Length }

// rangePartition splits [0, nodeCount) into numPartitions contiguous,
// roughly-equal-length partitions.
func rangePartition(nodeCount, numPartitions int) []Partition {
	if numPartitions < 1 {
		numPartitions = 1
	}
	if numPartitions > nodeCount {
		numPartitions = nodeCount
	}
	if nodeCount == 0 {
		return nil
	}

	base := nodeCount / numPartitions
	remainder := nodeCount % numPartitions

	parts := make([]Partition, 0, numPartitions)
	start := 0
	for i := 0; i < numPartitions; i++ {
		length := base
		if i < remainder {
			length++
		}
		if length == 0 {
			continue
		}
		parts = append(parts, Partition{Start: start, Length: length})
		start += length
	}
	return parts
}

// degreePartition greedily walks node ids in order, closing a partition
// once its accumulated degree sum reaches the target-per-partition share,
// so that every partition does roughly the same amount of adjacency work
// regardless of how skewed the degree distribution is.
func degreePartition(g graph.Graph, numPartitions int) []Partition {
	nodeCount := g.NodeCount()
	if numPartitions < 1 {
		numPartitions = 1
	}
	if nodeCount == 0 {
		return nil
	}

	var totalDegree int64
	for n := 0; n < nodeCount; n++ {
		totalDegree += int64(g.Degree(n))
	}
	target := totalDegree / int64(numPartitions)
	if target == 0 {
		target = 1
	}

	parts := make([]Partition, 0, numPartitions)
	start := 0
	var sum int64
	for n := 0; n < nodeCount; n++ {
		sum += int64(g.Degree(n))
		lastPartition := len(parts) == numPartitions-1
		if sum >= target && !lastPartition && n+1 < nodeCount {
			parts = append(parts, Partition{Start: start, Length: n - start + 1, DegreeSum: sum})
			start = n + 1
			sum = 0
		}
	}
	if start < nodeCount {
		parts = append(parts, Partition{Start: start, Length: nodeCount - start, DegreeSum: sum})
	}
	return parts
}
