package diarize

import (
	// Packages
	errors "github.com/djthorpe/go-errors"
	clusters "github.com/muesli/clusters"
	kmeans "github.com/muesli/kmeans"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Clusterer partitions feature vectors into at most k groups, returning a
// cluster index in [0, k) for each vector. Implementations need not produce
// stable indices across runs.
type Clusterer interface {
	Cluster(vectors [][]float64, k int) ([]int, error)
}

// KMeans is the default clusterer. Input vectors must be scaled to [0, 1]
// per dimension.
type KMeans struct{}

// observation carries the vector index through the partitioning so each
// vector can be mapped back to its cluster
type observation struct {
	idx    int
	coords clusters.Coordinates
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (KMeans) Cluster(vectors [][]float64, k int) ([]int, error) {
	if len(vectors) == 0 {
		return nil, errors.ErrBadParameter.With("no feature vectors")
	}
	if k > len(vectors) {
		k = len(vectors)
	}

	labels := make([]int, len(vectors))
	if k < 2 {
		return labels, nil
	}

	data := make(clusters.Observations, 0, len(vectors))
	for i, vector := range vectors {
		data = append(data, observation{idx: i, coords: clusters.Coordinates(vector)})
	}

	km := kmeans.New()
	partitions, err := km.Partition(data, k)
	if err != nil {
		return nil, err
	}

	for ci, partition := range partitions {
		for _, obs := range partition.Observations {
			labels[obs.(observation).idx] = ci
		}
	}
	return labels, nil
}

//////////////////////////////////////////////////////////////////////////////
// OBSERVATION INTERFACE

func (o observation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o observation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Scale each feature dimension to [0, 1] across all vectors. Dimensions with
// no spread scale to zero.
func scaleFeatures(vectors [][]float64) [][]float64 {
	if len(vectors) == 0 {
		return vectors
	}
	dim := len(vectors[0])
	min := make([]float64, dim)
	max := make([]float64, dim)
	copy(min, vectors[0])
	copy(max, vectors[0])
	for _, vector := range vectors[1:] {
		for d, v := range vector {
			if v < min[d] {
				min[d] = v
			}
			if v > max[d] {
				max[d] = v
			}
		}
	}

	scaled := make([][]float64, len(vectors))
	for i, vector := range vectors {
		scaled[i] = make([]float64, dim)
		for d, v := range vector {
			if spread := max[d] - min[d]; spread > 0 {
				scaled[i][d] = (v - min[d]) / spread
			}
		}
	}
	return scaled
}
