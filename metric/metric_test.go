package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siddharthsheth/greedytree/metric"
	"github.com/siddharthsheth/greedytree/point"
)

func TestL1(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(3, 4)
	var m metric.L1
	require.Equal(t, 7.0, m.Dist(a, b))
	require.Equal(t, 7.0, m.CompareDist(a, b))
}

func TestL2(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(3, 4)
	var m metric.L2
	require.Equal(t, 5.0, m.Dist(a, b))
	require.Equal(t, 25.0, m.CompareDist(a, b))
}

func TestL2OrderingAgreesWithDist(t *testing.T) {
	var m metric.L2
	a, b := point.New(0, 0, 0), point.New(1, 1, 1)
	c, e := point.New(0, 0, 0), point.New(5, 0, 0)
	lessByDist := m.Dist(a, b) <= m.Dist(c, e)
	lessByCompare := m.CompareDist(a, b) <= m.CompareDist(c, e)
	require.Equal(t, lessByDist, lessByCompare)
}

func TestZeroDistance(t *testing.T) {
	p := point.New(1, 2, 3)
	var l1 metric.L1
	var l2 metric.L2
	require.Equal(t, 0.0, l1.Dist(p, p))
	require.Equal(t, 0.0, l2.Dist(p, p))
}

func TestTriangleInequalitySample(t *testing.T) {
	var m metric.L2
	a := point.New(0, 0)
	b := point.New(3, 0)
	c := point.New(3, 4)
	require.LessOrEqual(t, m.Dist(a, c), m.Dist(a, b)+m.Dist(b, c)+1e-9)
	require.True(t, math.Abs(m.Dist(a, c)-5.0) < 1e-9)
}
