package fmm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbfmm/fmm1d/fmm"
	"github.com/bbfmm/fmm1d/internal/matrix"
	"github.com/bbfmm/fmm1d/kernel"
)

func TestEvaluateRejectsShapeMismatch(t *testing.T) {
	points := []float64{0.0, 0.5, 1.0, 1.5}
	tree, err := fmm.BuildTree(2, points, fmm.Options{})
	require.NoError(t, err)

	wrongCharges := matrix.New[float64](3, 1)
	_, err = fmm.Evaluate(kernel.Laplacian1D, tree, wrongCharges)
	require.Error(t, err)

	var ferr *fmm.Error
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, fmm.InvalidShape, ferr.Kind)
}

func TestBuildTreeRejectsInvalidRank(t *testing.T) {
	_, err := fmm.BuildTree(0, []float64{0, 1}, fmm.Options{})
	require.Error(t, err)

	var ferr *fmm.Error
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, fmm.InvalidRank, ferr.Kind)
}

func TestBuildTreeRejectsEmptyInput(t *testing.T) {
	_, err := fmm.BuildTree(2, nil, fmm.Options{})
	require.Error(t, err)

	var ferr *fmm.Error
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, fmm.EmptyInput, ferr.Kind)
}

func TestBuildTreeVerifyRejectsUselessRank(t *testing.T) {
	_, err := fmm.BuildTree(1, []float64{0, 1, 2, 3}, fmm.Options{Verify: true})
	require.Error(t, err)

	var ferr *fmm.Error
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, fmm.InvalidRank, ferr.Kind)
}

func TestBuildTreeVerifyAcceptsUsableRank(t *testing.T) {
	_, err := fmm.BuildTree(6, []float64{0, 1, 2, 3}, fmm.Options{Verify: true})
	require.NoError(t, err)
}

func TestEvaluateReusesTreeAcrossDifferentCharges(t *testing.T) {
	points := []float64{0.0, 0.3, 0.6, 0.9, 1.2, 1.5, 1.8, 2.1, 2.4, 2.7}
	tree, err := fmm.BuildTree(3, points, fmm.Options{})
	require.NoError(t, err)

	q1 := matrix.New[float64](len(points), 1)
	q2 := matrix.New[float64](len(points), 1)
	for i := range points {
		q1[i][0] = 1.0
		q2[i][0] = float64(i)
	}

	p1, err := fmm.Evaluate(kernel.Laplacian1D, tree, q1)
	require.NoError(t, err)
	p2, err := fmm.Evaluate(kernel.Laplacian1D, tree, q2)
	require.NoError(t, err)

	require.NotEqual(t, p1, p2)
}

func TestEvaluateSurfacesKernelPanicAsKernelError(t *testing.T) {
	points := []float64{0.0, 1.0}
	tree, err := fmm.BuildTree(2, points, fmm.Options{})
	require.NoError(t, err)

	panicky := func(x, y []float64) matrix.Dense[float64] {
		panic("boom")
	}

	charges := matrix.New[float64](2, 1)
	_, err = fmm.Evaluate(panicky, tree, charges)
	require.Error(t, err)

	var ferr *fmm.Error
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, fmm.KernelError, ferr.Kind)
}
