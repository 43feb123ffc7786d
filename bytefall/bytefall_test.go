package bytefall_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/bytefall"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/internal/fixtures"
	"github.com/katalvlaran/gridroute/route"
)

func mustCoords(t *testing.T) []gridgraph.Point {
	t.Helper()
	coords, err := bytefall.ParseCoords(strings.NewReader(fixtures.FallingBytes))
	require.NoError(t, err)
	require.Len(t, coords, 25)
	return coords
}

func TestParseCoords(t *testing.T) {
	coords, err := bytefall.ParseCoords(strings.NewReader("5,4\n\n 4, 2 \r\n"))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Point{{Row: 4, Col: 5}, {Row: 2, Col: 4}}, coords)

	for _, bad := range []string{"5", "5;4", "a,1", "1,b", "-1,2", "1,2,3"} {
		t.Run(bad, func(t *testing.T) {
			_, err := bytefall.ParseCoords(strings.NewReader(bad))
			assert.ErrorIs(t, err, bytefall.ErrBadCoordinate)
		})
	}
}

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "6,1", bytefall.FormatCoord(gridgraph.Point{Row: 1, Col: 6}))
}

func TestGrid(t *testing.T) {
	coords := mustCoords(t)

	g, err := bytefall.Grid(7, coords, 12)
	require.NoError(t, err)
	h, w := g.Dimensions()
	assert.Equal(t, 7, h)
	assert.Equal(t, 7, w)
	for i, p := range coords {
		if i < 12 {
			assert.False(t, g.IsPassable(p), "byte %d at %v", i, p)
		}
	}

	_, err = bytefall.Grid(0, coords, 0)
	assert.ErrorIs(t, err, bytefall.ErrBadSize)
	_, err = bytefall.Grid(7, coords, 26)
	assert.ErrorIs(t, err, bytefall.ErrBadCount)
	_, err = bytefall.Grid(7, coords, -1)
	assert.ErrorIs(t, err, bytefall.ErrBadCount)
	_, err = bytefall.Grid(3, coords, 1)
	assert.ErrorIs(t, err, bytefall.ErrOutsideSpace)
}

func TestShortestSteps(t *testing.T) {
	coords := mustCoords(t)

	cases := []struct {
		n, want int
	}{
		{0, 12},
		{10, 18},
		{12, 22},
		{20, 24},
	}
	for _, tc := range cases {
		steps, err := bytefall.ShortestSteps(7, coords, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, steps, "after %d bytes", tc.n)
	}

	_, err := bytefall.ShortestSteps(7, coords, 21)
	assert.ErrorIs(t, err, route.ErrNoPath)
}

func TestFirstBlocking(t *testing.T) {
	coords := mustCoords(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p, err := bytefall.FirstBlocking(7, coords, 12, bytefall.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "6,1", bytefall.FormatCoord(p))
	assert.Contains(t, buf.String(), "bytefall: byte hit route")

	// The answer does not depend on how many bytes were pre-dropped.
	p, err = bytefall.FirstBlocking(7, coords, 0)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 6}, p)
}

func TestFirstBlocking_Errors(t *testing.T) {
	coords := mustCoords(t)

	_, err := bytefall.FirstBlocking(7, coords[:20], 12)
	assert.ErrorIs(t, err, bytefall.ErrNeverBlocked)

	_, err = bytefall.FirstBlocking(7, coords, 22)
	assert.ErrorIs(t, err, route.ErrNoPath)

	_, err = bytefall.FirstBlocking(7, append(coords[:12:12], gridgraph.Point{Row: 9, Col: 0}), 12)
	assert.ErrorIs(t, err, bytefall.ErrOutsideSpace)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bytefall.FirstBlocking(7, coords, 12, bytefall.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFirstBlocking_CornerHit(t *testing.T) {
	coords := []gridgraph.Point{{Row: 1, Col: 1}, {Row: 2, Col: 2}}
	p, err := bytefall.FirstBlocking(3, coords, 0)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{Row: 2, Col: 2}, p, "the exit itself is hit")
}
