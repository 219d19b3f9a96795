package main

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longNumber doesn't fit in a default bufio.Scanner buffer.
var longNumber = strings.Repeat("9", 70000)

var exampleDepths = []uint32{199, 200, 208, 210, 200, 207, 240, 269, 260, 263}

func TestParseDepths(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  []uint32
	}{
		{"", nil},
		{"7", []uint32{7}},
		{"7\n", []uint32{7}},
		{"1\r\n2\r\n", []uint32{1, 2}},
		{"3\n3\n1\n", []uint32{3, 3, 1}},
		{"4294967295\n0\n", []uint32{math.MaxUint32, 0}},
	} {
		got, err := parseDepths([]byte(tt.input))
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseDepthsStrict(t *testing.T) {
	for _, tt := range []struct {
		input    string
		wantLine int
		wantText string
		wantErr  error
	}{
		{"\n", 1, "", strconv.ErrSyntax},
		{"1\n2\nx\n4\n", 3, "x", strconv.ErrSyntax},
		{"1\n\n3\n", 2, "", strconv.ErrSyntax},
		{"-1\n", 1, "-1", strconv.ErrSyntax},
		{" 5\n", 1, " 5", strconv.ErrSyntax},
		{"1\n4294967296\n", 2, "4294967296", strconv.ErrRange},
		{"1\n" + longNumber + "\n3\n", 2, longNumber, strconv.ErrRange},
	} {
		got, err := parseDepths([]byte(tt.input))
		assert.Nil(t, got, "input %q", tt.input)
		require.ErrorIs(t, err, ErrParse, "input %q", tt.input)
		require.ErrorIs(t, err, tt.wantErr, "input %q", tt.input)
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, tt.wantLine, perr.Line, "input %q", tt.input)
		assert.Equal(t, tt.wantText, perr.Text, "input %q", tt.input)
	}
}

func TestCountIncreases(t *testing.T) {
	for _, tt := range []struct {
		depths []uint32
		want   uint64
	}{
		{nil, 0},
		{[]uint32{5}, 0},
		{[]uint32{5, 5}, 0},
		{[]uint32{5, 6}, 1},
		{[]uint32{6, 5}, 0},
		{[]uint32{1, 2, 3, 4}, 3},
		{exampleDepths, 7},
	} {
		assert.Equal(t, tt.want, countIncreases(tt.depths), "%v", tt.depths)
	}
}

func TestCountIncreasesAppend(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var depths []uint32
	var prev uint64
	for i := 0; i < 200; i++ {
		d := uint32(rng.Intn(50))
		if len(depths) > 0 && rng.Intn(2) == 0 {
			d = depths[len(depths)-1] + 1
		}
		depths = append(depths, d)
		n := countIncreases(depths)
		require.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestCountWindowIncreases(t *testing.T) {
	for _, tt := range []struct {
		depths []uint32
		want   uint64
	}{
		{nil, 0},
		{[]uint32{1}, 0},
		{[]uint32{1, 2}, 0},
		{[]uint32{1, 2, 3}, 0},
		{[]uint32{1, 2, 3, 4}, 1},
		{[]uint32{4, 3, 2, 1}, 0},
		{[]uint32{1, 2, 3, 1}, 0},
		{exampleDepths, 5},
		{[]uint32{math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32}, 0},
		{[]uint32{math.MaxUint32 - 1, math.MaxUint32, math.MaxUint32, math.MaxUint32}, 1},
	} {
		assert.Equal(t, tt.want, countWindowIncreases(tt.depths, 3), "%v", tt.depths)
	}
}

func TestCountWindowIncreasesWidthOne(t *testing.T) {
	assert.Equal(t, countIncreases(exampleDepths), countWindowIncreases(exampleDepths, 1))
	assert.Panics(t, func() { countWindowIncreases(exampleDepths, 0) })
}

// The window sums share all but their end elements, so comparing sums is
// the same as comparing depths[i+3] with depths[i].
func TestCountWindowIncreasesShortcut(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		depths := make([]uint32, rng.Intn(30))
		for j := range depths {
			depths[j] = rng.Uint32()
		}
		var want uint64
		for j := 3; j < len(depths); j++ {
			if depths[j] > depths[j-3] {
				want++
			}
		}
		require.Equal(t, want, countWindowIncreases(depths, 3), "%v", depths)
	}
}

func TestDay1(t *testing.T) {
	ans, err := day1(context.Background(), []byte("199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"))
	require.NoError(t, err)
	assert.Equal(t, answers{7, 5}, ans)

	ans, err = day1(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, answers{0, 0}, ans)

	_, err = day1(context.Background(), []byte("1\nfoo\n"))
	require.ErrorIs(t, err, ErrParse)
}

func BenchmarkCountWindowIncreases(b *testing.B) {
	depths, err := parseDepths(mustInput(b, "1"))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		countWindowIncreases(depths, 3)
	}
}
