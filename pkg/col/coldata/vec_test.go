// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package coldata

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/colconst/pkg/sql/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestConstVecSizeDoesNotGrow(t *testing.T) {
	small := NewConstVec[string](StringKind{}, "2025-01-01", 1)
	for _, n := range []int{0, 1, 5, BatchSize, 1 << 20} {
		c := NewConstVec[string](StringKind{}, "2025-01-01", n)
		require.Equal(t, n, c.Len())
		require.True(t, c.IsConst())
		require.Equal(t, small.Size(), c.Size())
	}
}

func TestFlatVecSizeGrows(t *testing.T) {
	c := NewConstVec[float64](Float64Kind{}, math.Pi, 100)
	flat := c.Flatten()
	require.False(t, flat.IsConst())
	require.Equal(t, 100, flat.Len())
	require.Greater(t, flat.Size(), c.Size())
	require.Greater(t, flat.Size(), NewConstVec[float64](Float64Kind{}, math.Pi, 10).Flatten().Size())
}

func TestEqual(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	d, _, err := apd.NewFromString("3.14159")
	require.NoError(t, err)
	d2, _, err := apd.NewFromString("3.141590")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		a, b  Vec
		equal bool
	}{
		{
			name:  "const vs const",
			a:     NewConstVec[int64](Int64Kind{}, 7, 3),
			b:     NewConstVec[int64](Int64Kind{}, 7, 3),
			equal: true,
		},
		{
			name:  "const vs flat",
			a:     NewConstVec[int64](Int64Kind{}, 7, 3),
			b:     NewFlatVec[int64](Int64Kind{}, []int64{7, 7, 7}),
			equal: true,
		},
		{
			name:  "different value",
			a:     NewConstVec[int64](Int64Kind{}, 7, 3),
			b:     NewFlatVec[int64](Int64Kind{}, []int64{7, 8, 7}),
			equal: false,
		},
		{
			name:  "different length",
			a:     NewConstVec[int64](Int64Kind{}, 7, 3),
			b:     NewConstVec[int64](Int64Kind{}, 7, 4),
			equal: false,
		},
		{
			name:  "different type",
			a:     NewConstVec[int64](Int64Kind{}, 1, 1),
			b:     NewConstVec[float64](Float64Kind{}, 1, 1),
			equal: false,
		},
		{
			name:  "empty",
			a:     NewConstVec[string](StringKind{}, "a", 0),
			b:     NewConstVec[string](StringKind{}, "b", 0),
			equal: true,
		},
		{
			name:  "nan",
			a:     NewConstVec[float64](Float64Kind{}, math.NaN(), 2),
			b:     NewConstVec[float64](Float64Kind{}, math.NaN(), 2).Flatten(),
			equal: true,
		},
		{
			name:  "decimal ignores trailing zeros",
			a:     NewConstVec[apd.Decimal](DecimalKind{}, *d, 2),
			b:     NewConstVec[apd.Decimal](DecimalKind{}, *d2, 2),
			equal: true,
		},
		{
			name:  "uuid",
			a:     NewConstVec[uuid.UUID](UUIDKind{}, u, 2),
			b:     NewFlatVec[uuid.UUID](UUIDKind{}, []uuid.UUID{u, u}),
			equal: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.equal, Equal(tc.a, tc.b))
			require.Equal(t, tc.equal, Equal(tc.b, tc.a))
		})
	}
}

func TestConstVecWithLength(t *testing.T) {
	c := NewConstVec[string](StringKind{}, "v", 1)
	resized := c.WithLength(5)
	require.Equal(t, 1, c.Len())
	require.Equal(t, 5, resized.Len())
	require.Equal(t, types.String, resized.Type())
	require.True(t, Equal(resized, NewFlatVec[string](StringKind{}, []string{"v", "v", "v", "v", "v"})))
	require.Equal(t, 0, NewConstVec[string](StringKind{}, "v", -3).Len())
}

func TestConstVecAccessors(t *testing.T) {
	c := NewConstVec[float64](Float64Kind{}, 3.14159, 5)
	require.Equal(t, 3.14159, c.Value())
	require.Equal(t, 3.14159, c.At(4))
	require.Equal(t, 3.14159, c.Get(0))
	require.Equal(t, "3.14159", c.PrettyValueAt(2))
	require.Equal(t, "const(3.14159) x 5", c.String())
	require.Panics(t, func() { c.At(5) })
	require.Panics(t, func() { c.At(-1) })

	flat := Flatten(c)
	require.Equal(t, "[3.14159 3.14159 3.14159 3.14159 3.14159]", flat.String())
	require.Equal(t, flat, Flatten(flat))
}

func TestMemBatch(t *testing.T) {
	b := NewMemBatch(3, NewConstVec[int64](Int64Kind{}, 1, 3))
	require.Equal(t, 1, b.Width())
	b.AppendCol(NewConstVec[bool](BoolKind{}, true, 3))
	require.Equal(t, 2, b.Width())
	require.Equal(t, types.Bool, b.ColVec(1).Type())

	b.ReplaceCol(NewConstVec[int64](Int64Kind{}, 2, 3), 0)
	require.Equal(t, int64(2), b.ColVec(0).Get(0))
	require.Panics(t, func() { b.ReplaceCol(NewConstVec[int64](Int64Kind{}, 2, 4), 0) })
	require.Panics(t, func() { ZeroBatch.AppendCol(NewConstVec[int64](Int64Kind{}, 2, 0)) })
}

func TestDecimalKindCopy(t *testing.T) {
	orig, _, err := apd.NewFromString("2.7182818284590452353602874713526624977572470937")
	require.NoError(t, err)
	cpy := DecimalKind{}.Copy(*orig)
	_, err = apd.BaseContext.WithPrecision(60).Add(&cpy, &cpy, apd.New(1, 0))
	require.NoError(t, err)
	require.Equal(t, "2.7182818284590452353602874713526624977572470937", orig.String())
	require.Equal(t, "3.7182818284590452353602874713526624977572470937", cpy.String())

	// Vectors built from a copied value are unaffected by mutations of the
	// source.
	src := DecimalKind{}.Copy(*orig)
	vec := NewConstVec[apd.Decimal](DecimalKind{}, DecimalKind{}.Copy(src), 3)
	_, err = apd.BaseContext.WithPrecision(60).Add(&src, &src, apd.New(1, 0))
	require.NoError(t, err)
	require.Equal(t, orig.String(), vec.PrettyValueAt(2))
}
