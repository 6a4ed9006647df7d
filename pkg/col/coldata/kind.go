// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package coldata

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/colconst/pkg/sql/types"
	"github.com/google/uuid"
)

// Kind is the column representation of values of Go type T. Kinds are
// zero-sized and carry no state; they bind T to a type descriptor and
// provide the per-value helpers vectors need.
type Kind[T any] interface {
	// Type returns the type descriptor of columns of this kind.
	Type() *types.T
	// Format renders a value.
	Format(v T) string
	// Equal compares two values.
	Equal(a, b T) bool
	// Size returns the memory footprint of a value, including any payload
	// it references.
	Size(v T) int64
	// Copy returns a value equal to v that shares no memory with it.
	Copy(v T) T
}

// Int64Kind represents INT8 columns.
type Int64Kind struct{}

// Float64Kind represents FLOAT8 columns.
type Float64Kind struct{}

// BoolKind represents BOOL columns.
type BoolKind struct{}

// StringKind represents STRING columns.
type StringKind struct{}

// DecimalKind represents DECIMAL columns.
type DecimalKind struct{}

// UUIDKind represents UUID columns.
type UUIDKind struct{}

var (
	_ Kind[int64]       = Int64Kind{}
	_ Kind[float64]     = Float64Kind{}
	_ Kind[bool]        = BoolKind{}
	_ Kind[string]      = StringKind{}
	_ Kind[apd.Decimal] = DecimalKind{}
	_ Kind[uuid.UUID]   = UUIDKind{}
)

const (
	sizeOfInt64   = int64(unsafe.Sizeof(int64(0)))
	sizeOfFloat64 = int64(unsafe.Sizeof(float64(0)))
	sizeOfBool    = int64(unsafe.Sizeof(false))
	sizeOfString  = int64(unsafe.Sizeof(""))
	sizeOfDecimal = int64(unsafe.Sizeof(apd.Decimal{}))
	sizeOfUUID    = int64(unsafe.Sizeof(uuid.UUID{}))
)

func (Int64Kind) Type() *types.T { return types.Int }
func (Int64Kind) Format(v int64) string { return strconv.FormatInt(v, 10) }
func (Int64Kind) Equal(a, b int64) bool { return a == b }
func (Int64Kind) Size(int64) int64 { return sizeOfInt64 }
func (Int64Kind) Copy(v int64) int64 { return v }

func (Float64Kind) Type() *types.T { return types.Float }
func (Float64Kind) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Equal treats NaN as equal to itself so that a NaN constant compares equal
// to its own materialization.
func (Float64Kind) Equal(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
func (Float64Kind) Size(float64) int64 { return sizeOfFloat64 }
func (Float64Kind) Copy(v float64) float64 { return v }

func (BoolKind) Type() *types.T { return types.Bool }
func (BoolKind) Format(v bool) string { return strconv.FormatBool(v) }
func (BoolKind) Equal(a, b bool) bool { return a == b }
func (BoolKind) Size(bool) int64 { return sizeOfBool }
func (BoolKind) Copy(v bool) bool { return v }

func (StringKind) Type() *types.T { return types.String }
func (StringKind) Format(v string) string { return v }
func (StringKind) Equal(a, b string) bool { return a == b }
func (StringKind) Size(v string) int64 { return sizeOfString + int64(len(v)) }

// Copy returns v. Strings are immutable, so sharing the bytes is safe.
func (StringKind) Copy(v string) string { return v }

func (DecimalKind) Type() *types.T { return types.Decimal }
func (DecimalKind) Format(v apd.Decimal) string { return v.String() }
func (DecimalKind) Equal(a, b apd.Decimal) bool { return a.Cmp(&b) == 0 }

// Size approximates the coefficient payload at one byte per two digits.
func (DecimalKind) Size(v apd.Decimal) int64 {
	return sizeOfDecimal + v.NumDigits()/2
}

// Copy returns a deep copy of v. Copying an apd.Decimal by value shares the
// big.Int holding a large coefficient.
func (DecimalKind) Copy(v apd.Decimal) apd.Decimal {
	var d apd.Decimal
	d.Set(&v)
	return d
}

func (UUIDKind) Type() *types.T { return types.Uuid }
func (UUIDKind) Format(v uuid.UUID) string { return v.String() }
func (UUIDKind) Equal(a, b uuid.UUID) bool { return a == b }
func (UUIDKind) Size(uuid.UUID) int64 { return sizeOfUUID }
func (UUIDKind) Copy(v uuid.UUID) uuid.UUID { return v }
