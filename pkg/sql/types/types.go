// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package types

import (
	"fmt"

	"github.com/lib/pq/oid"
)

// Family groups types that share a physical column representation.
type Family int

const (
	// UnknownFamily is the zero value and is never bound to a column.
	UnknownFamily Family = iota
	// BoolFamily is the family of boolean values.
	BoolFamily
	// IntFamily is the family of 64-bit signed integers.
	IntFamily
	// FloatFamily is the family of 64-bit floating point numbers.
	FloatFamily
	// DecimalFamily is the family of arbitrary-precision decimals.
	DecimalFamily
	// StringFamily is the family of variable-length strings.
	StringFamily
	// UuidFamily is the family of 128-bit UUIDs.
	UuidFamily
)

var familyNames = [...]string{
	UnknownFamily: "unknown",
	BoolFamily:    "bool",
	IntFamily:     "int",
	FloatFamily:   "float",
	DecimalFamily: "decimal",
	StringFamily:  "string",
	UuidFamily:    "uuid",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// T is a type descriptor. Descriptors are singletons and can be compared
// with ==.
type T struct {
	family Family
	oid    oid.Oid
	width  int32
}

var (
	// Bool is the type of a boolean value.
	Bool = &T{family: BoolFamily, oid: oid.T_bool}
	// Int is the type of a 64-bit integer.
	Int = &T{family: IntFamily, oid: oid.T_int8, width: 64}
	// Float is the type of a 64-bit float.
	Float = &T{family: FloatFamily, oid: oid.T_float8, width: 64}
	// Decimal is the type of an arbitrary-precision decimal.
	Decimal = &T{family: DecimalFamily, oid: oid.T_numeric}
	// String is the type of a variable-length string.
	String = &T{family: StringFamily, oid: oid.T_text}
	// Uuid is the type of a UUID.
	Uuid = &T{family: UuidFamily, oid: oid.T_uuid}
)

// Family returns the family of the type.
func (t *T) Family() Family { return t.family }

// Oid returns the Postgres OID of the type.
func (t *T) Oid() oid.Oid { return t.oid }

// Width returns the bit width of fixed-width numeric types, or 0.
func (t *T) Width() int32 { return t.width }

// Name returns the short name of the type.
func (t *T) Name() string {
	switch t.family {
	case IntFamily:
		return "int8"
	case FloatFamily:
		return "float8"
	}
	return t.family.String()
}

// SQLString returns the type name as it would appear in a CAST.
func (t *T) SQLString() string {
	switch t.family {
	case IntFamily:
		return "INT8"
	case FloatFamily:
		return "FLOAT8"
	case StringFamily:
		return "STRING"
	case DecimalFamily:
		return "DECIMAL"
	case UuidFamily:
		return "UUID"
	case BoolFamily:
		return "BOOL"
	}
	return "UNKNOWN"
}

func (t *T) String() string { return t.Name() }

// Equivalent returns whether two types share a family, ignoring width.
func (t *T) Equivalent(other *T) bool {
	return t.family == other.family
}
