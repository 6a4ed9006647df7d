// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package builtins

import (
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/colconst/pkg/col/coldata"
	"github.com/cockroachdb/colconst/pkg/sql/sem/builtins/constfn"
	"github.com/cockroachdb/colconst/pkg/sql/sem/eval"
	"github.com/cockroachdb/colconst/pkg/sql/sem/tree"
	"github.com/cockroachdb/colconst/pkg/sql/types"
)

type piName struct{}
type eName struct{}
type piDecimalName struct{}

func (piName) FuncName() string        { return "pi" }
func (eName) FuncName() string         { return "e" }
func (piDecimalName) FuncName() string { return "pi_decimal" }

// Pi is the pi() builtin.
type Pi = constfn.Func[piName, float64, coldata.Float64Kind]

// E is the e() builtin.
type E = constfn.Func[eName, float64, coldata.Float64Kind]

// PiDecimal is the pi_decimal() builtin.
type PiDecimal = constfn.Func[piDecimalName, apd.Decimal, coldata.DecimalKind]

// decimalPi holds pi to 50 significant digits.
var decimalPi = func() apd.Decimal {
	d, _, err := apd.NewFromString("3.1415926535897932384626433832795028841971693993751")
	if err != nil {
		panic(err)
	}
	return *d
}()

var mathBuiltins = map[string]builtinDefinition{
	"pi": makeBuiltin(
		tree.FunctionProperties{
			Category:   categoryMath,
			Info:       "Returns the value for pi (3.141592653589793).",
			ReturnType: types.Float,
		},
		func(*eval.Context) tree.Function {
			return constfn.FromValue[piName, float64, coldata.Float64Kind](math.Pi)
		},
	),
	"e": makeBuiltin(
		tree.FunctionProperties{
			Category:   categoryMath,
			Info:       "Returns Euler's number (2.718281828459045).",
			ReturnType: types.Float,
		},
		func(*eval.Context) tree.Function {
			return constfn.FromValue[eName, float64, coldata.Float64Kind](math.E)
		},
	),
	"pi_decimal": makeBuiltin(
		tree.FunctionProperties{
			Category:   categoryMath,
			Info:       "Returns pi as a decimal with 50 significant digits.",
			ReturnType: types.Decimal,
		},
		func(*eval.Context) tree.Function {
			return constfn.FromValue[piDecimalName, apd.Decimal, coldata.DecimalKind](decimalPi)
		},
	),
}
