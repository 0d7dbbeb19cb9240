// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oracle

//go:generate go tool stringer -type=UnaryOp,ArithOp,SatOp,MinMaxOp,FloatOp -linecomment -output ops_string.go

// UnaryOp selects a single-operand integer operation.
type UnaryOp int

const (
	OpNeg UnaryOp = iota // neg
	OpAbs                // abs
)

// ArithOp selects a wrapping two-operand integer operation.
type ArithOp int

const (
	OpAdd ArithOp = iota // add
	OpSub                // sub
	OpMul                // mul
)

// SatOp selects a saturating integer operation.
type SatOp int

const (
	OpAddSatS SatOp = iota // add_sat_s
	OpSubSatS              // sub_sat_s
	OpAddSatU              // add_sat_u
	OpSubSatU              // sub_sat_u
)

// MinMaxOp selects an integer selection or averaging operation.
type MinMaxOp int

const (
	OpMinS  MinMaxOp = iota // min_s
	OpMaxS                  // max_s
	OpMinU                  // min_u
	OpMaxU                  // max_u
	OpAvgrU                 // avgr_u
)

// FloatOp selects a floating-point operation.
type FloatOp int

const (
	OpFMin FloatOp = iota // min
	OpFMax                // max
	OpFAbs                // abs
)

// Family groups operations by the oracle function that evaluates them.
type Family int

const (
	FamilyUnary Family = iota
	FamilyArith
	FamilySaturating
	FamilyMinMax
	FamilyFloat
)

// String returns a human-readable name for the family.
func (f Family) String() string {
	switch f {
	case FamilyUnary:
		return "unary"
	case FamilyArith:
		return "arith"
	case FamilySaturating:
		return "saturating"
	case FamilyMinMax:
		return "minmax"
	case FamilyFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Operation is a resolved operation name.
type Operation struct {
	Name   string
	Family Family
	Arity  int
	code   int
}

// Unary returns the UnaryOp for a FamilyUnary operation.
func (o Operation) Unary() UnaryOp { return UnaryOp(o.code) }

// Arith returns the ArithOp for a FamilyArith operation.
func (o Operation) Arith() ArithOp { return ArithOp(o.code) }

// Saturating returns the SatOp for a FamilySaturating operation.
func (o Operation) Saturating() SatOp { return SatOp(o.code) }

// MinMax returns the MinMaxOp for a FamilyMinMax operation.
func (o Operation) MinMax() MinMaxOp { return MinMaxOp(o.code) }

// Float returns the FloatOp for a FamilyFloat operation.
func (o Operation) Float() FloatOp { return FloatOp(o.code) }

// opAliases maps the longer spellings used by older fixture scripts.
var opAliases = map[string]string{
	"add_saturate_s": "add_sat_s",
	"sub_saturate_s": "sub_sat_s",
	"add_saturate_u": "add_sat_u",
	"sub_saturate_u": "sub_sat_u",
}

var (
	intOps   = map[string]Operation{}
	floatOps = map[string]Operation{}
)

func init() {
	for op := OpNeg; op <= OpAbs; op++ {
		intOps[op.String()] = Operation{Name: op.String(), Family: FamilyUnary, Arity: 1, code: int(op)}
	}
	for op := OpAdd; op <= OpMul; op++ {
		intOps[op.String()] = Operation{Name: op.String(), Family: FamilyArith, Arity: 2, code: int(op)}
	}
	for op := OpAddSatS; op <= OpSubSatU; op++ {
		intOps[op.String()] = Operation{Name: op.String(), Family: FamilySaturating, Arity: 2, code: int(op)}
	}
	for op := OpMinS; op <= OpAvgrU; op++ {
		intOps[op.String()] = Operation{Name: op.String(), Family: FamilyMinMax, Arity: 2, code: int(op)}
	}
	for op := OpFMin; op <= OpFAbs; op++ {
		arity := 2
		if op == OpFAbs {
			arity = 1
		}
		floatOps[op.String()] = Operation{Name: op.String(), Family: FamilyFloat, Arity: arity, code: int(op)}
	}
}

// LookupOp resolves an unprefixed operation name for integer or float lanes.
func LookupOp(name string, float bool) (Operation, error) {
	if alias, ok := opAliases[name]; ok {
		name = alias
	}
	table := intOps
	if float {
		table = floatOps
	}
	op, ok := table[name]
	if !ok {
		return Operation{}, unknownOp(name)
	}
	return op, nil
}

// OpNames returns the names of all integer or all float operations in
// declaration order.
func OpNames(float bool) []string {
	if float {
		return []string{OpFMin.String(), OpFMax.String(), OpFAbs.String()}
	}
	var names []string
	for op := OpNeg; op <= OpAbs; op++ {
		names = append(names, op.String())
	}
	for op := OpAdd; op <= OpMul; op++ {
		names = append(names, op.String())
	}
	for op := OpAddSatS; op <= OpSubSatU; op++ {
		names = append(names, op.String())
	}
	for op := OpMinS; op <= OpAvgrU; op++ {
		names = append(names, op.String())
	}
	return names
}

func (op UnaryOp) valid() bool  { return op >= OpNeg && op <= OpAbs }
func (op ArithOp) valid() bool  { return op >= OpAdd && op <= OpMul }
func (op SatOp) valid() bool    { return op >= OpAddSatS && op <= OpSubSatU }
func (op MinMaxOp) valid() bool { return op >= OpMinS && op <= OpAvgrU }
func (op FloatOp) valid() bool  { return op >= OpFMin && op <= OpFAbs }
