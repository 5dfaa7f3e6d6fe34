package ir

import "fmt"

// ComparisonOperator is one of the fixed comparison operators a
// property selection can use.
type ComparisonOperator string

const (
	Equals            ComparisonOperator = "Equals"
	NotEquals         ComparisonOperator = "NotEquals"
	LessThan          ComparisonOperator = "LessThan"
	LessThanEquals    ComparisonOperator = "LessThanEquals"
	GreaterThan       ComparisonOperator = "GreaterThan"
	GreaterThanEquals ComparisonOperator = "GreaterThanEquals"
	Like              ComparisonOperator = "Like"
	Match             ComparisonOperator = "Match"
	Exists            ComparisonOperator = "Exists"
)

// AllOperators lists every operator in display order.
var AllOperators = []ComparisonOperator{
	Equals,
	NotEquals,
	GreaterThanEquals,
	GreaterThan,
	LessThan,
	LessThanEquals,
	Exists,
	Like,
	Match,
}

type operatorInfo struct {
	symbol string
	label  string
}

var operators = map[ComparisonOperator]operatorInfo{
	Equals:            {"=", "is equal to"},
	NotEquals:         {"!=", "is not equal to"},
	GreaterThanEquals: {">=", "is greater than equals to"},
	GreaterThan:       {">", "is greater than"},
	LessThan:          {"<", "is less than"},
	LessThanEquals:    {"<=", "is less than equals to"},
	Exists:            {"E", "exists"},
	Like:              {"regex", "is like"},
	Match:             {"contains", "matches"},
}

// Valid reports whether op is a known operator.
func (op ComparisonOperator) Valid() bool {
	_, ok := operators[op]
	return ok
}

// Symbol returns the token used inside FILTER expressions.
// Returns "" for unknown operators.
func (op ComparisonOperator) Symbol() string {
	return operators[op].symbol
}

// Label returns the human-readable label.
func (op ComparisonOperator) Label() string {
	return operators[op].label
}

// String returns the operator name.
func (op ComparisonOperator) String() string {
	return string(op)
}

// ParseComparisonOperator accepts an operator name ("LessThan") or its
// symbol ("<").
func ParseComparisonOperator(s string) (ComparisonOperator, error) {
	if op := ComparisonOperator(s); op.Valid() {
		return op, nil
	}
	for _, op := range AllOperators {
		if operators[op].symbol == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown comparison operator %q", s)
}
