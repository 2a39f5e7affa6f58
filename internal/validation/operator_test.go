package validation

import (
	"errors"
	"testing"
)

func TestValidateOperator(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		wantErr  bool
	}{
		// Valid operators - comparison
		{"equals", "=", false},
		{"not equals", "!=", false},
		{"not equals alt", "<>", false},
		{"less than", "<", false},
		{"greater than", ">", false},
		{"less or equal", "<=", false},
		{"greater or equal", ">=", false},

		// Valid operators - pattern
		{"like", "LIKE", false},
		{"like lowercase", "like", false},
		{"like mixed", "Like", false},
		{"not like", "NOT LIKE", false},
		{"not like lowercase", "not like", false},
		{"ilike", "ilike", false},
		{"regexp", "REGEXP", false},
		{"not regexp", "not regexp", false},
		{"rlike", "rlike", false},

		// Valid operators - posix
		{"posix match", "~", false},
		{"posix imatch", "~*", false},
		{"posix not match", "!~", false},
		{"posix not imatch", "!~*", false},

		// Valid operators - null
		{"is", "IS", false},
		{"is not", "IS NOT", false},
		{"is lowercase", "is", false},
		{"is not lowercase", "is not", false},

		// Valid operators - set
		{"in", "IN", false},
		{"not in", "NOT IN", false},
		{"between", "BETWEEN", false},
		{"not between", "NOT BETWEEN", false},

		// Valid with whitespace
		{"equals with space", " = ", false},
		{"like with space", "  like  ", false},
		{"not like double space", "not   like", false},

		// Invalid operators
		{"empty", "", true},
		{"invalid word", "EQUALS", true},
		{"sql injection", "= OR 1=1", true},
		{"stacked statement", "1; DROP TABLE users;--", true},
		{"semicolon", ";", true},
		{"drop", "DROP", true},
		{"union", "UNION", true},
		{"comment", "--", true},
		{"random text", "foobar", true},
		{"partial like", "LIK", true},
		{"partial in", "I", true},
		{"null safe equals", "<=>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateOperator(tt.operator)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOperator(%q) error = %v, wantErr %v", tt.operator, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOperator_Normalizes(t *testing.T) {
	tests := []struct {
		name     string
		operator string
		want     string
		wantErr  bool
	}{
		{"lowercase like", "like", "LIKE", false},
		{"padded like", "  like  ", "LIKE", false},
		{"mixed case", "Like", "LIKE", false},
		{"not in", "not in", "NOT IN", false},
		{"collapsed spaces", "is   not", "IS NOT", false},
		{"symbol", ">=", ">=", false},
		{"invalid", "EQUALS", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := ValidateOperator(tt.operator)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOperator(%q) error = %v, wantErr %v", tt.operator, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := op.String(); got != tt.want {
				t.Errorf("ValidateOperator(%q).String() = %q, want %q", tt.operator, got, tt.want)
			}
		})
	}
}

func TestOperatorError(t *testing.T) {
	_, err := ValidateOperator("1; DROP TABLE users;--")
	if !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("errors.Is(%v, ErrInvalidOperator) = false", err)
	}

	var opErr *OperatorError
	if !errors.As(err, &opErr) {
		t.Fatalf("errors.As(%v, *OperatorError) = false", err)
	}
	if opErr.Operator != "1; DROP TABLE users;--" {
		t.Errorf("OperatorError.Operator = %q, want the rejected input", opErr.Operator)
	}
}

func TestOperatorClassification(t *testing.T) {
	tests := []struct {
		op        string
		nullCheck bool
		list      bool
		rng       bool
		negated   bool
	}{
		{"=", false, false, false, false},
		{"is", true, false, false, false},
		{"is not", true, false, false, true},
		{"in", false, true, false, false},
		{"not in", false, true, false, true},
		{"between", false, false, true, false},
		{"not between", false, false, true, true},
		{"not like", false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			o, err := ValidateOperator(tt.op)
			if err != nil {
				t.Fatalf("ValidateOperator(%q) error = %v", tt.op, err)
			}
			if o.IsNullCheck() != tt.nullCheck || o.IsList() != tt.list || o.IsRange() != tt.rng || o.Negated() != tt.negated {
				t.Errorf("%q classification = (%v %v %v %v), want (%v %v %v %v)", tt.op,
					o.IsNullCheck(), o.IsList(), o.IsRange(), o.Negated(),
					tt.nullCheck, tt.list, tt.rng, tt.negated)
			}
		})
	}
}

func TestZeroOperatorRendersEqual(t *testing.T) {
	var o Operator
	if o.String() != "=" {
		t.Errorf("zero Operator.String() = %q, want %q", o.String(), "=")
	}
}

func TestAllowedOperatorsSorted(t *testing.T) {
	ops := AllowedOperators()
	if len(ops) != len(allowedOperators) {
		t.Fatalf("AllowedOperators() returned %d entries, want %d", len(ops), len(allowedOperators))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1] > ops[i] {
			t.Errorf("AllowedOperators() not sorted at %d: %q > %q", i, ops[i-1], ops[i])
		}
	}
}
