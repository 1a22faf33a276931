package commands

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleParseOperation() {
	for _, token := range []string{"+", "-", "*", "/", "%"} {
		op, ok := ParseOperation(token)
		fmt.Println(token, op, ok)
	}

	// Output: + + true
	// - - true
	// * * true
	// / / true
	// % + false
}

func TestParseOperation(t *testing.T) {
	cases := []struct {
		token    string
		expected Operation
		ok       bool
	}{
		{"+", Add, true},
		{"-", Subtract, true},
		{"*", Multiply, true},
		{"/", Divide, true},
		{" +", 0, false},
		{"x", 0, false},
		{"", 0, false},
		{"//", 0, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.token), func(t *testing.T) {
			op, ok := ParseOperation(tc.token)

			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, op)
				assert.Equal(t, tc.token, op.String())
			}
		})
	}
}

func TestOperation_Apply(t *testing.T) {
	cases := []struct {
		a, b     int64
		op       Operation
		expected int64
	}{
		{3, 4, Add, 7},
		{5, 9, Subtract, -4},
		{-3, 4, Multiply, -12},
		{10, 3, Divide, 3},
		{-10, 3, Divide, -3},
		{10, -3, Divide, -3},
		{math.MaxInt64, 1, Add, math.MinInt64},
		{math.MinInt64, -1, Divide, math.MinInt64},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d%v%d", tc.a, tc.op, tc.b), func(t *testing.T) {
			actual, err := tc.op.Apply(tc.a, tc.b)

			assert.Nil(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestOperation_ApplyDivideByZero(t *testing.T) {
	_, err := Divide.Apply(1, 0)

	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestOperation_unknown(t *testing.T) {
	op := Operation(42)

	assert.Equal(t, "Operation(42)", op.String())
	_, err := op.Apply(1, 1)
	assert.Error(t, err)
}
