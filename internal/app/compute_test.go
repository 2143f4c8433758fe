package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/mpkernel/internal/cli"
	"github.com/agbru/mpkernel/internal/config"
	apperrors "github.com/agbru/mpkernel/internal/errors"
	"github.com/agbru/mpkernel/internal/natural"
)

func texts(res cli.ComputeResult) []string {
	out := make([]string, len(res.Values))
	for i, v := range res.Values {
		out[i] = v.Text
	}
	return out
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   string
		a, b string
		base int
		want []string
	}{
		{"add carries into new word", config.OpAdd, "18446744073709551615", "1", 10, []string{"18446744073709551616"}},
		{"sub", config.OpSub, "1000", "1", 10, []string{"999"}},
		{"mul hex", config.OpMul, "ffffffffffffffff", "ffffffffffffffff", 16, []string{"fffffffffffffffe0000000000000001"}},
		{"sqr ignores b", config.OpSqr, "12345", "", 10, []string{"152399025"}},
		{"div", config.OpDiv, "8589934591", "3", 10, []string{"2863311531", "0"}},
		{"mod", config.OpMod, "100", "7", 10, []string{"2"}},
		{"gcd", config.OpGCD, "240", "46", 10, []string{"2", "-9", "47"}},
		{"shl", config.OpShl, "1", "100", 10, []string{"1267650600228229401496703205376"}},
		{"shr", config.OpShr, "1267650600228229401496703205376", "99", 10, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.AppConfig{Op: tt.op, A: tt.a, B: tt.b, Base: tt.base}
			res, err := Evaluate(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, texts(res))
			assert.Equal(t, tt.op, res.Op)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	t.Run("underflow", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(config.AppConfig{Op: config.OpSub, A: "1", B: "2", Base: 10})
		var calcErr apperrors.CalculationError
		require.ErrorAs(t, err, &calcErr)
		assert.ErrorIs(t, err, natural.ErrUnderflow)
		assert.Equal(t, apperrors.ExitErrorGeneric, apperrors.ExitCodeFor(err))
	})

	t.Run("division by zero", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(config.AppConfig{Op: config.OpDiv, A: "1", B: "0", Base: 10})
		assert.ErrorIs(t, err, natural.ErrDivisionByZero)
	})

	t.Run("bad operand", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(config.AppConfig{Op: config.OpAdd, A: "12x", B: "1", Base: 10})
		var valErr apperrors.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "a", valErr.Field)
		assert.Equal(t, apperrors.ExitErrorConfig, apperrors.ExitCodeFor(err))
	})

	t.Run("shift out of range", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(config.AppConfig{Op: config.OpShl, A: "1", B: "99999999999", Base: 10})
		var valErr apperrors.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "b", valErr.Field)
	})
}
