package app

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"time"

	"github.com/agbru/mpkernel/internal/cli"
	"github.com/agbru/mpkernel/internal/config"
	apperrors "github.com/agbru/mpkernel/internal/errors"
	"github.com/agbru/mpkernel/internal/natural"
)

// maxShift bounds shift distances so a typo cannot request gigabytes.
const maxShift = 1 << 30

// Evaluate parses the operands of cfg, applies cfg.Op and renders the
// outputs in cfg.Base.
func Evaluate(cfg config.AppConfig) (cli.ComputeResult, error) {
	a, err := parseOperand("a", cfg.A, cfg.Base)
	if err != nil {
		return cli.ComputeResult{}, err
	}
	res := cli.ComputeResult{Op: cfg.Op, WordBits: bits.UintSize, OperandWords: []int{len(a)}}

	var b natural.Nat
	var shift uint
	switch cfg.Op {
	case config.OpSqr:
	case config.OpShl, config.OpShr:
		if shift, err = parseShift(cfg.B); err != nil {
			return cli.ComputeResult{}, err
		}
	default:
		if b, err = parseOperand("b", cfg.B, cfg.Base); err != nil {
			return cli.ComputeResult{}, err
		}
		res.OperandWords = append(res.OperandWords, len(b))
	}

	text := func(x natural.Nat) string { return x.Text(cfg.Base) }
	start := time.Now()
	switch cfg.Op {
	case config.OpAdd:
		res.Values = []cli.Value{{Label: "Sum", Text: text(natural.Add(a, b))}}
	case config.OpSub:
		d, err := natural.Sub(a, b)
		if err != nil {
			return cli.ComputeResult{}, apperrors.CalculationError{Op: cfg.Op, Cause: err}
		}
		res.Values = []cli.Value{{Label: "Difference", Text: text(d)}}
	case config.OpMul:
		res.Values = []cli.Value{{Label: "Product", Text: text(natural.Mul(a, b))}}
	case config.OpSqr:
		res.Values = []cli.Value{{Label: "Square", Text: text(natural.Sqr(a))}}
	case config.OpDiv, config.OpMod:
		q, r, err := natural.QuoRem(a, b)
		if err != nil {
			return cli.ComputeResult{}, apperrors.CalculationError{Op: cfg.Op, Cause: err}
		}
		if cfg.Op == config.OpMod {
			res.Values = []cli.Value{{Label: "Remainder", Text: text(r)}}
		} else {
			res.Values = []cli.Value{{Label: "Quotient", Text: text(q)}, {Label: "Remainder", Text: text(r)}}
		}
	case config.OpGCD:
		g, x, y := natural.Bezout(a, b)
		res.Values = []cli.Value{
			{Label: "GCD", Text: text(g)},
			{Label: "Coefficient of a", Text: x.Text(cfg.Base)},
			{Label: "Coefficient of b", Text: y.Text(cfg.Base)},
		}
	case config.OpShl:
		res.Values = []cli.Value{{Label: "Result", Text: text(natural.Lsh(a, shift))}}
	case config.OpShr:
		res.Values = []cli.Value{{Label: "Result", Text: text(natural.Rsh(a, shift))}}
	default:
		return cli.ComputeResult{}, apperrors.NewConfigError("unrecognized operation: '%s'", cfg.Op)
	}
	res.Duration = time.Since(start)
	return res, nil
}

func parseOperand(field, s string, base int) (natural.Nat, error) {
	x, err := natural.ParseNat(s, base)
	if err != nil {
		msg := fmt.Sprintf("not a non-negative base-%d integer: %q", base, s)
		if !errors.Is(err, natural.ErrSyntax) {
			msg = err.Error()
		}
		return nil, apperrors.ValidationError{Field: field, Message: msg}
	}
	return x, nil
}

func parseShift(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n > maxShift {
		return 0, apperrors.ValidationError{Field: "b", Message: fmt.Sprintf("shift distance must be a decimal integer up to %d: %q", maxShift, s)}
	}
	return uint(n), nil
}
