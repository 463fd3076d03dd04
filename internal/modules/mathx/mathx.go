package mathx

import (
	"context"
	"math"
	"strconv"

	"gocalc/internal/core"
)

const (
	msgInvalidInput = "Error: Invalid input"
	msgPowerNeeds   = "Error: Power requires exactly two numbers"
	msgModNeeds     = "Error: Modulo requires exactly two numbers"
	msgSqrtNeeds    = "Error: Square root requires exactly one number"
	msgDivideByZero = "Error: Division by zero"
)

// Module расширяет калькулятор дополнительными математическими операциями.
type Module struct{}

func (Module) Name() string { return "mathx" }

// Commands возвращает набор операций модуля.
func (Module) Commands() map[string]core.Operation {
	return map[string]core.Operation{
		"power": Power{},
		"mod":   Mod{},
		"sqrt":  Sqrt{},
	}
}

func parseTwo(args []string) (float64, float64, bool) {
	a, errA := strconv.ParseFloat(args[0], 64)
	b, errB := strconv.ParseFloat(args[1], 64)
	return a, b, errA == nil && errB == nil
}

// Power возводит первый аргумент в степень второго.
type Power struct{}

func (Power) Execute(ctx context.Context, args []string) core.Result {
	if len(args) != 2 {
		return core.Fail(core.KindInsufficientOperands, msgPowerNeeds)
	}
	a, b, ok := parseTwo(args)
	if !ok {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	return core.Ok(math.Pow(a, b))
}

// Mod возвращает остаток от деления первого аргумента на второй.
type Mod struct{}

func (Mod) Execute(ctx context.Context, args []string) core.Result {
	if len(args) != 2 {
		return core.Fail(core.KindInsufficientOperands, msgModNeeds)
	}
	a, b, ok := parseTwo(args)
	if !ok {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	if b == 0 {
		return core.Fail(core.KindDivisionByZero, msgDivideByZero)
	}
	return core.Ok(math.Mod(a, b))
}

// Sqrt возвращает квадратный корень единственного аргумента.
type Sqrt struct{}

func (Sqrt) Execute(ctx context.Context, args []string) core.Result {
	if len(args) != 1 {
		return core.Fail(core.KindInsufficientOperands, msgSqrtNeeds)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil || v < 0 {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	return core.Ok(math.Sqrt(v))
}
