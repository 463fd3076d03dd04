package arith

import (
	"context"
	"strconv"

	"gocalc/internal/core"
)

const (
	msgInvalidInput = "Error: Invalid input"
	msgDivideByZero = "Error: Division by zero"
	msgNeedsTwo     = "Error: Division requires at least two numbers"
)

// parseAll переводит токены в числа; любой невалидный токен отменяет весь вызов.
func parseAll(args []string) ([]float64, bool) {
	nums := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, false
		}
		nums = append(nums, v)
	}
	return nums, true
}

// Add суммирует аргументы; пустой ввод дает 0.
type Add struct{}

func (Add) Execute(ctx context.Context, args []string) core.Result {
	nums, ok := parseAll(args)
	if !ok {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	var sum float64
	for _, v := range nums {
		sum += v
	}
	return core.Ok(sum)
}

// Subtract вычитает из первого аргумента сумму остальных; пустой ввод — ошибка.
// Единственный аргумент возвращается как есть: проверка срабатывает только на пустом вводе.
type Subtract struct{}

func (Subtract) Execute(ctx context.Context, args []string) core.Result {
	if len(args) == 0 {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	nums, ok := parseAll(args)
	if !ok {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	res := nums[0]
	for _, v := range nums[1:] {
		res -= v
	}
	return core.Ok(res)
}

// Multiply перемножает аргументы; пустой ввод дает 1.
type Multiply struct{}

func (Multiply) Execute(ctx context.Context, args []string) core.Result {
	nums, ok := parseAll(args)
	if !ok {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	res := 1.0
	for _, v := range nums {
		res *= v
	}
	return core.Ok(res)
}

// Divide делит слева направо; нулевой делитель немедленно прерывает вычисление.
type Divide struct{}

func (Divide) Execute(ctx context.Context, args []string) core.Result {
	if len(args) == 0 {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	nums, ok := parseAll(args)
	if !ok {
		return core.Fail(core.KindInvalidInput, msgInvalidInput)
	}
	if len(nums) == 1 {
		return core.Fail(core.KindInsufficientOperands, msgNeedsTwo)
	}
	res := nums[0]
	for _, v := range nums[1:] {
		if v == 0 {
			return core.Fail(core.KindDivisionByZero, msgDivideByZero)
		}
		res /= v
	}
	return core.Ok(res)
}

// Commands возвращает встроенный набор операций под фиксированными именами.
func Commands() map[string]core.Operation {
	return map[string]core.Operation{
		"add":      Add{},
		"subtract": Subtract{},
		"multiply": Multiply{},
		"divide":   Divide{},
	}
}
