package core

import (
	"context"
	"math"
	"strconv"
	"strings"
)

// ErrorKind классифицирует пользовательскую ошибку операции.
type ErrorKind int

const (
	KindInvalidInput ErrorKind = iota
	KindDivisionByZero
	KindInsufficientOperands
	KindInternal
)

// OpError описывает ошибку операции с видом и текстом для пользователя.
type OpError struct {
	Kind    ErrorKind
	Message string
}

func (e *OpError) Error() string { return e.Message }

// Result — результат операции: число либо ошибка.
type Result struct {
	Value float64
	Err   *OpError
}

// Ok возвращает успешный результат.
func Ok(v float64) Result { return Result{Value: v} }

// Fail возвращает результат с ошибкой указанного вида.
func Fail(kind ErrorKind, msg string) Result {
	return Result{Err: &OpError{Kind: kind, Message: msg}}
}

// String рендерит результат для вывода пользователю: число или текст ошибки.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Message
	}
	return FormatValue(r.Value)
}

// FormatValue выводит число в десятичном виде; целые значения получают ".0".
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Operation определяет контракт именованной способности: строки-аргументы -> Result.
type Operation interface {
	Execute(ctx context.Context, args []string) Result
}
