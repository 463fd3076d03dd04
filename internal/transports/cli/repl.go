package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gocalc/internal/core"
)

const (
	welcome  = "Welcome to the Command Pattern Calculator! Type 'menu' to see available commands, or 'exit' to quit."
	prompt   = "Enter command: "
	farewell = "Exiting calculator. Goodbye!"
	unknown  = "Invalid command. Type 'menu' to see available commands."
)

// REPL — интерактивный транспорт: одна строка за итерацию, один пользователь.
type REPL struct {
	registry *core.Registry
	log      *slog.Logger
	in       io.Reader
	out      io.Writer
}

// NewREPL создает REPL над реестром операций.
func NewREPL(registry *core.Registry, log *slog.Logger, in io.Reader, out io.Writer) *REPL {
	return &REPL{registry: registry, log: log, in: in, out: out}
}

// Run читает команды до exit, конца ввода или отмены контекста.
// Отмена контекста (например, по SIGINT) равносильна команде exit.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, welcome)

	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(r.in)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	for {
		fmt.Fprint(r.out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			r.exit("interrupt")
			return nil
		case line, ok := <-lines:
			if !ok {
				r.exit("eof")
				return nil
			}
			if r.handle(ctx, line) {
				return nil
			}
		}
	}
}

// handle обрабатывает одну строку; true означает завершение цикла.
func (r *REPL) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "exit":
		r.exit("command")
		return true
	case "menu":
		fmt.Fprintf(r.out, "Available commands: %s\n", strings.Join(r.registry.Names(), ", "))
		return false
	}

	op, ok := r.registry.Lookup(name)
	if !ok {
		fmt.Fprintln(r.out, unknown)
		return false
	}

	res := op.Execute(ctx, args)
	if res.Err != nil {
		r.log.Error("operation failed", "command", name, "args", args, "err", res.Err.Message)
	} else {
		r.log.Info("operation executed", "command", name, "args", args, "result", res.Value)
	}
	fmt.Fprintf(r.out, "Result: %s\n", res)
	return false
}

func (r *REPL) exit(reason string) {
	fmt.Fprintln(r.out, farewell)
	r.log.Info("calculator exited", "reason", reason)
}
