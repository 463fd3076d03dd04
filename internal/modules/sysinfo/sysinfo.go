package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"gocalc/internal/core"
)

const msgUnavailable = "Error: host metrics unavailable"

// Module предоставляет числовые метрики узла как операции калькулятора.
type Module struct{}

func (Module) Name() string { return "sysinfo" }

// Commands возвращает набор операций модуля; аргументы операции игнорируют.
func (Module) Commands() map[string]core.Operation {
	return map[string]core.Operation{
		"uptime": Uptime{},
		"mem":    MemUsed{},
		"load":   LoadAvg{},
	}
}

// Uptime возвращает аптайм узла в секундах.
type Uptime struct{}

func (Uptime) Execute(ctx context.Context, args []string) core.Result {
	up, err := host.UptimeWithContext(ctx)
	if err != nil {
		return core.Fail(core.KindInternal, msgUnavailable)
	}
	return core.Ok(float64(up))
}

// MemUsed возвращает долю занятой памяти в процентах.
type MemUsed struct{}

func (MemUsed) Execute(ctx context.Context, args []string) core.Result {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return core.Fail(core.KindInternal, msgUnavailable)
	}
	return core.Ok(vm.UsedPercent)
}

// LoadAvg возвращает минутную нагрузку узла.
type LoadAvg struct{}

func (LoadAvg) Execute(ctx context.Context, args []string) core.Result {
	ld, err := load.AvgWithContext(ctx)
	if err != nil {
		return core.Fail(core.KindInternal, msgUnavailable)
	}
	return core.Ok(ld.Load1)
}
