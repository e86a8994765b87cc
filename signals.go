package verdict

import (
	"context"
	"reflect"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for evaluation events.
var (
	SignalRunStart    = capitan.NewSignal("verdict.run.start", "Evaluation beginning")
	SignalRunComplete = capitan.NewSignal("verdict.run.complete", "Evaluation finished")
	SignalMustPanic   = capitan.NewSignal("verdict.must.panic", "Must raised accumulated failures")
)

// Keys for typed event data.
var (
	KeyValueType = capitan.NewStringKey("value_type")
	KeyChecks    = capitan.NewIntKey("checks")
	KeyFailures  = capitan.NewIntKey("failures")
	KeyDuration  = capitan.NewDurationKey("duration")
	KeyError     = capitan.NewErrorKey("error")
)

// emitRunStart emits an event when an evaluation begins.
func emitRunStart(ctx context.Context, typeName string, checks int) {
	capitan.Emit(ctx, SignalRunStart,
		KeyValueType.Field(typeName),
		KeyChecks.Field(checks),
	)
}

// emitRunComplete emits an event when an evaluation finishes.
// Invalid results are reported at error level.
func emitRunComplete(ctx context.Context, typeName string, checks, failures int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyValueType.Field(typeName),
		KeyChecks.Field(checks),
		KeyFailures.Field(failures),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRunComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRunComplete, fields...)
	}
}

// emitMustPanic emits an event right before Must panics.
func emitMustPanic(ctx context.Context, failures int, err error) {
	capitan.Error(ctx, SignalMustPanic,
		KeyFailures.Field(failures),
		KeyError.Field(err),
	)
}

func typeNameOf(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
