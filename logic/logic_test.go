package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/verdict"
	"github.com/zoobzio/verdict/expect"
	"github.com/zoobzio/verdict/logic"
	vt "github.com/zoobzio/verdict/testing"
)

func TestAnd(t *testing.T) {
	t.Run("all pass", func(t *testing.T) {
		check := logic.And(expect.Type[int](), expect.Not(0))
		assert.Nil(t, check(5))
	})

	t.Run("only failures are aggregated", func(t *testing.T) {
		check := logic.And(expect.Type[int](), expect.Value(1), expect.Not(5), expect.Any(2, 3))

		ce := check(5)
		require.NotNil(t, ce)
		assert.ErrorIs(t, ce, verdict.ErrAll)
		assert.Equal(t, 4, ce.Expected())
		assert.Equal(t, 1, ce.Received())

		children := ce.Errs()
		require.Len(t, children, 3)
		assert.ErrorIs(t, children[0], verdict.ErrMismatch)
		assert.ErrorIs(t, children[1], verdict.ErrExcluded)
		assert.ErrorIs(t, children[2], verdict.ErrNoMatch)
	})

	t.Run("children carry no locator", func(t *testing.T) {
		ce := logic.And(expect.Value(1))(2)
		require.NotNil(t, ce)
		_, hasKey := ce.Errs()[0].Property()
		_, hasIndex := ce.Errs()[0].Index()
		assert.False(t, hasKey)
		assert.False(t, hasIndex)
	})

	t.Run("no short circuit", func(t *testing.T) {
		calls := 0
		counting := func(value any) *verdict.CheckErr {
			calls++
			return verdict.Fail("x", value)
		}
		logic.And(counting, counting, counting)(1)
		assert.Equal(t, 3, calls)
	})

	t.Run("misuse panics", func(t *testing.T) {
		cfg := vt.RequireConfigPanic(t, verdict.ErrNoChecks, func() { logic.And() })
		assert.Equal(t, "logic.And", cfg.Op)
		vt.RequireConfigPanic(t, verdict.ErrInvalidArgument, func() { logic.And(expect.Value(1), nil) })
	})
}

func TestOr(t *testing.T) {
	check := logic.Or(expect.Type[string](), expect.Value(nil))

	t.Run("one pass is enough", func(t *testing.T) {
		assert.Nil(t, check("x"))
		assert.Nil(t, check(nil))
	})

	t.Run("all fail", func(t *testing.T) {
		ce := check(3)
		require.NotNil(t, ce)
		assert.ErrorIs(t, ce, verdict.ErrAny)
		assert.Equal(t, 1, ce.Expected())
		assert.Equal(t, 0, ce.Received())

		children := ce.Errs()
		require.Len(t, children, 2)
		assert.ErrorIs(t, children[0], verdict.ErrType)
		assert.ErrorIs(t, children[1], verdict.ErrMismatch)
	})

	t.Run("misuse panics", func(t *testing.T) {
		cfg := vt.RequireConfigPanic(t, verdict.ErrNoChecks, func() { logic.Or() })
		assert.Equal(t, "logic.Or", cfg.Op)
		vt.RequireConfigPanic(t, verdict.ErrInvalidArgument, func() { logic.Or(nil) })
	})
}

func TestCombinedWithProperties(t *testing.T) {
	role := logic.Or(expect.Any("admin", "owner"), expect.Value(nil))
	check := expect.Properties(map[string]verdict.Check{
		"role": role,
		"age":  logic.And(expect.Type[int](), expect.Func("adult", func(v any) bool { n, _ := v.(int); return n >= 18 })),
	})

	vt.RequireValid(t, verdict.Run(map[string]any{"role": "admin", "age": 30}, check))
	vt.RequireValid(t, verdict.Run(map[string]any{"age": 18}, check))

	errs := vt.RequireFailures(t, verdict.Run(map[string]any{"role": "guest", "age": 12}, check), 1)
	require.Len(t, errs[0].Errs(), 2)

	age := errs[0].Errs()[0]
	key, _ := age.Property()
	assert.Equal(t, "age", key)
	assert.ErrorIs(t, age, verdict.ErrAll)
	assert.Equal(t, 2, age.Expected())
	assert.Equal(t, 1, age.Received())
}

func TestChecksAreCopied(t *testing.T) {
	checks := []verdict.Check{expect.Value(1)}
	check := logic.And(checks...)
	checks[0] = expect.Value(2)

	assert.Nil(t, check(1))
}
