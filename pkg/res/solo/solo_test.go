package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/res3/pkg/res"
)

func TestMatch_InvokesExactlyOneHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Match(ctx, res.Success(4),
		func(ctx context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
		func(ctx context.Context, e error) string { return "err" })
	if got != "ok:4" {
		t.Fatalf("expected 'ok:4', got %q", got)
	}

	got = Match(ctx, res.Fail[int](errors.New("boom")),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, e error) string { return "err:" + e.Error() })
	if got != "err:boom" {
		t.Fatalf("expected 'err:boom', got %q", got)
	}
}

func TestThen_BindOnOk(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Then(ctx, res.Success(3), func(ctx context.Context, v int) res.Result[string, error] {
		return res.Success(strconv.Itoa(v * 2))
	})
	if v, ok := out.TryValue(); !ok || v != "6" {
		t.Fatalf("expected Ok('6'), got ok=%v v=%v err=%v", ok, v, out)
	}
}

func TestThen_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	called := false
	out := Then(ctx, res.Fail[int](boom), func(ctx context.Context, v int) res.Result[string, error] {
		called = true
		return res.Success("never")
	})

	if called {
		t.Fatalf("next must not be invoked on Err input")
	}
	if e, ok := out.TryErr(); !ok || e != boom {
		t.Fatalf("expected the original error re-typed, got ok=%v e=%v", ok, e)
	}
}

func TestThenErr_RecoverOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenErr(ctx, res.Fail[int](errors.New("recoverable")),
		func(ctx context.Context, e error) res.Result[int, error] {
			return res.Success(0)
		})
	if v, ok := out.TryValue(); !ok || v != 0 {
		t.Fatalf("expected recovery to Ok(0), got ok=%v v=%v", ok, v)
	}
}

func TestThenErr_PassesOkThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := ThenErr(ctx, res.Success(8), func(ctx context.Context, e error) res.Result[int, error] {
		called = true
		return res.Fail[int](e)
	})
	if called {
		t.Fatalf("next must not be invoked on Ok input")
	}
	if v, _ := out.TryValue(); v != 8 {
		t.Fatalf("expected Ok(8) untouched, got %v", v)
	}
}

func TestMap_FunctorComposition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := func(ctx context.Context, v int) int { return v + 1 }
	g := func(ctx context.Context, v int) int { return v * 3 }

	stepwise := Map(ctx, Map(ctx, res.Success(2), f), g)
	composed := Map(ctx, res.Success(2), func(ctx context.Context, v int) int {
		return g(ctx, f(ctx, v))
	})

	if !stepwise.Equal(composed) {
		t.Fatalf("map(f) then map(g) must equal map(g(f(x)))")
	}
	if v, _ := stepwise.TryValue(); v != 9 {
		t.Fatalf("expected 9, got %v", v)
	}
}

func TestMap_PassesErrThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("unchanged")

	out := Map(ctx, res.Fail[int](boom), func(ctx context.Context, v int) int { return v })
	if e, ok := out.TryErr(); !ok || e != boom {
		t.Fatalf("expected error untouched, got ok=%v e=%v", ok, e)
	}
}

func TestMapErr_LeavesOkUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := MapErr(ctx, res.Success(5), func(ctx context.Context, e error) error {
		return errors.New("wrapped")
	})
	if !out.Equal(res.Success(5)) {
		t.Fatalf("MapErr must leave Ok untouched, got %v", out)
	}
}

func TestMapErr_TransformsErrorType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := MapErr(ctx, res.Fail[int](errors.New("42")),
		func(ctx context.Context, e error) string { return "code:" + e.Error() })
	if e, ok := out.TryErr(); !ok || e != "code:42" {
		t.Fatalf("expected re-typed error payload, got ok=%v e=%v", ok, e)
	}
}

func TestTry_SuccessAndErrorChannels(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, res.Success("12"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if v, ok := out.TryValue(); !ok || v != 12 {
		t.Fatalf("expected Ok(12), got ok=%v v=%v", ok, v)
	}

	out = Try(ctx, res.Success("nan"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if !out.IsErr() {
		t.Fatalf("expected Err for unparsable input")
	}
}

func TestTry_ShortCircuitOnErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Try(ctx, res.Fail[string](errors.New("upstream")),
		func(ctx context.Context, s string) (int, error) {
			called = true
			return 0, nil
		})
	if called {
		t.Fatalf("onTryExecute must not run on Err input")
	}
	if e, _ := out.TryErr(); e.Error() != "upstream" {
		t.Fatalf("expected 'upstream', got %v", e)
	}
}

func TestCatch_NormalReturn(t *testing.T) {
	t.Parallel()

	out := Catch(func() int { return 1 })
	if !out.Equal(res.Success(1)) {
		t.Fatalf("expected Ok(1), got %v", out)
	}
}

func TestCatch_PanicBecomesErr(t *testing.T) {
	t.Parallel()
	boom := errors.New("raised")

	out := Catch(func() int { panic(boom) })
	if e, ok := out.TryErr(); !ok || e != boom {
		t.Fatalf("expected the raised object preserved as payload, got ok=%v e=%v", ok, e)
	}
}

func TestCatch_NonErrorPanic(t *testing.T) {
	t.Parallel()

	out := Catch(func() string { panic("plain text") })
	if e, ok := out.TryErr(); !ok || e.Error() != "plain text" {
		t.Fatalf("expected captured panic text, got ok=%v e=%v", ok, e)
	}
}

func TestCatch_CancellationPropagates(t *testing.T) {
	t.Parallel()

	defer func() {
		p := recover()
		if p == nil {
			t.Fatalf("cancellation must not be captured as a value-level error")
		}
		if err, ok := p.(error); !ok || !res.IsCancellation(err) {
			t.Fatalf("expected the cancellation signal to re-raise, got %v", p)
		}
	}()
	Catch(func() int { panic(context.Canceled) })
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	nonEmpty := func(ctx context.Context, s string) (bool, string) {
		if s == "" {
			return false, "empty"
		}
		return true, ""
	}

	if out := Validate(ctx, res.Success("x"), nonEmpty); !out.IsOk() {
		t.Fatalf("expected valid input to stay Ok")
	}
	if out := Validate(ctx, res.Success(""), nonEmpty); !out.IsErr() || out.MustErr().Error() != "empty" {
		t.Fatalf("expected failure 'empty', got %v", out)
	}
}

func TestTee_RunsOnOkOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	Tee(ctx, res.Success(5), func(ctx context.Context, v int) { seen = v })
	if seen != 5 {
		t.Fatalf("expected side effect with 5, got %d", seen)
	}

	seen = 0
	Tee(ctx, res.Fail[int](errors.New("skip")), func(ctx context.Context, v int) { seen = v })
	if seen != 0 {
		t.Fatalf("side effect must not run on Err")
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	okCalled, errCalled := false, false
	DoubleTee(ctx, res.Fail[int](errors.New("e")),
		func(ctx context.Context, v int) { okCalled = true },
		func(ctx context.Context, e error) { errCalled = true })
	if okCalled || !errCalled {
		t.Fatalf("expected error side effect only; ok=%v err=%v", okCalled, errCalled)
	}
}
