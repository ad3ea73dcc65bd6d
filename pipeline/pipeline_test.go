package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/kbukum/tabkit/errors"
)

type student struct {
	name    string
	marks   int
	subject string
}

var class = []student{
	{"Jake P.", 88, "Physics"},
	{"Maya K.", 72, "Chemistry"},
	{"Leo T.", 95, "Physics"},
	{"Zoe A.", 68, "Math"},
	{"Kai W.", 80, "Math"},
	{"Mia B.", 76, "Chemistry"},
}

func studentName(s student) string { return s.name }

func TestFromSlice_Collect(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{}))
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected non-nil empty slice, got %#v", got)
	}
}

func TestFromSlice_Rerunnable(t *testing.T) {
	p := Filter(FromSlice(class), func(s student) bool { return s.marks > 75 })
	first, _ := Collect(context.Background(), p)
	second, _ := Collect(context.Background(), p)
	if len(first) != 4 || len(second) != 4 {
		t.Errorf("expected 4 records on each run, got %d and %d", len(first), len(second))
	}
}

func TestMap(t *testing.T) {
	bonus := Map(FromSlice([]int{70, 80}), func(_ context.Context, n int) (int, error) {
		return n + 5, nil
	})
	got, err := Collect(context.Background(), bonus)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{75, 85}) {
		t.Errorf("got %v, want [75 85]", got)
	}
}

func TestMap_Error(t *testing.T) {
	fail := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("bad value")
		}
		return n, nil
	})
	got, err := Collect(context.Background(), fail)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1] before error, got %v", got)
	}
}

func TestProject(t *testing.T) {
	got, err := Collect(context.Background(), Project(FromSlice(class[:2]), studentName))
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"Jake P.", "Maya K."}) {
		t.Errorf("got %v", got)
	}
}

func TestFlatMap(t *testing.T) {
	expanded := FlatMap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (Iterator[int], error) {
		return &sliceIter[int]{items: []int{n, n * 10}}, nil
	})
	got, err := Collect(context.Background(), expanded)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 10, 2, 20, 3, 30}) {
		t.Errorf("got %v", got)
	}
}

func TestFlatMap_EmptyInner(t *testing.T) {
	expanded := FlatMap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (Iterator[int], error) {
		if n == 2 {
			return &sliceIter[int]{items: nil}, nil
		}
		return &sliceIter[int]{items: []int{n}}, nil
	})
	got, err := Collect(context.Background(), expanded)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 3}) {
		t.Errorf("got %v, want [1 3]", got)
	}
}

func TestFilter(t *testing.T) {
	above := Filter(FromSlice(class), func(s student) bool { return s.marks > 75 })
	got, err := Collect(context.Background(), Project(above, studentName))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Jake P.", "Leo T.", "Kai W.", "Mia B."}
	if !strSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	pred := func(s student) bool { return s.subject != "Math" }
	once, _ := Collect(context.Background(), Filter(FromSlice(class), pred))
	twice, _ := Collect(context.Background(), Filter(Filter(FromSlice(class), pred), pred))
	if len(once) != len(twice) {
		t.Fatalf("lengths differ: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("index %d: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestFilter_None(t *testing.T) {
	none := Filter(FromSlice(class), func(s student) bool { return s.marks > 100 })
	got, err := Collect(context.Background(), none)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestTap(t *testing.T) {
	var tapped []int
	observed := Tap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		tapped = append(tapped, n)
		return nil
	})
	got, err := Collect(context.Background(), observed)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("values should pass through unchanged, got %v", got)
	}
	if !intSliceEqual(tapped, []int{1, 2, 3}) {
		t.Errorf("tap should see all values, got %v", tapped)
	}
}

func TestTap_Error(t *testing.T) {
	failing := Tap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		if n == 2 {
			return errors.New("tap failed")
		}
		return nil
	})
	_, err := Collect(context.Background(), failing)
	if err == nil || !strings.Contains(err.Error(), "tap failed") {
		t.Errorf("expected tap error, got %v", err)
	}
}

func TestObserve(t *testing.T) {
	calls := 0
	var seen int
	p := Observe(Filter(FromSlice(class), func(s student) bool { return s.marks > 75 }),
		func(_ context.Context, n int, err error) {
			calls++
			seen = n
			if err != nil {
				t.Errorf("unexpected error %v", err)
			}
		})
	if _, err := Collect(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("done called %d times, want 1", calls)
	}
	if seen != 4 {
		t.Errorf("n = %d, want 4", seen)
	}
}

func TestObserve_Error(t *testing.T) {
	var gotErr error
	failing := Map(FromSlice([]int{1, 2}), func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("boom")
		}
		return n, nil
	})
	p := Observe(failing, func(_ context.Context, n int, err error) {
		gotErr = err
		if n != 1 {
			t.Errorf("n = %d, want 1", n)
		}
	})
	_, _ = Collect(context.Background(), p)
	if gotErr == nil {
		t.Error("expected done to receive the error")
	}
}

func TestObserve_EarlyClose(t *testing.T) {
	calls := 0
	p := Observe(FromSlice([]int{1, 2, 3}), func(context.Context, int, error) { calls++ })
	ctx := context.Background()
	iter := p.Iter(ctx)
	_, _, _ = iter.Next(ctx)
	_ = iter.Close()
	_ = iter.Close()
	if calls != 1 {
		t.Errorf("done called %d times, want 1", calls)
	}
}

func TestReduce(t *testing.T) {
	total := Reduce(FromSlice(class), 0, func(acc int, s student) int { return acc + s.marks })
	got, err := Collect(context.Background(), total)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 479 {
		t.Errorf("expected [479], got %v", got)
	}
}

func TestReduce_Empty(t *testing.T) {
	sum := Reduce(FromSlice([]int{}), 42, func(acc, n int) int { return acc + n })
	got, err := Collect(context.Background(), sum)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("expected [42] (initial value), got %v", got)
	}
}

func TestConcat(t *testing.T) {
	combined := Concat(FromSlice([]int{1, 2}), FromSlice([]int{3, 4}), FromSlice([]int{5}))
	got, err := Collect(context.Background(), combined)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("got %v", got)
	}
}

func TestBuffer(t *testing.T) {
	got, err := Collect(context.Background(), Buffer(FromSlice([]int{1, 2, 3, 4, 5}), 3))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("got %v", got)
	}
}

func TestParallel_PreservesOrder(t *testing.T) {
	in := make([]int, 200)
	for i := range in {
		in[i] = i
	}
	squared := Parallel(FromSlice(in), 8, func(_ context.Context, n int) (int, error) {
		return n * n, nil
	})
	got, err := Collect(context.Background(), squared)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(in) {
		t.Fatalf("got %d values, want %d", len(got), len(in))
	}
	for i, v := range got {
		if v != i*i {
			t.Fatalf("index %d: got %d, want %d", i, v, i*i)
		}
	}
}

func TestParallel_Error(t *testing.T) {
	failing := Parallel(FromSlice([]int{1, 2, 3, 4, 5}), 2, func(_ context.Context, n int) (int, error) {
		if n == 3 {
			return 0, errors.New("worker failed")
		}
		return n, nil
	})
	_, err := Collect(context.Background(), failing)
	if err == nil {
		t.Fatal("expected error from parallel worker")
	}
}

func TestParallel_Empty(t *testing.T) {
	got, err := Collect(context.Background(), Parallel(FromSlice([]int{}), 4, func(_ context.Context, n int) (int, error) {
		return n, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestCollect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, FromSlice([]int{1, 2, 3}))
	if !apperrors.IsCode(err, apperrors.ErrCodeCancelled) {
		t.Fatalf("expected CANCELLED, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("expected cause to be context.Canceled")
	}
}

func TestDrain_Run(t *testing.T) {
	var collected []int
	r := Drain(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		collected = append(collected, n)
		return nil
	})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(collected, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", collected)
	}
}

func TestForEach(t *testing.T) {
	var sum int
	err := ForEach(context.Background(), FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		sum += n
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

func TestIter(t *testing.T) {
	ctx := context.Background()
	iter := FromSlice([]int{1, 2}).Iter(ctx)
	defer iter.Close()

	v1, ok, err := iter.Next(ctx)
	if err != nil || !ok || v1 != 1 {
		t.Errorf("first Next: val=%d ok=%v err=%v", v1, ok, err)
	}
	v2, ok, err := iter.Next(ctx)
	if err != nil || !ok || v2 != 2 {
		t.Errorf("second Next: val=%d ok=%v err=%v", v2, ok, err)
	}
	_, ok, err = iter.Next(ctx)
	if err != nil || ok {
		t.Errorf("third Next should be exhausted: ok=%v err=%v", ok, err)
	}
}

func TestChained_Pipeline(t *testing.T) {
	// filter -> map -> tap -> reduce
	var tapped []string
	p := Filter(FromSlice(class), func(s student) bool { return s.subject == "Physics" })
	labels := Map(p, func(_ context.Context, s student) (string, error) {
		return fmt.Sprintf("%s=%d", s.name, s.marks), nil
	})
	observed := Tap(labels, func(_ context.Context, s string) error {
		tapped = append(tapped, s)
		return nil
	})
	joined := Reduce(observed, "", func(acc, s string) string {
		if acc == "" {
			return s
		}
		return acc + "," + s
	})

	got, err := Collect(context.Background(), joined)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "Jake P.=88,Leo T.=95" {
		t.Errorf("got %v", got)
	}
	if len(tapped) != 2 {
		t.Errorf("tapped = %v", tapped)
	}
}

// --- helpers ---

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func strSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
