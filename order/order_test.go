package order

import (
	"math"
	"slices"
	"testing"
)

type person struct {
	name string
	age  int
}

var (
	byAge  = By(func(p person) int { return p.age })
	byName = By(func(p person) string { return p.name })
)

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestBy(t *testing.T) {
	tests := []struct {
		name string
		a, b person
		want int
	}{
		{"less", person{"a", 22}, person{"b", 34}, -1},
		{"equal", person{"a", 34}, person{"b", 34}, 0},
		{"greater", person{"a", 41}, person{"b", 34}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sign(byAge(tc.a, tc.b)); got != tc.want {
				t.Errorf("byAge(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestThen_UsesSecondaryOnlyOnTie(t *testing.T) {
	c := byAge.Then(byName)
	if got := sign(c(person{"Zed", 22}, person{"Amy", 41})); got != -1 {
		t.Errorf("primary decides: got %d, want -1", got)
	}
	if got := sign(c(person{"Charlie", 34}, person{"Alice", 34})); got != 1 {
		t.Errorf("secondary breaks tie: got %d, want 1", got)
	}
	if got := c(person{"Alice", 34}, person{"Alice", 34}); got != 0 {
		t.Errorf("full tie: got %d, want 0", got)
	}
}

func TestThen_CompositionCorrectness(t *testing.T) {
	people := []person{{"Bob", 41}, {"Alice", 34}, {"Charlie", 34}}
	slices.SortStableFunc(people, Then(byAge, byName))
	want := []person{{"Alice", 34}, {"Charlie", 34}, {"Bob", 41}}
	if !slices.Equal(people, want) {
		t.Errorf("got %v, want %v", people, want)
	}
}

func TestReverse(t *testing.T) {
	desc := Reverse(byAge)
	if got := sign(desc(person{"a", 22}, person{"b", 41})); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := desc(person{"a", 34}, person{"b", 34}); got != 0 {
		t.Errorf("reverse of equal must stay equal, got %d", got)
	}
	if got := sign(byAge.Reversed().Reversed()(person{"a", 22}, person{"b", 41})); got != -1 {
		t.Errorf("double reverse: got %d, want -1", got)
	}
}

func TestCompose(t *testing.T) {
	c := Compose(byAge, byName)
	if got := sign(c(person{"Charlie", 34}, person{"Alice", 34})); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestCompose_Empty(t *testing.T) {
	c := Compose[person]()
	if got := c(person{"a", 1}, person{"b", 2}); got != 0 {
		t.Errorf("empty compose should report equal, got %d", got)
	}
}

func TestCompose_DoesNotAliasArgs(t *testing.T) {
	cs := []Comparator[person]{byAge}
	c := Compose(cs...)
	cs[0] = byName
	if got := sign(c(person{"Zed", 22}, person{"Amy", 41})); got != -1 {
		t.Errorf("compose must copy its arguments, got %d", got)
	}
}

func TestNilComparator(t *testing.T) {
	var c Comparator[int]
	if c.Compare(1, 2) != 0 {
		t.Error("nil comparator should report equal")
	}
	if got := sign(Then(c, Natural[int]())(1, 2)); got != -1 {
		t.Errorf("nil primary should defer to secondary, got %d", got)
	}
}

func TestByFunc(t *testing.T) {
	byNameLen := ByFunc(func(p person) string { return p.name }, func(a, b string) int { return len(a) - len(b) })
	if got := sign(byNameLen(person{"Bob", 0}, person{"Alice", 0})); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}

func TestBy_NaN(t *testing.T) {
	byValue := By(func(f float64) float64 { return f })
	if byValue(math.NaN(), math.NaN()) != 0 {
		t.Error("NaN should equal NaN")
	}
	if sign(byValue(math.NaN(), -1)) != -1 {
		t.Error("NaN should sort first")
	}
}

func TestAntisymmetryAndReflexivity(t *testing.T) {
	c := Compose(byAge, byName).Reversed()
	people := []person{{"Alice Smith", 34}, {"Charlie Brown", 22}, {"Bob Johnson", 41}, {"Alice Williams", 34}}
	for _, a := range people {
		if c(a, a) != 0 {
			t.Errorf("c(%v, %v) != 0", a, a)
		}
		for _, b := range people {
			if sign(c(a, b)) != -sign(c(b, a)) {
				t.Errorf("antisymmetry violated for %v, %v", a, b)
			}
		}
	}
}

func TestLess(t *testing.T) {
	if !Natural[string]().Less("a", "b") {
		t.Error("expected a < b")
	}
	if Natural[string]().Less("b", "b") {
		t.Error("expected !(b < b)")
	}
}
