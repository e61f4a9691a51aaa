package mdict

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mdict-format/go-mdict/classify"
	"github.com/mdict-format/go-mdict/token"
	"github.com/mdict-format/go-mdict/tree"
)

func testView() *MDict {
	return FromGo(map[string]any{
		"a": map[string]any{"b": map[string]any{"y": 0}},
		"x": 1,
	})
}

func TestGetLeaf(t *testing.T) {
	m := testView()
	v, err := m.Get("a.b.y")
	if err != nil {
		t.Fatalf("Get(a.b.y): %v", err)
	}
	if v != 0 {
		t.Errorf("Get(a.b.y) = %v, want 0", v)
	}
	if _, err := m.Get("a.b.z"); !tree.IsMissingKey(err) {
		t.Errorf("Get(a.b.z): got %v, want MissingKeyError", err)
	}
}

func TestGetContainerSharesChild(t *testing.T) {
	m := testView()
	v, err := m.Get("a.b")
	if err != nil {
		t.Fatalf("Get(a.b): %v", err)
	}
	sub, ok := v.(*MDict)
	if !ok {
		t.Fatalf("Get(a.b) returned %T, want *MDict", v)
	}
	if err := sub.Set("z", 2); err != nil {
		t.Fatalf("sub.Set: %v", err)
	}
	// mutation through the child view is visible in the parent tree
	got, err := m.Get("a.b.z")
	if err != nil {
		t.Fatalf("Get(a.b.z) after sub.Set: %v", err)
	}
	if got != 2 {
		t.Errorf("Get(a.b.z) = %v, want 2", got)
	}
}

func TestGetDefault(t *testing.T) {
	m := testView()
	v, err := m.GetDefault("a.b.z", 3)
	if err != nil {
		t.Fatalf("GetDefault(a.b.z): %v", err)
	}
	if v != 3 {
		t.Errorf("GetDefault(a.b.z, 3) = %v", v)
	}
	v, err = m.GetDefault("x", 3)
	if err != nil {
		t.Fatalf("GetDefault(x): %v", err)
	}
	if v != 1 {
		t.Errorf("GetDefault(x, 3) = %v, want 1", v)
	}
}

func TestGetDefaultOnlyCoversMissingKeys(t *testing.T) {
	m := FromGo(map[string]any{"a": 1, "xs": []any{1}})

	v, err := m.GetDefault("a.b", "fallback")
	var nt *tree.NonTraversableError
	if !errors.As(err, &nt) {
		t.Errorf("GetDefault(a.b) = %v, %v, want NonTraversableError", v, err)
	}

	v, err = m.GetDefault("xs.first", "fallback")
	var ni *tree.IndexNotIntegerError
	if !errors.As(err, &ni) {
		t.Errorf("GetDefault(xs.first) = %v, %v, want IndexNotIntegerError", v, err)
	}

	v, err = m.GetDefault("xs.5", "fallback")
	var oor *tree.IndexOutOfRangeError
	if !errors.As(err, &oor) {
		t.Errorf("GetDefault(xs.5) = %v, %v, want IndexOutOfRangeError", v, err)
	}
}

func TestSetDeepAndDelete(t *testing.T) {
	m := testView()
	if err := m.Set("a.b.z", 2); err != nil {
		t.Fatalf("Set: %v", err)
	}
	want := map[string]any{
		"a": map[string]any{"b": map[string]any{"y": 0, "z": 2}},
		"x": 1,
	}
	if d := cmp.Diff(want, tree.ToGo(m.Root())); d != "" {
		t.Errorf("after Set (-want +got):\n%s", d)
	}
	if err := m.Delete("a.b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	want = map[string]any{"a": map[string]any{}, "x": 1}
	if d := cmp.Diff(want, tree.ToGo(m.Root())); d != "" {
		t.Errorf("after Delete (-want +got):\n%s", d)
	}
}

func TestSetNestedValueBecomesSubtree(t *testing.T) {
	m := FromGo(map[string]any{})
	if err := m.Set("cfg", map[string]any{"host": "a.example"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := m.Get("cfg.host")
	if err != nil {
		t.Fatalf("Get(cfg.host): %v", err)
	}
	if v != "a.example" {
		t.Errorf("Get(cfg.host) = %v", v)
	}
}

func TestLen(t *testing.T) {
	if got := testView().Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestKeysRoundTripThroughGet(t *testing.T) {
	m := FromGo(map[string]any{"plain": 1, "with.dot": 2})
	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if d := cmp.Diff([]string{"plain", `with\.dot`}, keys); d != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", d)
	}
	for _, k := range keys {
		if _, err := m.Get(k); err != nil {
			t.Errorf("Get(%q): %v", k, err)
		}
	}
}

func TestKeysSequence(t *testing.T) {
	m := New(tree.FromGo([]any{"p", "q"}))
	var keys []string
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	if d := cmp.Diff([]string{"0", "1"}, keys); d != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", d)
	}
}

func TestAlternateTokenizer(t *testing.T) {
	m := FromGo(
		map[string]any{"a": map[string]any{"b": map[string]any{"y": 0}}},
		WithTokenizer(token.New('/', '%')),
	)
	v, err := m.Get("a/b/y")
	if err != nil {
		t.Fatalf("Get(a/b/y): %v", err)
	}
	if v != 0 {
		t.Errorf("Get(a/b/y) = %v, want 0", v)
	}
}

func TestString(t *testing.T) {
	m := FromGo(map[string]any{"x": 1})
	if got := m.String(); got != "mmap[x:1]" {
		t.Errorf("String = %q", got)
	}
}

func TestFlattened(t *testing.T) {
	m := testView()
	got, err := m.Flattened()
	if err != nil {
		t.Fatalf("Flattened: %v", err)
	}
	sort.Slice(got, func(i, j int) bool { return got[i].Path < got[j].Path })
	want := []classify.Entry{{Path: "a.b.y", Value: 0}, {Path: "x", Value: 1}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("flattened mismatch (-want +got):\n%s", d)
	}
}

func TestFlattenedResultIsCallerOwned(t *testing.T) {
	m := testView()
	first, err := m.Flattened()
	if err != nil {
		t.Fatalf("Flattened: %v", err)
	}
	sort.Slice(first, func(i, j int) bool { return first[i].Path > first[j].Path })
	first[0] = classify.Entry{Path: "clobbered", Value: nil}
	second, err := m.Flattened()
	if err != nil {
		t.Fatalf("Flattened again: %v", err)
	}
	for _, e := range second {
		if e.Path == "clobbered" {
			t.Fatal("mutating a returned projection rewrote the cache")
		}
	}
}

func TestFlattenedRecomputesAfterMutation(t *testing.T) {
	m := testView()
	before, err := m.Flattened()
	if err != nil {
		t.Fatalf("Flattened: %v", err)
	}
	if err := m.Set("x", 9); err != nil {
		t.Fatalf("Set: %v", err)
	}
	after, err := m.Flattened()
	if err != nil {
		t.Fatalf("Flattened after Set: %v", err)
	}
	if len(before) == len(after) && cmp.Equal(before, after) {
		t.Error("flattened projection not recomputed after mutation")
	}
	found := false
	for _, e := range after {
		if e.Path == "x" && e.Value == 9 {
			found = true
		}
	}
	if !found {
		t.Error("mutated value missing from recomputed projection")
	}
}
