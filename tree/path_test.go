package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mdict-format/go-mdict/token"
)

func testTree() *Node {
	return FromGo(map[string]any{
		"a":   map[string]any{"x": []any{1, 5}},
		"a.x": 3,
		"a.y": 4,
	})
}

func TestGetPath(t *testing.T) {
	cases := []struct {
		path string
		want any
	}{
		{"a.x.-1", 5},
		{"a.x.0", 1},
		{"a.x.1", 5},
		{"a.x.-2", 1},
		{`a\.x`, 3},
		{`a\.y`, 4},
	}
	root := testTree()
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			n, err := GetPath(root, c.path, nil)
			if err != nil {
				t.Fatalf("GetPath(%q): %v", c.path, err)
			}
			if n.Leaf != c.want {
				t.Errorf("GetPath(%q) = %v, want %v", c.path, n.Leaf, c.want)
			}
		})
	}
}

func TestGetPathContainers(t *testing.T) {
	root := testTree()
	n, err := GetPath(root, "a.x", nil)
	if err != nil {
		t.Fatalf("GetPath(a.x): %v", err)
	}
	if n.Type != SeqType {
		t.Errorf("a.x: got type %v, want %v", n.Type, SeqType)
	}
}

func TestGetEmptyTokensReturnsRoot(t *testing.T) {
	root := testTree()
	n, err := Get(root, nil)
	if err != nil {
		t.Fatalf("Get(nil): %v", err)
	}
	if n != root {
		t.Error("Get with no tokens did not return root")
	}
}

func TestGetErrors(t *testing.T) {
	root := testTree()
	cases := []struct {
		name string
		path string
		want any
	}{
		{"missing key in submap", "a.y", &MissingKeyError{Key: "y"}},
		{"missing top key", "nope", &MissingKeyError{Key: "nope"}},
		{"non-integer index", "a.x.first", &IndexNotIntegerError{Token: "first"}},
		{"index too high", "a.x.2", &IndexOutOfRangeError{Index: 2, Len: 2}},
		{"index too low", "a.x.-3", &IndexOutOfRangeError{Index: -3, Len: 2}},
		{"through a leaf", `a\.x.more`, &NonTraversableError{Key: "more", Preview: "3"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := GetPath(root, c.path, nil)
			if err == nil {
				t.Fatalf("GetPath(%q): no error", c.path)
			}
			if d := cmp.Diff(c.want, err); d != "" {
				t.Errorf("error mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestIsMissingKey(t *testing.T) {
	root := testTree()
	_, err := GetPath(root, "nope", nil)
	if !IsMissingKey(err) {
		t.Errorf("IsMissingKey(%v) = false, want true", err)
	}
	_, err = GetPath(root, "a.x.first", nil)
	if IsMissingKey(err) {
		t.Errorf("IsMissingKey(%v) = true, want false", err)
	}
}

func TestLeafPreviewOmittedWhenLong(t *testing.T) {
	root := Map()
	root.SetKey("k", Leaf("a fairly long string value that no one wants inline"))
	_, err := GetPath(root, "k.sub", nil)
	var nt *NonTraversableError
	if !errors.As(err, &nt) {
		t.Fatalf("got %v, want NonTraversableError", err)
	}
	if nt.Preview != "" {
		t.Errorf("preview = %q, want empty", nt.Preview)
	}
}

func TestSetGetInverse(t *testing.T) {
	cases := []string{
		"top",
		"a.b.c",
		`esc\.aped.deep`,
		"",
	}
	for _, path := range cases {
		t.Run(path, func(t *testing.T) {
			root := Map()
			if err := SetPath(root, path, Leaf("v"), nil); err != nil {
				t.Fatalf("SetPath(%q): %v", path, err)
			}
			n, err := GetPath(root, path, nil)
			if err != nil {
				t.Fatalf("GetPath(%q): %v", path, err)
			}
			if n.Leaf != "v" {
				t.Errorf("GetPath(%q) = %v, want v", path, n.Leaf)
			}
		})
	}
}

func TestSetCreatesIntermediateMaps(t *testing.T) {
	root := Map()
	if err := SetPath(root, "a.b.c", Leaf(1), nil); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	want := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}
	if d := cmp.Diff(want, ToGo(root)); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
}

func TestSetPreservesExistingContainers(t *testing.T) {
	root := FromGo(map[string]any{"a": map[string]any{"x": 1}})
	if err := SetPath(root, "a.y", Leaf(2), nil); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	want := map[string]any{"a": map[string]any{"x": 1, "y": 2}}
	if d := cmp.Diff(want, ToGo(root)); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
}

func TestSetSequenceIndex(t *testing.T) {
	root := FromGo(map[string]any{"xs": []any{1, 5}})
	if err := SetPath(root, "xs.-1", Leaf(9), nil); err != nil {
		t.Fatalf("SetPath(xs.-1): %v", err)
	}
	want := map[string]any{"xs": []any{1, 9}}
	if d := cmp.Diff(want, ToGo(root)); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
	err := SetPath(root, "xs.2", Leaf(0), nil)
	var oor *IndexOutOfRangeError
	if !errors.As(err, &oor) {
		t.Errorf("SetPath(xs.2): got %v, want IndexOutOfRangeError", err)
	}
}

func TestSetErrors(t *testing.T) {
	root := FromGo(map[string]any{"leaf": 1, "xs": []any{1}})
	cases := []struct {
		name string
		path string
		want any
	}{
		{"final through leaf", "leaf.sub", &NonTraversableError{Key: "sub", Preview: "1"}},
		{"intermediate through leaf", "leaf.a.b", &NonTraversableError{Key: "a", Preview: "1"}},
		{"intermediate bad index", "xs.first.b", &IndexNotIntegerError{Token: "first"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := SetPath(root, c.path, Leaf(0), nil)
			if err == nil {
				t.Fatalf("SetPath(%q): no error", c.path)
			}
			if d := cmp.Diff(c.want, err); d != "" {
				t.Errorf("error mismatch (-want +got):\n%s", d)
			}
		})
	}
	if err := Set(root, nil, Leaf(0)); !errors.Is(err, ErrNoTokens) {
		t.Errorf("Set with no tokens: got %v, want ErrNoTokens", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	root := testTree()
	if err := DeletePath(root, `a\.x`, nil); err != nil {
		t.Fatalf("DeletePath: %v", err)
	}
	_, err := GetPath(root, `a\.x`, nil)
	if !IsMissingKey(err) {
		t.Errorf("get after delete: got %v, want MissingKeyError", err)
	}
}

func TestDeleteSequenceElement(t *testing.T) {
	root := FromGo(map[string]any{"xs": []any{1, 2, 3}})
	if err := DeletePath(root, "xs.-2", nil); err != nil {
		t.Fatalf("DeletePath(xs.-2): %v", err)
	}
	want := map[string]any{"xs": []any{1, 3}}
	if d := cmp.Diff(want, ToGo(root)); d != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", d)
	}
}

func TestDeleteErrors(t *testing.T) {
	root := testTree()
	if err := Delete(root, nil); !errors.Is(err, ErrNoTokens) {
		t.Errorf("Delete with no tokens: got %v, want ErrNoTokens", err)
	}
	err := DeletePath(root, "a.z", nil)
	if !IsMissingKey(err) {
		t.Errorf("DeletePath(a.z): got %v, want MissingKeyError", err)
	}
	err = DeletePath(root, "missing.deep", nil)
	if !IsMissingKey(err) {
		t.Errorf("DeletePath(missing.deep): got %v, want MissingKeyError", err)
	}
}

func TestAltTokenizerConfig(t *testing.T) {
	tk := token.New('/', '%')
	root := FromGo(map[string]any{"a": map[string]any{"b/c": 1}})
	n, err := GetPath(root, `a/b%/c`, tk)
	if err != nil {
		t.Fatalf("GetPath: %v", err)
	}
	if n.Leaf != 1 {
		t.Errorf("got %v, want 1", n.Leaf)
	}
}
