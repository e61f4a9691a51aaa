package main

import (
	"bytes"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/mdict-format/go-mdict/token"
	"github.com/mdict-format/go-mdict/tree"
)

const roundTripDoc = `a:
  b: 1
  c: two
xs:
  - p
  - q: 3
dotted.key: 4
top: null
`

func TestFlattenInflateRoundTrip(t *testing.T) {
	var v any
	if err := yaml.Unmarshal([]byte(roundTripDoc), &v); err != nil {
		t.Fatalf("decoding document: %v", err)
	}
	tk := token.Default()

	var flat bytes.Buffer
	if err := flattenDoc(&flat, tree.FromGo(v), tk, -1); err != nil {
		t.Fatalf("flattenDoc: %v", err)
	}

	var fv any
	if err := yaml.Unmarshal(flat.Bytes(), &fv); err != nil {
		t.Fatalf("decoding flattened output: %v", err)
	}
	var nested bytes.Buffer
	if err := inflateDoc(&nested, tree.FromGo(fv), tk, -1); err != nil {
		t.Fatalf("inflateDoc: %v", err)
	}

	var got any
	if err := yaml.Unmarshal(nested.Bytes(), &got); err != nil {
		t.Fatalf("decoding inflated output: %v", err)
	}
	// sequences flatten under decimal index keys and come back as
	// mappings, so compare against the document in that shape
	const wantDoc = `a:
  b: 1
  c: two
xs:
  "0": p
  "1":
    q: 3
dotted.key: 4
top: null
`
	var want any
	if err := yaml.Unmarshal([]byte(wantDoc), &want); err != nil {
		t.Fatalf("decoding expectation: %v", err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestFlattenDocEscapesDottedKeys(t *testing.T) {
	root := tree.FromGo(map[string]any{"dotted.key": 4})
	var out bytes.Buffer
	if err := flattenDoc(&out, root, token.Default(), -1); err != nil {
		t.Fatalf("flattenDoc: %v", err)
	}
	var fv any
	if err := yaml.Unmarshal(out.Bytes(), &fv); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	m, ok := fv.(map[string]any)
	if !ok {
		t.Fatalf("output is %T, want a mapping", fv)
	}
	if _, ok := m[`dotted\.key`]; !ok {
		t.Errorf("flattened keys = %v, want dotted\\.key escaped", m)
	}
}

func TestInflateDocRejectsNonMapping(t *testing.T) {
	var out bytes.Buffer
	if err := inflateDoc(&out, tree.FromGo([]any{1, 2}), token.Default(), -1); err == nil {
		t.Error("inflating a sequence document did not fail")
	}
}
