package tree

import (
	"fmt"
	"reflect"
	"sort"
)

// FromGo converts a plain Go value into a tree. Maps become MapType
// nodes, slices and arrays become SeqType nodes, and everything else is
// wrapped as an opaque leaf. map[string]any keeps no defined order, so
// keys are sorted for determinism; non-string map keys are rendered
// with fmt.Sprint.
func FromGo(v any) *Node {
	switch x := v.(type) {
	case *Node:
		return x
	case map[string]any:
		n := Map()
		for _, k := range sortedKeys(x) {
			n.SetKey(k, FromGo(x[k]))
		}
		return n
	case map[any]any:
		type kv struct {
			k string
			v any
		}
		kvs := make([]kv, 0, len(x))
		for k, val := range x {
			kvs = append(kvs, kv{fmt.Sprint(k), val})
		}
		sort.Slice(kvs, func(i, j int) bool { return kvs[i].k < kvs[j].k })
		n := Map()
		for _, e := range kvs {
			n.SetKey(e.k, FromGo(e.v))
		}
		return n
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			vs[i] = FromGo(e)
		}
		return Seq(vs...)
	}

	// other map/slice shapes (e.g. map[string]int) via reflection
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		n := Map()
		keys := make([]string, 0, rv.Len())
		vals := make(map[string]reflect.Value, rv.Len())
		for _, k := range rv.MapKeys() {
			ks := fmt.Sprint(k.Interface())
			keys = append(keys, ks)
			vals[ks] = rv.MapIndex(k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.SetKey(k, FromGo(vals[k].Interface()))
		}
		return n
	case reflect.Slice, reflect.Array:
		vs := make([]*Node, rv.Len())
		for i := range vs {
			vs[i] = FromGo(rv.Index(i).Interface())
		}
		return Seq(vs...)
	}
	return Leaf(v)
}

// ToGo converts a tree back into plain Go values: MapType to
// map[string]any, SeqType to []any, leaves to their payload.
func ToGo(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case MapType:
		m := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			m[k] = ToGo(n.Values[i])
		}
		return m
	case SeqType:
		s := make([]any, len(n.Values))
		for i, v := range n.Values {
			s[i] = ToGo(v)
		}
		return s
	default:
		return n.Leaf
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
