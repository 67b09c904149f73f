package carteira

import (
	"reflect"
	"testing"
)

// sampleTree is a category → market → sub-type tree like the backend sends.
func sampleTree() map[string]AllocationNode {
	return map[string]AllocationNode{
		"brazil": {Percentage: 50, Children: map[string]AllocationNode{
			"ações": {Percentage: 70, Children: map[string]AllocationNode{
				"PETR4": {Percentage: 60},
				"VALE3": {Percentage: 40},
			}},
			"etfs": {Percentage: 30},
		}},
		"usa": {Percentage: 30, Children: map[string]AllocationNode{
			"stock": {Percentage: 100},
		}},
		"crypto": {Percentage: 20},
	}
}

func TestAllocationView_Resolve(t *testing.T) {
	tree := sampleTree()

	v := NewAllocationView()
	node, colorKey := v.Resolve(tree)
	if len(node) != 3 || colorKey != "category" {
		t.Fatalf("root view: got %d keys, colorKey %q", len(node), colorKey)
	}

	v.Drill(tree, "brazil")
	node, colorKey = v.Resolve(tree)
	if len(node) != 2 || colorKey != "brazil" {
		t.Fatalf("after drill brazil: got %d keys, colorKey %q", len(node), colorKey)
	}
	if v.Title() != "Alocação em Brasil" {
		t.Errorf("title = %q", v.Title())
	}

	v.Drill(tree, "ações")
	node, colorKey = v.Resolve(tree)
	if len(node) != 2 || colorKey != "brazil" {
		t.Fatalf("after drill ações: got %d keys, colorKey %q (palette stays keyed to first choice)", len(node), colorKey)
	}
}

func TestAllocationView_DrillBackSymmetry(t *testing.T) {
	tree := sampleTree()
	v := NewAllocationView()

	clicks := []string{"brazil", "ações"}
	for _, key := range clicks {
		v.Drill(tree, key)
	}
	if v.Depth() != 1+len(clicks) {
		t.Fatalf("depth after drills = %d, want %d", v.Depth(), 1+len(clicks))
	}
	for range clicks {
		v.Back()
	}
	if v.Depth() != 1 || v.Title() != rootTitle || len(v.Path()) != 0 {
		t.Errorf("after equal backs: depth=%d title=%q path=%v, want initial stack", v.Depth(), v.Title(), v.Path())
	}
	// extra Back at root is a no-op
	v.Back()
	if v.Depth() != 1 {
		t.Errorf("Back at root changed depth to %d", v.Depth())
	}
}

func TestAllocationView_LeafAndStaleClicks(t *testing.T) {
	tree := sampleTree()
	v := NewAllocationView()

	v.Drill(tree, "crypto") // leaf: no children
	if v.Depth() != 1 {
		t.Errorf("drilling a leaf changed the stack: depth=%d", v.Depth())
	}

	v.Drill(tree, "bonds") // key not present anymore (stale click)
	if v.Depth() != 1 {
		t.Errorf("drilling a missing key changed the stack: depth=%d", v.Depth())
	}

	// deep leaves are not drillable either
	v.Drill(tree, "brazil")
	v.Drill(tree, "ações")
	v.Drill(tree, "PETR4")
	if v.Depth() != 3 {
		t.Errorf("drilling leaf PETR4 changed the stack: depth=%d", v.Depth())
	}
}

func TestAllocationView_MissingPathResolvesEmpty(t *testing.T) {
	tree := sampleTree()
	v := NewAllocationView()
	v.Drill(tree, "brazil")

	// data refresh drops the brazil subtree entirely
	refreshed := map[string]AllocationNode{"usa": {Percentage: 100}}
	node, colorKey := v.Resolve(refreshed)
	if len(node) != 0 {
		t.Errorf("resolve over missing path = %v, want empty", node)
	}
	if colorKey != "brazil" {
		t.Errorf("colorKey = %q, want brazil", colorKey)
	}
}

func TestSlices(t *testing.T) {
	node := map[string]AllocationNode{
		"usa":    {Percentage: 30},
		"brazil": {Percentage: 50},
		"crypto": {Percentage: 20},
	}
	got := Slices(node, "category")

	wantOrder := []string{"brazil", "usa", "crypto"}
	gotOrder := make([]string, len(got))
	for i, s := range got {
		gotOrder[i] = s.Key
	}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("slice order = %v, want %v (descending percentage)", gotOrder, wantOrder)
	}
	if got[0].Label != "Brasil" {
		t.Errorf("label = %q, want translated", got[0].Label)
	}
	palette := Palette("category")
	for i, s := range got {
		if s.Color != palette[i%len(palette)] {
			t.Errorf("slice %d color = %q, want %q", i, s.Color, palette[i%len(palette)])
		}
	}
}

func TestPaletteFallback(t *testing.T) {
	if got := Palette("bonds"); !reflect.DeepEqual(got, Palette("category")) {
		t.Errorf("unknown colorKey should fall back to the category palette, got %v", got)
	}
	if reflect.DeepEqual(Palette("crypto"), Palette("category")) {
		t.Error("crypto should have a dedicated palette")
	}
}
