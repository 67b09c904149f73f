package carteira

import (
	"fmt"
	"sort"
)

// AllocationNode is one slice of portfolio value at a given grouping level.
// Percentage is the share of the parent total (0-100); siblings are expected
// to sum to roughly 100, but rounding on the backend side means they may not,
// and they are displayed as-is.
//
// A node with a nil or empty Children map is a leaf.
type AllocationNode struct {
	Percentage float64                   `json:"percentage"`
	Children   map[string]AllocationNode `json:"children,omitempty"`
}

// IsLeaf reports whether the node has no finer-grained breakdown.
func (n AllocationNode) IsLeaf() bool { return len(n.Children) == 0 }

// rootTitle is the title of the first frame of every allocation view.
const rootTitle = "Alocação por Categoria"

// viewFrame is one drill-down step: the keys chosen so far and the title to
// display for the resulting level.
type viewFrame struct {
	path  []string
	title string
}

// AllocationView is the drill-down navigation state over an allocation tree.
// It is created per view session and starts at the root frame; Drill appends
// exactly one frame, Back pops one. It never reads or writes anything outside
// itself, so it is safe to resolve on every redraw.
type AllocationView struct {
	frames []viewFrame
}

// NewAllocationView returns a view positioned at the root of the tree.
func NewAllocationView() *AllocationView {
	return &AllocationView{frames: []viewFrame{{title: rootTitle}}}
}

// Title returns the title of the current level.
func (v *AllocationView) Title() string { return v.frames[len(v.frames)-1].title }

// Depth returns the number of frames; 1 means the view is at the root.
func (v *AllocationView) Depth() int { return len(v.frames) }

// Path returns a copy of the drill keys chosen so far.
func (v *AllocationView) Path() []string {
	cur := v.frames[len(v.frames)-1].path
	return append([]string(nil), cur...)
}

// Resolve walks the tree along the current path and returns the mapping to
// display and the palette key for it. A missing step yields an empty mapping
// (empty state, not an error). Pure function of (root, view).
func (v *AllocationView) Resolve(root map[string]AllocationNode) (node map[string]AllocationNode, colorKey string) {
	cur := v.frames[len(v.frames)-1]
	node = root
	for _, key := range cur.path {
		child, ok := node[key]
		if !ok {
			return map[string]AllocationNode{}, v.colorKey()
		}
		node = child.Children
	}
	if node == nil {
		node = map[string]AllocationNode{}
	}
	return node, v.colorKey()
}

// colorKey is the first drill choice, or "category" at the root. The palette
// stays keyed to that first choice for every deeper level.
func (v *AllocationView) colorKey() string {
	cur := v.frames[len(v.frames)-1]
	if len(cur.path) == 0 {
		return "category"
	}
	return cur.path[0]
}

// Drill pushes one frame for the clicked slice. Clicking a leaf, or a key
// that is no longer present (stale selection after a data refresh), is a
// silent no-op.
func (v *AllocationView) Drill(root map[string]AllocationNode, key string) {
	node, _ := v.Resolve(root)
	clicked, ok := node[key]
	if !ok || clicked.IsLeaf() {
		return
	}
	cur := v.frames[len(v.frames)-1]
	path := append(append([]string(nil), cur.path...), key)
	v.frames = append(v.frames, viewFrame{
		path:  path,
		title: fmt.Sprintf("Alocação em %s", Translate(key)),
	})
}

// Back pops the last frame. No-op at the root.
func (v *AllocationView) Back() {
	if len(v.frames) > 1 {
		v.frames = v.frames[:len(v.frames)-1]
	}
}

// palettes assigns a stable color family per first drill choice. Slices cycle
// through the palette in display order.
var palettes = map[string][]string{
	"category": {"#3b82f6", "#16a34a", "#f97316", "#9333ea", "#ec4899", "#f59e0b"},
	"brazil":   {"#3498db", "#1abc9c", "#27ae60", "#f1c40f"},
	"usa":      {"#2ecc71", "#16a085", "#d35400"},
	"crypto":   {"#f7931a", "#627eea", "#f3ba2f", "#26a17b", "#e84142", "#a6b9c7", "#222222"},
}

// Palette returns the color palette for a colorKey, falling back to the
// category palette for keys without a dedicated one.
func Palette(colorKey string) []string {
	if p, ok := palettes[colorKey]; ok {
		return p
	}
	return palettes["category"]
}

// Slice is one display-ready entry of the current allocation level.
type Slice struct {
	Key     string  // raw backend key, used for drilling
	Label   string  // translated display name
	Percent Percent // share of the current level, displayed as-is
	Color   string  // hex color from the level's palette
}

// Slices flattens the current data node into display order: largest share
// first, ties broken by key so the order is stable across refreshes.
func Slices(node map[string]AllocationNode, colorKey string) []Slice {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := node[keys[i]], node[keys[j]]
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		return keys[i] < keys[j]
	})

	palette := Palette(colorKey)
	slices := make([]Slice, 0, len(keys))
	for i, k := range keys {
		slices = append(slices, Slice{
			Key:     k,
			Label:   Translate(k),
			Percent: Percent(node[k].Percentage),
			Color:   palette[i%len(palette)],
		})
	}
	return slices
}
