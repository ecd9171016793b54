package tree

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/xlog"
)

type treeKind uint8

const (
	completeTreeKind treeKind = iota
	searchTreeKind
	redBlackTreeKind
)

// colored reports the node variant of the tree kind.
func (k treeKind) colored() bool {
	return k == redBlackTreeKind
}

// baseTree is the structural skeleton shared by all trees. It knows nothing
// about the order or the balancing of the elements.
type baseTree[T any] struct {
	arena    *nodeArena[T]
	equal    func(i, j T) bool
	logger   xlog.XLogger
	root     nodeIdx
	count    int64
	version  uint64 // bumped by every mutation
	kind     treeKind
	nillable bool
}

func newBaseTree[T any](kind treeKind, equal func(i, j T) bool, opts *treeOptions) baseTree[T] {
	return baseTree[T]{
		arena:    newNodeArena[T](opts.initCap),
		equal:    equal,
		logger:   opts.logger,
		kind:     kind,
		nillable: infra.IsNillableType[T](),
	}
}

func (tree *baseTree[T]) base() *baseTree[T] {
	return tree
}

func (tree *baseTree[T]) node(idx nodeIdx) *node[T] {
	return tree.arena.get(idx)
}

// newNode is the hook producing the node variant of this tree.
func (tree *baseTree[T]) newNode(elem T) nodeIdx {
	color := NoColor
	if tree.kind.colored() {
		color = Red
	}
	return tree.arena.allocate(elem, color)
}

func (tree *baseTree[T]) isAbsent(elem T) bool {
	return tree.nillable && infra.IsNilValue(elem)
}

func (tree *baseTree[T]) view(idx nodeIdx) BinaryTreeNode[T] {
	return treeNode[T]{tree: tree, idx: idx}
}

// owned converts a view back to its index if the view belongs to this tree.
func (tree *baseTree[T]) owned(n BinaryTreeNode[T]) (nodeIdx, error) {
	v, ok := n.(treeNode[T])
	if !ok || v.tree != tree {
		return nilIdx, ErrTreeForeignNode
	}
	if !tree.arena.isLive(v.idx) || tree.node(v.idx).sentinel {
		return nilIdx, ErrTreeNoSuchElement
	}
	return v.idx, nil
}

func (tree *baseTree[T]) touch() {
	tree.version++
}

func (tree *baseTree[T]) Len() int64 {
	return tree.count
}

func (tree *baseTree[T]) IsEmpty() bool {
	return tree.root == nilIdx
}

func (tree *baseTree[T]) Height() int {
	return tree.heightOf(tree.root)
}

func (tree *baseTree[T]) Root() (BinaryTreeNode[T], error) {
	if tree.root == nilIdx {
		return nil, ErrTreeNoSuchElement
	}
	return tree.view(tree.root), nil
}

// Clear drops the whole node graph.
func (tree *baseTree[T]) Clear() {
	tree.arena.reset()
	tree.root = nilIdx
	tree.count = 0
	tree.touch()
}

// Contains is the unordered fallback, O(n).
func (tree *baseTree[T]) Contains(elem T) bool {
	return tree.scan(elem) != nilIdx
}

// Find is the unordered fallback, O(n).
func (tree *baseTree[T]) Find(elem T) (BinaryTreeNode[T], error) {
	idx := tree.scan(elem)
	if idx == nilIdx {
		return nil, ErrTreeNoSuchElement
	}
	return tree.view(idx), nil
}

// scan visits the nodes in pre-order and returns the first equal one.
func (tree *baseTree[T]) scan(elem T) nodeIdx {
	if tree.root == nilIdx || tree.isAbsent(elem) {
		return nilIdx
	}
	stack := make([]nodeIdx, 0, 16)
	stack = append(stack, tree.root)
	for size := len(stack); size > 0; size = len(stack) {
		aux := tree.node(stack[size-1])
		idx := stack[size-1]
		stack = stack[:size-1]
		if tree.equal(aux.elem, elem) {
			return idx
		}
		if aux.right != nilIdx {
			stack = append(stack, aux.right)
		}
		if aux.left != nilIdx {
			stack = append(stack, aux.left)
		}
	}
	return nilIdx
}

// heightOf counts the levels below idx, -1 for the absent subtree.
func (tree *baseTree[T]) heightOf(idx nodeIdx) int {
	if idx == nilIdx {
		return -1
	}
	h := -1
	level := []nodeIdx{idx}
	for len(level) > 0 {
		h++
		next := make([]nodeIdx, 0, len(level)<<1)
		for _, i := range level {
			aux := tree.node(i)
			if aux.left != nilIdx {
				next = append(next, aux.left)
			}
			if aux.right != nilIdx {
				next = append(next, aux.right)
			}
		}
		level = next
	}
	return h
}

func (tree *baseTree[T]) depthOf(idx nodeIdx) int {
	depth := 0
	for aux := tree.node(idx).parent; aux != nilIdx; aux = tree.node(aux).parent {
		depth++
	}
	return depth
}

func (tree *baseTree[T]) direction(idx nodeIdx) RBDirection {
	p := tree.node(idx).parent
	if p == nilIdx {
		return Root
	}
	if tree.node(p).left == idx {
		return Left
	}
	return Right
}

func (tree *baseTree[T]) sibling(idx nodeIdx) nodeIdx {
	p := tree.node(idx).parent
	if p == nilIdx {
		return nilIdx
	}
	pn := tree.node(p)
	if pn.left == idx {
		return pn.right
	}
	return pn.left
}

// The absent node is black.
func (tree *baseTree[T]) isBlack(idx nodeIdx) bool {
	return idx == nilIdx || tree.node(idx).color == Black
}

func (tree *baseTree[T]) isRed(idx nodeIdx) bool {
	return idx != nilIdx && tree.node(idx).color == Red
}

// Equal compares two trees of the same kind node by node.
func (tree *baseTree[T]) Equal(other BinaryTree[T]) bool {
	o, ok := other.(interface{ base() *baseTree[T] })
	if !ok {
		return false
	}
	that := o.base()
	if that == tree {
		return true
	}
	if that.kind != tree.kind || that.count != tree.count {
		return false
	}

	type pair struct{ x, y nodeIdx }
	stack := []pair{{tree.root, that.root}}
	for size := len(stack); size > 0; size = len(stack) {
		p := stack[size-1]
		stack = stack[:size-1]
		if p.x == nilIdx || p.y == nilIdx {
			if p.x != p.y {
				return false
			}
			continue
		}
		x, y := tree.node(p.x), that.node(p.y)
		if x.color != y.color || !tree.equal(x.elem, y.elem) {
			return false
		}
		stack = append(stack, pair{x.right, y.right}, pair{x.left, y.left})
	}
	return true
}

func (tree *baseTree[T]) nodeString(idx nodeIdx) string {
	aux := tree.node(idx)
	if aux.sentinel {
		return "NIL"
	}
	switch aux.color {
	case Red:
		return fmt.Sprintf("R{%v}", aux.elem)
	case Black:
		return fmt.Sprintf("B{%v}", aux.elem)
	default:
	}
	return fmt.Sprint(aux.elem)
}

/*
String renders the shape of the tree, one node per line.

	B{4}
	├─›B{2}
	│  ├─›R{1}
	│  └─»R{3}
	└─»B{6}
	   └─›R{5}

"›" marks a left child and "»" marks a right child.
*/
func (tree *baseTree[T]) String() string {
	if tree.root == nilIdx {
		return ""
	}
	builder := strings.Builder{}
	bars := make([]bool, tree.Height()+1)
	tree.render(&builder, tree.root, 0, bars)
	return builder.String()
}

func (tree *baseTree[T]) render(builder *strings.Builder, idx nodeIdx, lvl int, bars []bool) {
	_, _ = builder.WriteString(tree.nodeString(idx))
	_ = builder.WriteByte('\n')
	bars[lvl] = true

	l, r := tree.node(idx).left, tree.node(idx).right
	switch {
	case l != nilIdx && r != nilIdx:
		writeIndent(builder, lvl, bars)
		_, _ = builder.WriteString("├─›")
		tree.render(builder, l, lvl+1, bars)
		writeIndent(builder, lvl, bars)
		_, _ = builder.WriteString("└─»")
		bars[lvl] = false
		tree.render(builder, r, lvl+1, bars)
	case l != nilIdx:
		writeIndent(builder, lvl, bars)
		_, _ = builder.WriteString("└─›")
		bars[lvl] = false
		tree.render(builder, l, lvl+1, bars)
	case r != nilIdx:
		writeIndent(builder, lvl, bars)
		_, _ = builder.WriteString("└─»")
		bars[lvl] = false
		tree.render(builder, r, lvl+1, bars)
	default:
	}
}

func writeIndent(builder *strings.Builder, lvl int, bars []bool) {
	for i := 0; i < lvl; i++ {
		if bars[i] {
			_, _ = builder.WriteString("│  ")
		} else {
			_, _ = builder.WriteString("   ")
		}
	}
}

func (tree *baseTree[T]) trace(msg, rebalanceCase string, idx nodeIdx) {
	if tree.logger == nil {
		return
	}
	fields := []zap.Field{zap.String("case", rebalanceCase)}
	if idx != nilIdx {
		fields = append(fields, zap.String("node", tree.nodeString(idx)))
	}
	tree.logger.Debug(msg, fields...)
}

// treeNode is the read-only view of a node.
type treeNode[T any] struct {
	tree *baseTree[T]
	idx  nodeIdx
}

func (n treeNode[T]) Element() T {
	return n.tree.node(n.idx).elem
}

func (n treeNode[T]) Color() RBColor {
	return n.tree.node(n.idx).color
}

func (n treeNode[T]) HasParent() bool {
	return n.tree.node(n.idx).parent != nilIdx
}

func (n treeNode[T]) HasLeft() bool {
	return n.tree.node(n.idx).left != nilIdx
}

func (n treeNode[T]) HasRight() bool {
	return n.tree.node(n.idx).right != nilIdx
}

func (n treeNode[T]) Parent() (BinaryTreeNode[T], error) {
	return n.link(n.tree.node(n.idx).parent)
}

func (n treeNode[T]) Left() (BinaryTreeNode[T], error) {
	return n.link(n.tree.node(n.idx).left)
}

func (n treeNode[T]) Right() (BinaryTreeNode[T], error) {
	return n.link(n.tree.node(n.idx).right)
}

func (n treeNode[T]) link(idx nodeIdx) (BinaryTreeNode[T], error) {
	if idx == nilIdx {
		return nil, ErrTreeNoSuchElement
	}
	return n.tree.view(idx), nil
}

func (n treeNode[T]) Height() int {
	return n.tree.heightOf(n.idx)
}

func (n treeNode[T]) Depth() int {
	return n.tree.depthOf(n.idx)
}

func (n treeNode[T]) String() string {
	return n.tree.nodeString(n.idx)
}
