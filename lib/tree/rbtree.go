package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

var (
	_ RBTree[int] = (*rbTree[int])(nil)
)

// rbTree balances the bst layer. The rotations stay unexported, external
// rotations would break the red-black properties.
type rbTree[T any] struct {
	bst[T]
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.
// So the shortest path nodes are black nodes. Otherwise,
// the path must contain red node.
// The longest path nodes' number is 2 * shortest path nodes' number.

// Insert places the element by the bst layer, paints it red and rebalances.
func (tree *rbTree[T]) Insert(elem T) error {
	if tree.isAbsent(elem) {
		return ErrTreeInvalidArgument
	}
	x := tree.insertNode(elem)
	tree.node(x).color = Red
	tree.insertRebalance(x)
	return nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: X is the root. Repaint X into black.

im2: X's parent P is black. Hold p3 and p4.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation may be still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[T]) insertRebalance(x nodeIdx) {
	for x != nilIdx {
		p := tree.node(x).parent
		if /* im1 */ p == nilIdx {
			tree.trace("[rbtree] insert rebalance", "im1", x)
			tree.node(x).color = Black
			return
		}

		if /* im2 */ tree.isBlack(p) {
			return
		}

		g := tree.node(p).parent
		if g == nilIdx {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] red root, insert violate (im3)")
		}

		if u := tree.sibling(p); /* im3 */ tree.isRed(u) {
			tree.trace("[rbtree] insert rebalance", "im3", x)
			tree.node(p).color = Black
			tree.node(u).color = Black
			tree.node(g).color = Red
			x = g
			continue
		}

		dir, pdir := tree.direction(x), tree.direction(p)
		if /* im4 */ dir != pdir {
			tree.trace("[rbtree] insert rebalance", "im4", x)
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert violate (im4)")
			}
			x, p = p, x // enter im5 to fix
		}

		/* im5 */
		tree.trace("[rbtree] insert rebalance", "im5", x)
		tree.node(p).color = Black
		tree.node(g).color = Red
		switch pdir {
		case Left:
			tree.rightRotate(g)
		case Right:
			tree.leftRotate(g)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] insert violate (im5)")
		}
		return
	}
}

/*
r1: Current node X has left and right node.
Swap the element with pred (or succ), then remove the borrowed node.

r2: Current node X is a leaf node. Attach a black sentinel as its child,
so the fixup always has a child that takes X's place.

r3: Splice X out, the child C takes the place.
(1) C is red, repaint C into black.
(2) X is red, nothing to fix.
(3) Both are black, C is double black. (black-violation)
*/
func (tree *rbTree[T]) Remove(elem T) bool {
	z := tree.search(elem)
	if z == nilIdx {
		return false
	}

	y := /* r1 */ tree.swapForRemoval(z)

	var sentinel nodeIdx
	if /* r2 */ yn := tree.node(y); yn.left == nilIdx && yn.right == nilIdx {
		sentinel = tree.arena.allocate(*new(T), Black)
		tree.node(sentinel).sentinel = true
		tree.node(sentinel).parent = y
		tree.node(y).left = sentinel
	}

	yn := tree.node(y)
	child, removed := yn.left, yn.color
	if child == nilIdx {
		child = yn.right
	}
	/* r3 */ tree.splice(y)

	switch {
	case /* r3 (1) */ tree.isRed(child):
		tree.node(child).color = Black
	case /* r3 (2) */ removed == Red:
	default: /* r3 (3) */
		tree.removeRebalance(child)
	}

	if sentinel != nilIdx {
		tree.splice(sentinel)
		tree.arena.recycle(sentinel)
	}
	tree.arena.recycle(y)
	tree.count--
	tree.lastInserted = nilIdx
	tree.touch()
	return true
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the same direction to X and it X's sibling's child node.
Sd is the opposite direction to X and it X's sibling's child node.

rm1: X is the root. Repaint X into black.

rm2: Current node X's sibling S is red, so the parent P, nephew node Sc and Sd
must be black. (Otherwise, red-violation)
(1) repaint S into black, P into red.
(2) X is left node of P, left rotate P.
(3) X is right node of P, right rotate P.
Continue with the new sibling (the old Sc).

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  =====>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm3: All of current node X's parent P, the sibling S, nephew node Sc and Sd
are black.
Unable to satisfy p3 and p4. We have to paint the S into red to satisfy
p4 locally. Then recursive to handle P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: Current node X's parent P is red, the sibling S, nephew node Sc and Sd
is black.
Repaint S into red and P into black.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm5: Current node X's sibling S is black, nephew node Sc is red and Sd
is black. Ignore X's parent P's color (red or black is okay)
(1) If X is left node of P, right rotate S.
(2) If X is right node of P, left rotate S.
(3) Repaint S into red, Sc into black
Enter into rm6 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm6: Current node X's sibling S is black, nephew node Sd is red.
Ignore X's parent P's color (red or black is okay)
(1) If X is left node of P, left rotate P.
(2) If X is right node of P, right rotate P.
(3) S takes P's color, repaint P into black.
(4) Repaint Sd into black.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[T]) removeRebalance(x nodeIdx) {
	for {
		p := tree.node(x).parent
		if /* rm1 */ p == nilIdx {
			tree.trace("[rbtree] remove rebalance", "rm1", x)
			tree.node(x).color = Black
			return
		}

		dir := tree.direction(x)
		s := tree.sibling(x)
		if /* rm2 */ tree.isRed(s) {
			tree.trace("[rbtree] remove rebalance", "rm2", x)
			tree.node(p).color = Red
			tree.node(s).color = Black
			switch dir {
			case Left:
				tree.leftRotate(p)
			case Right:
				tree.rightRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm2)")
			}
			s = tree.sibling(x)
		}
		if s == nilIdx {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] double black node without sibling")
		}

		sc, sd := tree.nephews(s, dir)
		if tree.isBlack(s) && tree.isBlack(sc) && tree.isBlack(sd) {
			if /* rm3 */ tree.isBlack(p) {
				tree.trace("[rbtree] remove rebalance", "rm3", x)
				tree.node(s).color = Red
				x = p
				continue
			}
			/* rm4 */
			tree.trace("[rbtree] remove rebalance", "rm4", x)
			tree.node(s).color = Red
			tree.node(p).color = Black
			return
		}

		if /* rm5 */ tree.isRed(sc) && tree.isBlack(sd) {
			tree.trace("[rbtree] remove rebalance", "rm5", x)
			tree.node(sc).color = Black
			tree.node(s).color = Red
			switch dir {
			case Left:
				tree.rightRotate(s)
			case Right:
				tree.leftRotate(s)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm5)")
			}
			s = tree.sibling(x)
			sc, sd = tree.nephews(s, dir)
		}

		/* rm6 */
		tree.trace("[rbtree] remove rebalance", "rm6", x)
		tree.node(s).color = tree.node(p).color
		tree.node(p).color = Black
		if sd != nilIdx {
			tree.node(sd).color = Black
		}
		switch dir {
		case Left:
			tree.leftRotate(p)
		case Right:
			tree.rightRotate(p)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (rm6)")
		}
		return
	}
}

// nephews returns the sibling's children, the near one (same direction
// as X) first.
func (tree *rbTree[T]) nephews(s nodeIdx, dir RBDirection) (sc, sd nodeIdx) {
	sn := tree.node(s)
	if dir == Left {
		return sn.left, sn.right
	}
	return sn.right, sn.left
}

// BlackHeight counts the black nodes below the root down to a NIL leaf.
// 0 for an empty tree or a single node.
func (tree *rbTree[T]) BlackHeight() int {
	if tree.root == nilIdx {
		return 0
	}
	height := 0
	for aux := tree.node(tree.root).left; aux != nilIdx; aux = tree.node(aux).left {
		if tree.isBlack(aux) {
			height++
		}
	}
	return height
}

func NewRBTree[K infra.OrderedKey](opts ...TreeOption) RBTree[K] {
	return NewRBTreeFunc[K](infra.OrderedKeyCompare[K], opts...)
}

func NewRBTreeFunc[T any](cmp infra.Comparator[T], opts ...TreeOption) RBTree[T] {
	return &rbTree[T]{
		bst: newBST[T](redBlackTreeKind, cmp, applyTreeOptions(opts...)),
	}
}
