package tree

var (
	_ Iterator[int] = (*inOrderIterator[int])(nil)
	_ Iterator[int] = (*bfsIterator[int])(nil)
)

// inOrderIterator yields the elements in ascending order.
// Each Next pops one node and pushes the left spine of its right subtree.
type inOrderIterator[T any] struct {
	tree    *baseTree[T]
	stack   []nodeIdx
	version uint64
}

func newInOrderIterator[T any](tree *baseTree[T]) *inOrderIterator[T] {
	it := &inOrderIterator[T]{
		tree:    tree,
		stack:   make([]nodeIdx, 0, 16),
		version: tree.version,
	}
	it.pushLeftSpine(tree.root)
	return it
}

func (it *inOrderIterator[T]) pushLeftSpine(aux nodeIdx) {
	for ; aux != nilIdx; aux = it.tree.node(aux).left {
		it.stack = append(it.stack, aux)
	}
}

func (it *inOrderIterator[T]) HasNext() bool {
	return len(it.stack) > 0
}

func (it *inOrderIterator[T]) Next() (T, error) {
	if it.version != it.tree.version {
		return *new(T), ErrTreeIteratorInvalidated
	}
	size := len(it.stack)
	if size <= 0 {
		return *new(T), ErrTreeNoSuchElement
	}
	aux := it.stack[size-1]
	it.stack = it.stack[:size-1]
	it.pushLeftSpine(it.tree.node(aux).right)
	return it.tree.node(aux).elem, nil
}

// bfsIterator yields the elements level by level.
type bfsIterator[T any] struct {
	tree    *baseTree[T]
	queue   []nodeIdx
	version uint64
}

func newBFSIterator[T any](tree *baseTree[T]) *bfsIterator[T] {
	it := &bfsIterator[T]{
		tree:    tree,
		queue:   make([]nodeIdx, 0, 16),
		version: tree.version,
	}
	if tree.root != nilIdx {
		it.queue = append(it.queue, tree.root)
	}
	return it
}

func (it *bfsIterator[T]) HasNext() bool {
	return len(it.queue) > 0
}

func (it *bfsIterator[T]) Next() (T, error) {
	if it.version != it.tree.version {
		return *new(T), ErrTreeIteratorInvalidated
	}
	if len(it.queue) <= 0 {
		return *new(T), ErrTreeNoSuchElement
	}
	aux := it.tree.node(it.queue[0])
	it.queue = it.queue[1:]
	if aux.left != nilIdx {
		it.queue = append(it.queue, aux.left)
	}
	if aux.right != nilIdx {
		it.queue = append(it.queue, aux.right)
	}
	return aux.elem, nil
}
