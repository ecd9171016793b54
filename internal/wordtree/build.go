package wordtree

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/internal/config"
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
	"github.com/benz9527/xtree/xlog"
)

// Options of the tree built from the input.
func treeOptions(cfg config.TreeConfig, logger xlog.XLogger) []tree.TreeOption {
	opts := []tree.TreeOption{
		tree.WithTreeInitCap(cfg.InitCap),
	}
	if cfg.Desc {
		opts = append(opts, tree.WithTreeDesc())
	}
	if cfg.BorrowSucc {
		opts = append(opts, tree.WithTreeRemoveBorrowSucc())
	}
	if logger != nil {
		opts = append(opts, tree.WithTreeLogger(logger.Named(cfg.Kind)))
	}
	return opts
}

// NewTree creates an empty ordered tree of the configured kind.
func NewTree[T any](cfg config.TreeConfig, cmp infra.Comparator[T], logger xlog.XLogger) (tree.OrderedTree[T], error) {
	opts := treeOptions(cfg, logger)
	switch cfg.Kind {
	case config.TreeKindBST:
		return tree.NewBinarySearchTreeFunc[T](cmp, opts...), nil
	case config.TreeKindRB, "":
		return tree.NewRBTreeFunc[T](cmp, opts...), nil
	default:
	}
	return nil, fmt.Errorf("%w: %s", config.ErrInvalidTreeKind, cfg.Kind)
}

// Build inserts the elements in input order. The duplicates are skipped
// if unique.
func Build(cfg config.TreeConfig, elems []string, unique bool, logger xlog.XLogger) (tree.OrderedTree[string], error) {
	t, err := NewTree[string](cfg, infra.OrderedKeyCompare[string], logger)
	if err != nil {
		return nil, err
	}
	skipped := 0
	for _, e := range elems {
		if unique && t.Contains(e) {
			skipped++
			continue
		}
		if err = t.Insert(e); err != nil {
			return nil, err
		}
	}
	if logger != nil {
		logger.Debug("[wordtree] built",
			zap.String("kind", cfg.Kind),
			zap.Int64("size", t.Len()),
			zap.Int("skipped", skipped),
			zap.Int("height", t.Height()),
		)
	}
	return t, nil
}

// EffectiveOrder is the order of the elements in a tree built with cfg.
func EffectiveOrder[T any](cfg config.TreeConfig, cmp infra.Comparator[T]) infra.Comparator[T] {
	if cfg.Desc {
		return infra.ReverseComparator(cmp)
	}
	return cmp
}

// Validate runs the invariant checks that hold for the tree kind.
func Validate[T any](t tree.OrderedTree[T], cmp infra.Comparator[T]) error {
	if rb, ok := t.(tree.RBTree[T]); ok {
		return tree.RBTreeValidate[T](rb, cmp)
	}
	return multierr.Combine(
		tree.OrderViolationValidate[T](t, cmp),
		tree.LinkViolationValidate[T](t),
	)
}
