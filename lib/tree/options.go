package tree

import (
	"github.com/benz9527/xtree/xlog"
)

type treeOptions struct {
	logger         xlog.XLogger
	initCap        int
	isDesc         bool
	isRmBorrowSucc bool
}

type TreeOption func(*treeOptions)

// WithTreeDesc reverses the order of the ordered trees.
func WithTreeDesc() TreeOption {
	return func(opts *treeOptions) {
		opts.isDesc = true
	}
}

// WithTreeRemoveBorrowSucc removes a node with two children by borrowing
// the in-order successor instead of the predecessor.
func WithTreeRemoveBorrowSucc() TreeOption {
	return func(opts *treeOptions) {
		opts.isRmBorrowSucc = true
	}
}

func WithTreeInitCap(n int) TreeOption {
	return func(opts *treeOptions) {
		if n > 0 {
			opts.initCap = n
		}
	}
}

// WithTreeLogger traces the rebalance cases at debug level.
func WithTreeLogger(logger xlog.XLogger) TreeOption {
	return func(opts *treeOptions) {
		opts.logger = logger
	}
}

func applyTreeOptions(opts ...TreeOption) *treeOptions {
	o := &treeOptions{
		initCap: 16,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
