package wordtree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/multierr"

	"github.com/benz9527/xtree/lib/tree"
)

var (
	redNode   = color.New(color.FgRed, color.Bold)
	blackNode = color.New(color.FgHiBlack, color.Bold)
)

func paint[T any](node tree.BinaryTreeNode[T]) string {
	switch node.Color() {
	case tree.Red:
		return redNode.Sprint(node.String())
	case tree.Black:
		return blackNode.Sprint(node.String())
	default:
	}
	return node.String()
}

type shapeFrame[T any] struct {
	node   tree.BinaryTreeNode[T]
	prefix string
	branch string
	bar    string
}

// WriteShape prints the same layout as the tree's String, the red and
// black nodes are colored. color.NoColor switches the colors off.
func WriteShape[T any](w io.Writer, t tree.BinaryTree[T]) error {
	root, err := t.Root()
	if err != nil {
		return nil
	}

	stack := []shapeFrame[T]{{node: root}}
	for size := len(stack); size > 0; size = len(stack) {
		f := stack[size-1]
		stack = stack[:size-1]
		if _, err = fmt.Fprintf(w, "%s%s%s\n", f.prefix, f.branch, paint(f.node)); err != nil {
			return err
		}

		indent := f.prefix + f.bar
		l, _ := f.node.Left()
		r, _ := f.node.Right()
		switch {
		case l != nil && r != nil:
			stack = append(stack,
				shapeFrame[T]{node: r, prefix: indent, branch: "└─»", bar: "   "},
				shapeFrame[T]{node: l, prefix: indent, branch: "├─›", bar: "│  "},
			)
		case l != nil:
			stack = append(stack, shapeFrame[T]{node: l, prefix: indent, branch: "└─›", bar: "   "})
		case r != nil:
			stack = append(stack, shapeFrame[T]{node: r, prefix: indent, branch: "└─»", bar: "   "})
		default:
		}
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	return tbl
}

type Stats struct {
	Kind        string
	Size        int64
	Height      int
	BlackHeight int // -1 if the tree is not colored
	First       string
	Last        string
	Violations  []error
}

func CollectStats(kind string, t tree.OrderedTree[string], validateErr error) Stats {
	st := Stats{
		Kind:        kind,
		Size:        t.Len(),
		Height:      t.Height(),
		BlackHeight: -1,
	}
	if rb, ok := t.(tree.RBTree[string]); ok {
		st.BlackHeight = rb.BlackHeight()
	}
	st.First, _ = t.First()
	st.Last, _ = t.Last()
	st.Violations = multierr.Errors(validateErr)
	return st
}

func WriteStats(w io.Writer, st Stats) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"property", "value"})
	tbl.AppendRow(table.Row{"kind", st.Kind})
	tbl.AppendRow(table.Row{"size", st.Size})
	tbl.AppendRow(table.Row{"height", st.Height})
	if st.BlackHeight >= 0 {
		tbl.AppendRow(table.Row{"black height", st.BlackHeight})
	}
	tbl.AppendRow(table.Row{"first", st.First})
	tbl.AppendRow(table.Row{"last", st.Last})
	if len(st.Violations) == 0 {
		tbl.AppendFooter(table.Row{"invariants", "ok"})
	} else {
		msgs := make([]string, 0, len(st.Violations))
		for _, err := range st.Violations {
			msgs = append(msgs, err.Error())
		}
		tbl.AppendFooter(table.Row{"invariants", strings.Join(msgs, "\n")})
	}
	tbl.Render()
}

func WriteCounts(w io.Writer, counts []WordCount) {
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"#", "word", "count"})
	total := 0
	for i, wc := range counts {
		tbl.AppendRow(table.Row{strconv.Itoa(i + 1), wc.Word, wc.Count})
		total += wc.Count
	}
	tbl.AppendFooter(table.Row{"", "total", total})
	tbl.Render()
}
