package wordtree

import (
	"strings"

	"go.uber.org/zap"

	"github.com/benz9527/xtree/internal/config"
	"github.com/benz9527/xtree/lib/tree"
	"github.com/benz9527/xtree/xlog"
)

type WordCount struct {
	Word  string
	Count int
}

// ByCountDesc orders by the count descending, then by the word ascending.
func ByCountDesc(i, j WordCount) int64 {
	if i.Count != j.Count {
		if i.Count > j.Count {
			return -1
		}
		return 1
	}
	return int64(strings.Compare(i.Word, j.Word))
}

// CountWords ranks the words by frequency. top <= 0 keeps all of them.
//
// The words tree keeps the duplicates side by side in order, so one
// in-order pass counts them. The counts are ranked by a second tree.
func CountWords(cfg config.TreeConfig, words []string, top int, logger xlog.XLogger) ([]WordCount, error) {
	wordCfg := cfg
	wordCfg.Desc = false
	wt, err := Build(wordCfg, words, false, logger)
	if err != nil {
		return nil, err
	}

	ranking, err := NewTree[WordCount](cfg, ByCountDesc, logger)
	if err != nil {
		return nil, err
	}
	var (
		cur      WordCount
		visitErr error
	)
	flush := func() error {
		if cur.Count <= 0 {
			return nil
		}
		return ranking.Insert(cur)
	}
	wt.InOrder(func(node tree.BinaryTreeNode[string]) {
		if visitErr != nil {
			return
		}
		w := node.Element()
		if w == cur.Word && cur.Count > 0 {
			cur.Count++
			return
		}
		visitErr = flush()
		cur = WordCount{Word: w, Count: 1}
	})
	if visitErr != nil {
		return nil, visitErr
	}
	if err = flush(); err != nil {
		return nil, err
	}

	size := int(ranking.Len())
	if top > 0 && top < size {
		size = top
	}
	res := make([]WordCount, 0, size)
	ranking.Foreach(func(idx int64, wc WordCount) bool {
		res = append(res, wc)
		return len(res) < size
	})
	if logger != nil {
		logger.Debug("[wordtree] counted",
			zap.Int("words", len(words)),
			zap.Int64("distinct", ranking.Len()),
			zap.Int("top", top),
		)
	}
	return res, nil
}
