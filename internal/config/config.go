package config

import (
	"errors"
	"strings"

	"go.uber.org/multierr"

	"github.com/benz9527/xtree/xlog"
)

// Config is the configuration of the xtree cli.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Tree TreeConfig `mapstructure:"tree"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Encoder string `mapstructure:"encoder"`
}

type TreeConfig struct {
	Kind       string `mapstructure:"kind"`
	Desc       bool   `mapstructure:"desc"`
	BorrowSucc bool   `mapstructure:"borrow_succ"`
	InitCap    int    `mapstructure:"init_cap"`
}

const (
	TreeKindRB  = "rbtree"
	TreeKindBST = "bst"
)

const (
	DefaultLogLevel   = "WARN"
	DefaultLogEncoder = "text"
	DefaultTreeKind   = TreeKindRB
	DefaultInitCap    = 64
)

var (
	ErrInvalidLogLevel   = errors.New("log.level must be one of DEBUG, INFO, WARN, ERROR")
	ErrInvalidLogEncoder = errors.New("log.encoder must be json or text")
	ErrInvalidTreeKind   = errors.New("tree.kind must be rbtree or bst")
	ErrInvalidInitCap    = errors.New("tree.init_cap must be non-negative")
)

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error
	if lvl := c.Log.Level; lvl != "" && !strings.EqualFold(xlog.ParseLogLevel(lvl).String(), lvl) {
		err = multierr.Append(err, ErrInvalidLogLevel)
	}

	switch c.Log.Encoder {
	case "", "json", "text", "plain":
	default:
		err = multierr.Append(err, ErrInvalidLogEncoder)
	}

	switch c.Tree.Kind {
	case "", TreeKindRB, TreeKindBST:
	default:
		err = multierr.Append(err, ErrInvalidTreeKind)
	}

	if c.Tree.InitCap < 0 {
		err = multierr.Append(err, ErrInvalidInitCap)
	}
	return err
}

// Logger builds the cli logger, level and encoder come from the log section.
func (c *Config) Logger(opts ...xlog.XLoggerOption) xlog.XLogger {
	opts = append([]xlog.XLoggerOption{
		xlog.WithXLoggerLevel(xlog.ParseLogLevel(c.Log.Level)),
		xlog.WithXLoggerEncoder(xlog.ParseLogEncoder(c.Log.Encoder)),
	}, opts...)
	return xlog.NewXLogger(opts...)
}
