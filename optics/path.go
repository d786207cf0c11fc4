package optics

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// ErrInvalidPath is wrapped by every ParsePath failure.
var ErrInvalidPath = errors.New("optics: invalid path")

// pathRoot anchors the parsed member expression; it is never part of the result.
const pathRoot = "root"

// ParsePath parses text such as `address.streets[0].number` or `[4]["x y"]`.
//
// Dotted names and quoted brackets become Field keys, integer brackets become
// Index keys. The empty string is the empty path. Text that is not valid UTF-8
// is rejected.
func ParsePath(text string) (Path, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Path{}, nil
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w %q: not valid UTF-8", ErrInvalidPath, text)
	}
	src := pathRoot + "." + text
	if text[0] == '[' || text[0] == '.' {
		src = pathRoot + text
	}
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPath, text, err)
	}
	path, err := pathFromNode(tree.Node)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPath, text, err)
	}
	return path, nil
}

// MustParsePath is ParsePath that panics on error.
func MustParsePath(text string) Path {
	p, err := ParsePath(text)
	if err != nil {
		panic(err)
	}
	return p
}

func pathFromNode(node ast.Node) (Path, error) {
	switch n := node.(type) {
	case *ast.IdentifierNode:
		if n.Value != pathRoot {
			return nil, fmt.Errorf("unexpected identifier %q", n.Value)
		}
		return Path{}, nil
	case *ast.MemberNode:
		if n.Optional {
			return nil, errors.New("optional chaining is not supported")
		}
		parent, err := pathFromNode(n.Node)
		if err != nil {
			return nil, err
		}
		key, err := keyFromNode(n.Property)
		if err != nil {
			return nil, err
		}
		return append(parent, key), nil
	default:
		return nil, fmt.Errorf("unsupported expression %T", node)
	}
}

func keyFromNode(node ast.Node) (Key, error) {
	switch n := node.(type) {
	case *ast.StringNode:
		return Field(n.Value), nil
	case *ast.IntegerNode:
		if n.Value < 0 {
			return Key{}, fmt.Errorf("negative index %d", n.Value)
		}
		return Index(n.Value), nil
	default:
		return Key{}, fmt.Errorf("unsupported segment %T", node)
	}
}
