package decode

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/blockyaml/debug"
	"github.com/signadot/blockyaml/ir"
)

// Decode decodes a single JSON document into an IR tree. Numbers that do
// not fit an int64, uint64 or float64 are ErrUnsupported.
func Decode(data []byte) (*ir.Node, error) {
	if err := checkNumbers(data); err != nil {
		return nil, err
	}
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if debug.Decode() {
		debug.Logf("decode: %T\n", v)
	}
	node, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	if debug.Decode() {
		logCounts(node)
	}
	return node, nil
}

// FromAny converts a decoded Go value into an IR tree.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x), nil
	case []any:
		return fromSlice(x)
	case yaml.MapSlice:
		return fromMapSlice(x)
	case map[string]any:
		return fromMap(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// checkNumbers rejects number tokens that goccy could not convert. Those come
// back as plain (unquoted) strings, which JSON otherwise never produces.
func checkNumbers(data []byte) error {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	for _, doc := range file.Docs {
		if doc.Body == nil {
			continue
		}
		for _, n := range ast.Filter(ast.StringType, doc.Body) {
			tk := n.GetToken()
			if tk == nil || tk.Type != token.StringType {
				continue
			}
			if isNumberText(tk.Value) {
				return fmt.Errorf("%w: number %s out of range", ErrUnsupported, tk.Value)
			}
		}
	}
	return nil
}

func isNumberText(s string) bool {
	if s == "" {
		return false
	}
	if c := s[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(s))
}

func fromUint(u uint64) (*ir.Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: integer %d overflows int64", ErrUnsupported, u)
	}
	return ir.FromInt(int64(u)), nil
}

func fromSlice(vs []any) (*ir.Node, error) {
	res := ir.NewSequence()
	for i, v := range vs {
		y, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		res.Append(y)
	}
	return res, nil
}

func fromMapSlice(ms yaml.MapSlice) (*ir.Node, error) {
	res := ir.NewMapping()
	for _, item := range ms {
		key, err := keyString(item.Key)
		if err != nil {
			return nil, err
		}
		y, err := FromAny(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		res.Set(key, y)
	}
	return res, nil
}

func fromMap(m map[string]any) (*ir.Node, error) {
	res := ir.NewMapping()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		y, err := FromAny(m[key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		res.Set(key, y)
	}
	return res, nil
}

// keyString returns the text of a scalar mapping key.
func keyString(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: key of type %T", ErrUnsupported, k)
	}
}

func logCounts(node *ir.Node) {
	counts := map[string]any{}
	_ = node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		n, _ := counts[y.Type.String()].(int)
		counts[y.Type.String()] = n + 1
		return true, nil
	})
	debug.Logf("decode: node counts %v\n", counts)
}
