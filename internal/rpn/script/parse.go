package script

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/rpn/internal/rpn/stack"
)

// Parse 解析以空白分隔的栈操作脚本，例如 "1 2.5 _ swap delete 0 fill 7 range * 2"。
// 单独的字面量等价于 push。
func Parse(text string) ([]Op, error) {
	words := strings.Fields(text)
	ops := make([]Op, 0, len(words))

	for i := 0; i < len(words); i++ {
		w := strings.ToLower(words[i])
		code, isWord := lookup(w)
		if !isWord {
			e, err := ParseEntry(w)
			if err != nil {
				return nil, errors.Wrapf(err, "word %d", i)
			}
			ops = append(ops, Op{Code: PUSH, Data: e})
			continue
		}

		op := Op{Code: code}
		switch code {
		case RANGE:
			if i+2 >= len(words) {
				return nil, errors.Errorf("word %d: range needs two bounds", i)
			}
			start, err := parseBound(words[i+1], true)
			if err != nil {
				return nil, errors.Wrapf(err, "word %d", i+1)
			}
			end, err := parseBound(words[i+2], false)
			if err != nil {
				return nil, errors.Wrapf(err, "word %d", i+2)
			}
			op.Range = stack.Range{Start: start, End: end}
			i += 2
		case PUSH, FILL, DELETE:
			if i+1 >= len(words) {
				return nil, errors.Errorf("word %d: %s needs an argument", i, w)
			}
			i++
			if code == DELETE {
				n, err := strconv.Atoi(words[i])
				if err != nil {
					return nil, errors.Wrapf(err, "word %d: bad index", i)
				}
				op.Index = n
				break
			}
			e, err := ParseEntry(words[i])
			if err != nil {
				return nil, errors.Wrapf(err, "word %d", i)
			}
			op.Data = e
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ParseEntries parses a list of literals, bottom first.
func ParseEntries(text string) ([]stack.Entry, error) {
	words := strings.Fields(text)
	entries := make([]stack.Entry, 0, len(words))
	for i, w := range words {
		e, err := ParseEntry(w)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ParseEntry 解析单个字面量: "_" 为占位符，整数优先于小数
func ParseEntry(w string) (stack.Entry, error) {
	if w == "_" {
		return stack.Dummy(), nil
	}
	if i, err := strconv.ParseInt(w, 10, 32); err == nil {
		return stack.Int(int32(i)), nil
	}
	f, err := strconv.ParseFloat(w, 32)
	if err != nil {
		return stack.Entry{}, errors.Errorf("invalid literal %q", w)
	}
	return stack.Dec(float32(f)), nil
}

// Format is the inverse of Parse.
func Format(ops []Op) string {
	words := make([]string, 0, len(ops))
	for _, op := range ops {
		words = append(words, op.String())
	}
	return strings.Join(words, " ")
}

// FormatEntries 按栈底到栈顶的顺序输出
func FormatEntries(entries []stack.Entry) string {
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		words = append(words, e.String())
	}
	return strings.Join(words, " ")
}

func lookup(w string) (OPCODE, bool) {
	for code, name := range opNames {
		if name == w {
			return code, true
		}
	}
	return 0, false
}
