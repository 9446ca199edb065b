package diag

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/treeforest/rpn/internal/rpn/script"
	"github.com/treeforest/rpn/internal/rpn/stack"
)

// Case 一个诊断用例：在新建的栈上执行脚本并与期望值比较
type Case struct {
	Name     string
	Capacity int
	With     []stack.Entry // 初始内容，栈底在前
	Script   string
	Want     Want
}

// Want holds the expected observations. Contents and Output are compared
// only when non-nil. When the stack itself cannot be built (With overflows)
// only Err is compared.
type Want struct {
	Len      int
	Cap      int // 0 表示与 Capacity 相同
	Contents []stack.Entry
	Output   []stack.Entry
	Err      stack.Kind // 0 表示不应出错
}

// Result 一次执行的观测值
type Result struct {
	Built    bool
	Len      int
	Cap      int
	Contents []stack.Entry
	Output   []stack.Entry
	Err      error
	Invalid  error // Validate 的结果
}

// Execute runs c on a fresh stack. It returns an error only when the case
// itself is malformed (bad script or capacity); stack failures are part of
// the Result.
func (c Case) Execute() (Result, error) {
	var res Result
	if c.Capacity <= 0 {
		return res, errors.Errorf("case %s: capacity must be positive", c.Name)
	}
	engine, err := script.Compile(c.Script)
	if err != nil {
		return res, errors.Wrapf(err, "case %s", c.Name)
	}

	st, err := stack.With(c.Capacity, c.With...)
	if err != nil {
		res.Err = err
		return res, nil
	}
	res.Built = true
	res.Err = engine.Run(st)
	res.Output = append([]stack.Entry{}, engine.Output...)
	res.Len = st.Len()
	res.Cap = st.Cap()
	res.Invalid = st.Validate()
	if view, err := st.PeekRange(stack.All()); err == nil {
		res.Contents = append([]stack.Entry{}, view...)
	} else {
		res.Invalid = err
	}
	return res, nil
}

// Check 返回观测值与期望值的所有差异
func (c Case) Check(res Result) []string {
	var problems []string
	gotKind := kindOf(res.Err)
	if gotKind != c.Want.Err {
		problems = append(problems, fmt.Sprintf("error: want %s, got %s", kindName(c.Want.Err), describe(res.Err)))
	}
	if !res.Built {
		return problems
	}

	if res.Invalid != nil {
		problems = append(problems, fmt.Sprintf("state: %v", res.Invalid))
	}
	if res.Len != c.Want.Len {
		problems = append(problems, fmt.Sprintf("len: want %d, got %d", c.Want.Len, res.Len))
	}
	wantCap := c.Want.Cap
	if wantCap == 0 {
		wantCap = c.Capacity
	}
	if res.Cap != wantCap {
		problems = append(problems, fmt.Sprintf("capacity: want %d, got %d", wantCap, res.Cap))
	}
	if c.Want.Contents != nil && !equal(c.Want.Contents, res.Contents) {
		problems = append(problems, fmt.Sprintf("contents: want [%s], got [%s]",
			script.FormatEntries(c.Want.Contents), script.FormatEntries(res.Contents)))
	}
	if c.Want.Output != nil && !equal(c.Want.Output, res.Output) {
		problems = append(problems, fmt.Sprintf("output: want [%s], got [%s]",
			script.FormatEntries(c.Want.Output), script.FormatEntries(res.Output)))
	}
	return problems
}

func kindOf(err error) stack.Kind {
	if err == nil {
		return 0
	}
	k, ok := stack.KindOf(err)
	if !ok {
		// 非栈错误，不会与任何期望匹配
		return stack.Kind(255)
	}
	return k
}

func kindName(k stack.Kind) string {
	if k == 0 {
		return "none"
	}
	return k.String()
}

func describe(err error) string {
	if err == nil {
		return "none"
	}
	return err.Error()
}

func equal(a, b []stack.Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
