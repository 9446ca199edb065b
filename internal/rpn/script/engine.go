package script

import (
	"github.com/pkg/errors"
	log "github.com/treeforest/logger"
	"github.com/treeforest/rpn/internal/rpn/stack"
)

// Engine 基于栈的脚本执行引擎，只做栈操作，不做算术
type Engine struct {
	Ops    []Op
	Output []stack.Entry // POP、PEEK、DELETE、RANGE 取出的值
	Failed int           // 出错的操作下标，成功时为 -1
}

func New(ops []Op) *Engine {
	return &Engine{Ops: ops, Failed: -1}
}

// Compile parses text into a ready-to-run engine.
func Compile(text string) (*Engine, error) {
	ops, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return New(ops), nil
}

// Run executes the ops in order against st and stops at the first failing
// op. The returned error wraps the stack error, so errors.Is and
// stack.KindOf still see its kind.
func (e *Engine) Run(st *stack.Stack[stack.Entry]) error {
	e.Output = e.Output[:0]
	e.Failed = -1

	for pc, op := range e.Ops {
		log.Debugf("script: [%d] %s (len=%d)", pc, op, st.Len())
		if err := e.exec(st, op); err != nil {
			e.Failed = pc
			return errors.Wrapf(err, "op %d (%s)", pc, op)
		}
	}
	return nil
}

func (e *Engine) exec(st *stack.Stack[stack.Entry], op Op) error {
	switch op.Code {
	case PUSH:
		return st.Push(op.Data)
	case POP:
		v, err := st.Pop()
		if err != nil {
			return err
		}
		e.Output = append(e.Output, v)
	case PEEK:
		v, ok := st.Peek()
		if !ok {
			return stack.ErrEmpty
		}
		e.Output = append(e.Output, v)
	case DUP:
		return st.Duplicate()
	case SWAP:
		return st.Swap()
	case OVER:
		return st.Over()
	case TUCK:
		return st.Tuck()
	case DELETE:
		v, err := st.DeleteAt(op.Index)
		if err != nil {
			return err
		}
		e.Output = append(e.Output, v)
	case RANGE:
		v, err := st.PeekRange(op.Range)
		if err != nil {
			return err
		}
		e.Output = append(e.Output, v...)
	case CLEAR:
		st.Clear()
	case FILL:
		st.Fill(op.Data)
	default:
		// unknown op code
		return errors.Errorf("unknown op code %d", byte(op.Code))
	}
	return nil
}
