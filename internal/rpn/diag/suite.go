package diag

import "github.com/treeforest/rpn/internal/rpn/stack"

func ints(v ...int32) []stack.Entry {
	out := make([]stack.Entry, 0, len(v))
	for _, i := range v {
		out = append(out, stack.Int(i))
	}
	return out
}

// Builtin 返回内置的诊断用例
func Builtin() []Case {
	return []Case{
		// 容器
		{Name: "stack_new", Capacity: 4, Want: Want{Len: 0, Cap: 4}},
		{Name: "stack_with", Capacity: 4, With: ints(1, 2, 3), Want: Want{Len: 3, Cap: 4, Contents: ints(1, 2, 3)}},
		{Name: "stack_with_overflow", Capacity: 2, With: ints(1, 2, 3), Want: Want{Err: stack.Overflow}},
		{Name: "stack_capacity", Capacity: 8, Want: Want{Cap: 8}},
		{Name: "stack_len", Capacity: 5, With: ints(10, 20), Want: Want{Len: 2}},
		{Name: "stack_clear", Capacity: 4, With: ints(1, 2, 3), Script: "clear", Want: Want{Len: 0, Contents: ints()}},
		{Name: "stack_fill", Capacity: 3, With: ints(1), Script: "fill 7", Want: Want{Len: 3, Contents: ints(7, 7, 7)}},

		// 基本操作
		{Name: "push", Capacity: 4, With: ints(1, 2, 3), Script: "4", Want: Want{Len: 4, Contents: ints(1, 2, 3, 4)}},
		{Name: "push_overflow", Capacity: 4, With: ints(1, 2, 3, 4), Script: "5",
			Want: Want{Len: 4, Contents: ints(1, 2, 3, 4), Err: stack.Overflow}},
		{Name: "pop", Capacity: 4, With: ints(1, 2, 3, 4), Script: "pop", Want: Want{Len: 3, Output: ints(4)}},
		{Name: "pop_underflow", Capacity: 4, Script: "pop", Want: Want{Len: 0, Err: stack.Underflow}},
		{Name: "pop_lifo", Capacity: 4, Script: "1 2 3 pop pop pop", Want: Want{Len: 0, Output: ints(3, 2, 1)}},
		{Name: "peek", Capacity: 4, With: ints(1, 2), Script: "peek", Want: Want{Len: 2, Output: ints(2)}},
		{Name: "peek_empty", Capacity: 4, Script: "peek", Want: Want{Len: 0, Err: stack.Empty}},
		{Name: "peek_range_all", Capacity: 4, With: ints(1, 2, 3), Script: "range * *", Want: Want{Len: 3, Output: ints(1, 2, 3)}},
		{Name: "peek_range_inclusive", Capacity: 4, With: ints(1, 2, 3), Script: "range (0 1]", Want: Want{Len: 3, Output: ints(2)}},
		{Name: "peek_range_reversed", Capacity: 4, With: ints(1, 2, 3), Script: "range 2 1",
			Want: Want{Len: 3, Output: ints(), Err: stack.InvalidRange}},
		{Name: "peek_range_past_len", Capacity: 4, With: ints(1, 2, 3), Script: "range 0 4",
			Want: Want{Len: 3, Err: stack.InvalidRange}},
		{Name: "peek_range_negative", Capacity: 4, With: ints(1, 2, 3), Script: "range -1 *",
			Want: Want{Len: 3, Err: stack.InvalidStartIndex}},

		// 高级操作
		{Name: "duplicate", Capacity: 4, With: ints(1, 3, 2), Script: "dup", Want: Want{Len: 4, Contents: ints(1, 3, 2, 2)}},
		{Name: "duplicate_overflow", Capacity: 4, With: ints(1, 3, 2, 2), Script: "dup",
			Want: Want{Len: 4, Contents: ints(1, 3, 2, 2), Err: stack.Overflow}},
		{Name: "duplicate_empty", Capacity: 4, Script: "dup", Want: Want{Len: 0, Err: stack.Empty}},
		{Name: "delete_at", Capacity: 4, With: ints(10, 20, 30), Script: "delete 1",
			Want: Want{Len: 2, Contents: ints(10, 30), Output: ints(20)}},
		{Name: "delete_at_past_top", Capacity: 4, With: ints(10, 20), Script: "delete 2",
			Want: Want{Len: 2, Contents: ints(10, 20), Err: stack.InvalidEndIndex}},
		{Name: "delete_at_empty", Capacity: 4, Script: "delete 0", Want: Want{Len: 0, Err: stack.Empty}},
		{Name: "swap", Capacity: 4, With: ints(1, 2, 3), Script: "swap", Want: Want{Len: 3, Contents: ints(1, 3, 2)}},
		{Name: "swap_involution", Capacity: 4, With: ints(1, 2, 3), Script: "swap swap", Want: Want{Len: 3, Contents: ints(1, 2, 3)}},
		{Name: "swap_single", Capacity: 4, With: ints(1), Script: "swap",
			Want: Want{Len: 1, Contents: ints(1), Err: stack.NotEnoughElements}},
		{Name: "swap_empty", Capacity: 4, Script: "swap", Want: Want{Len: 0, Err: stack.Empty}},
		{Name: "over", Capacity: 4, With: ints(1, 2), Script: "over", Want: Want{Len: 3, Contents: ints(1, 2, 1)}},
		{Name: "over_single", Capacity: 4, With: ints(1), Script: "over",
			Want: Want{Len: 1, Err: stack.NotEnoughElements}},
		{Name: "over_empty", Capacity: 4, Script: "over", Want: Want{Len: 0, Err: stack.Empty}},
		{Name: "tuck", Capacity: 4, With: ints(1, 2), Script: "tuck", Want: Want{Len: 3, Contents: ints(2, 1, 2)}},
		{Name: "tuck_single", Capacity: 4, With: ints(9), Script: "tuck", Want: Want{Len: 2, Contents: ints(9, 9)}},
		{Name: "tuck_overflow", Capacity: 2, With: ints(1, 2), Script: "tuck",
			Want: Want{Len: 2, Contents: ints(1, 2), Err: stack.Overflow}},

		// 容量为 4 的完整场景
		{Name: "scenario_push_full", Capacity: 4, With: ints(1, 2, 3), Script: "4 5",
			Want: Want{Len: 4, Contents: ints(1, 2, 3, 4), Err: stack.Overflow}},
		{Name: "scenario", Capacity: 4, With: ints(1, 2, 3), Script: "4 pop swap dup",
			Want: Want{Len: 4, Contents: ints(1, 3, 2, 2), Output: ints(4)}},
		{Name: "scenario_duplicate_full", Capacity: 4, With: ints(1, 2, 3), Script: "4 pop swap dup dup",
			Want: Want{Len: 4, Contents: ints(1, 3, 2, 2), Output: ints(4), Err: stack.Overflow}},
	}
}
