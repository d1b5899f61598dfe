package heightmap

// Effective returns the elevation a rule should see for sym:
// 'S' counts as 'a', 'E' counts as 'z', anything else is itself.
func Effective(sym byte) byte {
	switch sym {
	case Start:
		return Lowest
	case End:
		return Peak
	default:
		return sym
	}
}

// Ascend admits a step that climbs at most one level. Descents of any
// size are allowed.
//
//	next ≤ cur + 1
func Ascend(cur, next byte) bool {
	return int(next) <= int(cur)+1
}

// Descend is Ascend viewed from the other end of the step: it admits a
// step that drops at most one level, so searching backwards with Descend
// explores exactly the cells that can reach the root going forward.
//
//	cur ≤ next + 1
func Descend(cur, next byte) bool {
	return int(cur) <= int(next)+1
}

// Symbol returns a GoalFunc matching exactly sym.
func Symbol(sym byte) GoalFunc {
	return func(b byte) bool { return b == sym }
}

// AnyOf returns a GoalFunc matching any of syms.
// With no syms the goal never matches.
func AnyOf(syms ...byte) GoalFunc {
	var set [256]bool
	for _, s := range syms {
		set[s] = true
	}
	return func(b byte) bool { return set[b] }
}
