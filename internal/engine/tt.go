package engine

type ttFlag uint8

const (
	ttExact ttFlag = iota
	ttLower
	ttUpper
)

func (f ttFlag) String() string {
	switch f {
	case ttLower:
		return "lower"
	case ttUpper:
		return "upper"
	}
	return "exact"
}

// TT 条目。Board 存整盘快照，命中时再比一次，哈希碰撞不会被当成同一局面。
type ttEntry struct {
	Board string
	Depth int
	Score int
	Flag  ttFlag
}

// 置换表只活一次选点调用，开始时清空；调用期间不设上限
type transTable struct {
	m      map[uint64]ttEntry
	probes int64
	hits   int64
}

func newTransTable() *transTable {
	return &transTable{m: make(map[uint64]ttEntry, 1<<14)}
}

func (t *transTable) clear() {
	clear(t.m)
	t.probes = 0
	t.hits = 0
}

func (t *transTable) size() int { return len(t.m) }

// probe 只接受记录深度 >= depth 的条目
func (t *transTable) probe(key uint64, board string, depth int) (ttEntry, bool) {
	t.probes++
	e, ok := t.m[key]
	if !ok || e.Board != board || e.Depth < depth {
		return ttEntry{}, false
	}
	t.hits++
	return e, true
}

// store 同一局面只让更深的结果覆盖；碰撞的不同局面直接替换
func (t *transTable) store(key uint64, board string, depth, score int, flag ttFlag) {
	old, ok := t.m[key]
	if ok && old.Board == board && depth < old.Depth {
		return
	}
	t.m[key] = ttEntry{
		Board: board,
		Depth: depth,
		Score: score,
		Flag:  flag,
	}
}

// classify 按进入节点时的原始窗口给结果定界
func classify(score, alphaOrig, betaOrig int) ttFlag {
	switch {
	case score <= alphaOrig:
		return ttUpper
	case score >= betaOrig:
		return ttLower
	default:
		return ttExact
	}
}
