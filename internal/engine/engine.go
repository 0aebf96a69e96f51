package engine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Engine 一次只服务一个搜索调用；并发的调用方各自 NewEngine
type Engine struct {
	tt    *transTable
	nodes int64

	Weights Weights

	log zerolog.Logger
	rng *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{
		tt:      newTransTable(),
		Weights: DefaultWeights,
		log:     zerolog.Nop(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetLogger 每完成一层迭代加深打一条 debug 日志
func (e *Engine) SetLogger(l zerolog.Logger) {
	e.log = l
}

// Seed 固定兜底随机选点的种子（测试、自对弈复现用）
func (e *Engine) Seed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}
