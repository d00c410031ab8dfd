package game

import (
	"log"
	"sort"
)

// 帧回调优先级（数值越小越先执行）
// 输入采样必须先于平滑层，平滑层先于装饰变换
const (
	PriorityInput     = 0
	PrioritySmoothing = 10
	PriorityScene     = 20
	PriorityEffects   = 30
)

// FrameFunc 每帧回调，dt 为本帧时间增量（秒）
type FrameFunc func(dt float64)

// FrameHandle 帧回调注册句柄
// 通过 Unregister 注销，重复注销无副作用
type FrameHandle struct {
	scheduler *FrameScheduler
	name      string
	priority  int
	seq       uint64
	fn        FrameFunc
	active    bool
}

// Name 返回注册名称（用于日志）
func (h *FrameHandle) Name() string {
	return h.name
}

// Active 回调是否仍处于注册状态
func (h *FrameHandle) Active() bool {
	return h.active
}

// Unregister 注销回调
// 可以在 Tick 期间调用：被注销的回调在本次 Tick 的剩余部分也不会再执行
func (h *FrameHandle) Unregister() {
	if h == nil || !h.active {
		return
	}
	h.active = false
	h.scheduler.remove(h)
}

// FrameScheduler 每帧回调调度器
//
// 取代框架驱动的"动画循环"：显式的注册/注销列表，每个 tick 调用一次。
// 执行顺序确定：先按优先级，同优先级按注册先后。
// 只在游戏主循环（单 goroutine）中使用，不加锁。
type FrameScheduler struct {
	handles []*FrameHandle
	nextSeq uint64
	ticking bool
	dirty   bool
}

// NewFrameScheduler 创建调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Register 注册每帧回调
func (s *FrameScheduler) Register(name string, priority int, fn FrameFunc) *FrameHandle {
	h := &FrameHandle{
		scheduler: s,
		name:      name,
		priority:  priority,
		seq:       s.nextSeq,
		fn:        fn,
		active:    true,
	}
	s.nextSeq++

	// 写时复制：Tick 正在遍历的快照不受影响
	handles := make([]*FrameHandle, 0, len(s.handles)+1)
	handles = append(handles, s.handles...)
	handles = append(handles, h)
	sort.SliceStable(handles, func(i, j int) bool {
		a, b := handles[i], handles[j]
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})
	s.handles = handles
	return h
}

// remove 从列表中移除句柄
// Tick 期间只做标记，Tick 结束后统一压缩，避免遍历时修改切片
func (s *FrameScheduler) remove(h *FrameHandle) {
	if s.ticking {
		s.dirty = true
		return
	}
	s.compact()
}

func (s *FrameScheduler) compact() {
	kept := make([]*FrameHandle, 0, len(s.handles))
	for _, h := range s.handles {
		if h.active {
			kept = append(kept, h)
		}
	}
	s.handles = kept
	s.dirty = false
}

// Tick 按顺序执行所有活动回调
// Tick 期间新注册的回调从下一帧开始执行
func (s *FrameScheduler) Tick(dt float64) {
	s.ticking = true
	snapshot := s.handles
	for _, h := range snapshot {
		if h.active {
			h.fn(dt)
		}
	}
	s.ticking = false
	if s.dirty {
		s.compact()
	}
}

// Len 返回活动回调数量
func (s *FrameScheduler) Len() int {
	n := 0
	for _, h := range s.handles {
		if h.active {
			n++
		}
	}
	return n
}

// Names 返回按执行顺序排列的活动回调名称（调试用）
func (s *FrameScheduler) Names() []string {
	names := make([]string, 0, len(s.handles))
	for _, h := range s.handles {
		if h.active {
			names = append(names, h.name)
		}
	}
	return names
}

// Scope 作用域资源
//
// 挂载时获取的资源（帧回调、后台请求的取消函数等）登记到 Scope，
// 卸载时 Close 按后进先出顺序全部释放，且只释放一次。
type Scope struct {
	name     string
	releases []func()
	closed   bool
}

// NewScope 创建作用域
func NewScope(name string) *Scope {
	return &Scope{name: name}
}

// Add 登记释放函数
// 作用域已关闭时立即执行释放函数
func (sc *Scope) Add(release func()) {
	if sc.closed {
		release()
		return
	}
	sc.releases = append(sc.releases, release)
}

// Track 登记帧回调句柄，Close 时自动注销
func (sc *Scope) Track(h *FrameHandle) *FrameHandle {
	sc.Add(h.Unregister)
	return h
}

// Closed 是否已关闭
func (sc *Scope) Closed() bool {
	return sc.closed
}

// Close 释放所有登记的资源
func (sc *Scope) Close() {
	if sc.closed {
		return
	}
	sc.closed = true
	for i := len(sc.releases) - 1; i >= 0; i-- {
		sc.releases[i]()
	}
	log.Printf("[Scope] %s released %d resources", sc.name, len(sc.releases))
	sc.releases = nil
}
