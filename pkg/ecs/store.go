package ecs

import "github.com/decker502/firesim/pkg/physics"

// Entity 可被 Store 管理的实体
// Step 推进一个时间步，Alive 为 false 的实体会在下一次 Sweep 时被移除
type Entity interface {
	Step(dt float64, env physics.Environment)
	Alive() bool
}

// Store 有序、定容的实体集合
//
// 与按类型索引组件的实体管理器不同，Store 只保存同一种实体，
// 并保持插入顺序（渲染层次和固定种子下的可复现性依赖这个顺序）。
// 插入在达到容量上限时被拒绝，已有实体不受影响，计数由调用方负责。
type Store[T Entity] struct {
	items    []T
	capacity int
}

// NewStore 创建容量为 capacity 的 Store
// capacity <= 0 时不接受任何实体
func NewStore[T Entity](capacity int) *Store[T] {
	if capacity < 0 {
		capacity = 0
	}
	prealloc := capacity
	if prealloc > 1024 {
		prealloc = 1024
	}
	return &Store[T]{
		items:    make([]T, 0, prealloc),
		capacity: capacity,
	}
}

// Add 追加实体
// 返回 false 表示已达到容量上限，实体被丢弃
func (s *Store[T]) Add(e T) bool {
	if len(s.items) >= s.capacity {
		return false
	}
	s.items = append(s.items, e)
	return true
}

// Len 当前实体数
func (s *Store[T]) Len() int { return len(s.items) }

// Cap 容量上限
func (s *Store[T]) Cap() int { return s.capacity }

// SetCapacity 修改容量上限
// 新容量小于当前数量时，保留最早插入的实体
func (s *Store[T]) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	s.capacity = capacity
	if len(s.items) > capacity {
		var zero T
		for i := capacity; i < len(s.items); i++ {
			s.items[i] = zero
		}
		s.items = s.items[:capacity]
	}
}

// Items 返回内部切片，只读，不要在遍历时插入
func (s *Store[T]) Items() []T { return s.items }

// Each 按插入顺序遍历
func (s *Store[T]) Each(fn func(e T)) {
	for _, e := range s.items {
		fn(e)
	}
}

// StepAll 按插入顺序推进所有实体一个时间步
func (s *Store[T]) StepAll(dt float64, env physics.Environment) {
	for _, e := range s.items {
		e.Step(dt, env)
	}
}

// Sweep 移除所有 Alive() 为 false 的实体，保持剩余实体的相对顺序
// 返回移除数量
func (s *Store[T]) Sweep() int {
	kept := s.items[:0]
	for _, e := range s.items {
		if e.Alive() {
			kept = append(kept, e)
		}
	}

	removed := len(s.items) - len(kept)
	// 清理尾部引用，避免被移除的实体无法回收
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	return removed
}

// Clear 移除所有实体，容量不变
func (s *Store[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}
