// Package events 提供实体事件的观察者注册表
//
// 注册表把 (实体, 事件类型) 映射到处理函数，由系统在主循环中同步分发。
// 同一实体、同一事件类型只保留一个处理函数，重复注册会覆盖。
package events

import "github.com/decker502/duckpond/pkg/ecs"

// Kind 事件类型
type Kind int

const (
	// EventHover 鼠标进入实体
	EventHover Kind = iota
	// EventOut 鼠标离开实体
	EventOut
)

// String 返回事件类型名称
func (k Kind) String() string {
	switch k {
	case EventHover:
		return "hover"
	case EventOut:
		return "out"
	default:
		return "unknown"
	}
}

// Handler 事件处理函数
type Handler func(id ecs.EntityID)

// Registry 实体事件注册表
type Registry struct {
	handlers map[ecs.EntityID]map[Kind]Handler
}

// NewRegistry 创建空的事件注册表
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[ecs.EntityID]map[Kind]Handler),
	}
}

// On 注册处理函数，handler 为 nil 时等价于 Off
func (r *Registry) On(id ecs.EntityID, kind Kind, handler Handler) {
	if handler == nil {
		r.Off(id, kind)
		return
	}
	byKind, ok := r.handlers[id]
	if !ok {
		byKind = make(map[Kind]Handler)
		r.handlers[id] = byKind
	}
	byKind[kind] = handler
}

// Hover 注册悬停处理函数
func (r *Registry) Hover(id ecs.EntityID, handler Handler) {
	r.On(id, EventHover, handler)
}

// Out 注册离开处理函数
func (r *Registry) Out(id ecs.EntityID, handler Handler) {
	r.On(id, EventOut, handler)
}

// Off 移除处理函数
func (r *Registry) Off(id ecs.EntityID, kind Kind) {
	if byKind, ok := r.handlers[id]; ok {
		delete(byKind, kind)
		if len(byKind) == 0 {
			delete(r.handlers, id)
		}
	}
}

// RemoveEntity 移除实体的所有处理函数
func (r *Registry) RemoveEntity(id ecs.EntityID) {
	delete(r.handlers, id)
}

// Has 检查是否注册了处理函数
func (r *Registry) Has(id ecs.EntityID, kind Kind) bool {
	_, ok := r.handlers[id][kind]
	return ok
}

// Dispatch 同步调用处理函数，返回是否有处理函数被调用
func (r *Registry) Dispatch(id ecs.EntityID, kind Kind) bool {
	handler, ok := r.handlers[id][kind]
	if !ok {
		return false
	}
	handler(id)
	return true
}
