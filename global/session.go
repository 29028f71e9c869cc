package global

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/bank-agent/model/enum"
)

// Session 是单个会话的上下文记忆: 最多一个待定流程及其已收集的实体。
// 同一会话内的请求是串行的, 跨会话互不共享, 因此Session本身不加锁。
type Session struct {
	ID          string
	PendingFlow enum.FlowState
	Pending     map[enum.Slot]string
	LastActive  int64
}

// EnterFlow 进入一个多轮流程, 覆盖之前的流程(同一时刻只允许一个)
func (s *Session) EnterFlow(flow enum.FlowState) {
	s.PendingFlow = flow
	s.Pending = make(map[enum.Slot]string)
}

// ClearFlow 结束当前流程并丢弃部分收集的实体
func (s *Session) ClearFlow() {
	s.PendingFlow = enum.FlowNone
	s.Pending = nil
}

// SessionStore 进程内的会话注册表, 不做任何持久化
type SessionStore struct {
	sync.RWMutex
	Data map[string]*Session
}

// GetOrCreate 返回指定会话, 不存在时新建(初始状态无待定流程)
func (s *SessionStore) GetOrCreate(id string) *Session {
	s.RLock()
	sess, ok := s.Data[id]
	s.RUnlock()
	if ok {
		sess.LastActive = time.Now().Unix()
		return sess
	}

	s.Lock()
	defer s.Unlock()
	if sess, ok = s.Data[id]; ok {
		sess.LastActive = time.Now().Unix()
		return sess
	}
	sess = &Session{
		ID:          id,
		PendingFlow: enum.FlowNone,
		LastActive:  time.Now().Unix(),
	}
	s.Data[id] = sess
	return sess
}

// PurgeIdle 移除超过空闲阈值的会话, 返回移除数量
func (s *SessionStore) PurgeIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle).Unix()

	s.Lock()
	defer s.Unlock()
	removed := 0
	for id, sess := range s.Data {
		if sess.LastActive < cutoff {
			delete(s.Data, id)
			removed++
		}
	}
	return removed
}
