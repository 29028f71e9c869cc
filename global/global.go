package global

import (
	"sort"
	"sync"
	"time"

	"gitee.com/taoJie_1/bank-agent/internal/classifier"
	"gitee.com/taoJie_1/bank-agent/internal/llm"
	"gitee.com/taoJie_1/bank-agent/internal/oss"
	"gitee.com/taoJie_1/bank-agent/internal/redis"
	"gitee.com/taoJie_1/bank-agent/model/config"
	"github.com/sirupsen/logrus"
)

const Version = "v1.2.0"

// 全局变量
// 业务逻辑禁止修改
var (
	Config      *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log         *logrus.Logger
	Tz          *time.Location
	RedisClient redis.Service
	LlmService  llm.Service
	OssService  oss.Service
	Classifier  *ClassifierHolder = new(ClassifierHolder)
	Responses   *ResponseStore    = &ResponseStore{Data: make(map[string][]string)}
	Sessions    *SessionStore     = &SessionStore{Data: make(map[string]*Session)}
)

// ResponseStore 意图到预设回复列表的内存映射, 加载后只读, 重载时整体替换
type ResponseStore struct {
	sync.RWMutex
	Data map[string][]string
}

// Get 返回意图的回复列表, 不存在时返回nil
func (s *ResponseStore) Get(intent string) []string {
	s.RLock()
	defer s.RUnlock()
	return s.Data[intent]
}

// Has 判断意图是否在已加载的词表中
func (s *ResponseStore) Has(intent string) bool {
	s.RLock()
	defer s.RUnlock()
	list, ok := s.Data[intent]
	return ok && len(list) > 0
}

// Replace 整体替换映射内容
func (s *ResponseStore) Replace(data map[string][]string) {
	s.Lock()
	defer s.Unlock()
	s.Data = data
}

// Intents 返回全部已知意图, 排序保证遍历顺序稳定
func (s *ResponseStore) Intents() []string {
	s.RLock()
	defer s.RUnlock()
	intents := make([]string, 0, len(s.Data))
	for intent := range s.Data {
		intents = append(intents, intent)
	}
	sort.Strings(intents)
	return intents
}

// ClassifierHolder 持有已加载的意图分类模型, 支持热替换
type ClassifierHolder struct {
	mu    sync.RWMutex
	model *classifier.Model
}

// Get 返回当前模型, 未加载时为nil(降级为纯规则模式)
func (h *ClassifierHolder) Get() *classifier.Model {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.model
}

func (h *ClassifierHolder) Set(m *classifier.Model) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.model = m
}
