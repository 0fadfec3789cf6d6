package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// yamlStore 在 gdata 中以 YAML 保存单个对象属性
// manager 为 nil 时进入降级模式：读取视为不存在，写入静默成功
type yamlStore struct {
	manager  *gdata.Manager
	object   string
	property string
}

// load 读取并反序列化到 out
// 返回是否存在已保存的数据
func (s yamlStore) load(out any) (bool, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(s.object, s.property) {
		return false, nil
	}
	data, err := s.manager.LoadObjectProp(s.object, s.property)
	if err != nil {
		return true, fmt.Errorf("load %s/%s: %w", s.object, s.property, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("unmarshal %s/%s: %w", s.object, s.property, err)
	}
	return true, nil
}

// save 序列化 in 并写入
func (s yamlStore) save(in any) error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", s.object, s.property, err)
	}
	if err := s.manager.SaveObjectProp(s.object, s.property, data); err != nil {
		return fmt.Errorf("save %s/%s: %w", s.object, s.property, err)
	}
	return nil
}
