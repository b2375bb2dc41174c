// 方向注册表：参与轮转的方向及其固定顺序，与物理信号灯对象无关
package direction

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/traffictimer/intersection-sim/utils/config"
)

// Direction 交通方向
// 功能：表示一条共享路口的交通流向，拥有固定的可读名称
type Direction struct {
	ID   int32  `yaml:"id"`
	Name string `yaml:"name"`
}

func (d Direction) String() string {
	return fmt.Sprintf("Direction{%d:%s}", d.ID, d.Name)
}

func newConfigurationError(format string, args ...any) *config.ConfigurationError {
	return config.NewConfigurationError("direction registry", format, args...)
}

// Registry 方向注册表
// 功能：保存所有方向与绿灯轮转顺序，构建后不可修改
// 说明：不在轮转中的方向允许存在（对应的信号灯始终为红灯）
type Registry struct {
	directions map[int32]Direction
	rotation   []int32
}

// NewRegistry 创建方向注册表
// 功能：校验方向列表与轮转顺序并构建注册表
// 参数：directions-全部方向，rotation-获得绿灯的方向ID顺序
// 返回：注册表；轮转为空、方向ID重复、轮转引用未知方向或重复时返回ConfigurationError
func NewRegistry(directions []Direction, rotation []int32) (*Registry, error) {
	if len(rotation) == 0 {
		return nil, newConfigurationError("rotation is empty")
	}
	if dup := lo.FindDuplicates(lo.Map(directions, func(d Direction, _ int) int32 { return d.ID })); len(dup) > 0 {
		return nil, newConfigurationError("duplicated direction ids %v", dup)
	}
	for _, d := range directions {
		if d.Name == "" {
			return nil, newConfigurationError("direction %d has no name", d.ID)
		}
	}
	if dup := lo.FindDuplicates(rotation); len(dup) > 0 {
		return nil, newConfigurationError("rotation repeats directions %v", dup)
	}
	r := &Registry{
		directions: lo.SliceToMap(directions, func(d Direction) (int32, Direction) {
			return d.ID, d
		}),
		rotation: append([]int32(nil), rotation...),
	}
	for _, id := range rotation {
		if _, ok := r.directions[id]; !ok {
			return nil, newConfigurationError("rotation references unknown direction %d", id)
		}
	}
	return r, nil
}

// Get 根据ID获取方向，如果不存在则返回false
func (r *Registry) Get(id int32) (Direction, bool) {
	d, ok := r.directions[id]
	return d, ok
}

// MustGet 根据ID获取方向，如果不存在则panic
func (r *Registry) MustGet(id int32) Direction {
	d, ok := r.directions[id]
	if !ok {
		log.Panicf("no id %d in direction registry", id)
	}
	return d
}

// Rotation 返回轮转顺序的副本
func (r *Registry) Rotation() []int32 {
	return append([]int32(nil), r.rotation...)
}

// Len 轮转中的方向数
func (r *Registry) Len() int {
	return len(r.rotation)
}

// IndexOf 方向在轮转中的位置，不在轮转中返回-1
func (r *Registry) IndexOf(id int32) int {
	return lo.IndexOf(r.rotation, id)
}

// InRotation 判断方向是否参与轮转
func (r *Registry) InRotation(id int32) bool {
	return r.IndexOf(id) >= 0
}

// First 轮转中的第一个方向
func (r *Registry) First() int32 {
	return r.rotation[0]
}

// Next 轮转中id之后的方向（循环）
// 说明：id不在轮转中时返回第一个方向
func (r *Registry) Next(id int32) int32 {
	i := r.IndexOf(id)
	return r.rotation[(i+1)%len(r.rotation)]
}
