package input

import (
	"fmt"
	"os"

	"github.com/traffictimer/intersection-sim/entity/direction"
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
	"github.com/traffictimer/intersection-sim/utils/config"
	"gopkg.in/yaml.v2"
)

// Layout 路口布局
// 功能：描述方向、绿灯轮转顺序与物理信号灯，是启动时提供的静态配置表
type Layout struct {
	ID               int32                      `yaml:"id"`
	Name             string                     `yaml:"name"`
	Directions       []direction.Direction      `yaml:"directions"`
	Rotation         []int32                    `yaml:"rotation"`
	Lights           []trafficlight.SignalLight `yaml:"lights"`
	InitialDirection *int32                     `yaml:"initial_direction,omitempty"`
}

// Input 输入数据
// 功能：存储仿真所需的所有输入数据
type Input struct {
	Layout Layout
}

// Init 加载输入数据
// 功能：根据配置加载路口布局；未指定文件时使用内置默认布局
// 参数：c-配置对象
// 返回：加载完成的输入数据；文件读取或解析失败时返回错误
// 说明：配置中的signal.initial_direction优先于布局文件中的设置
func Init(c config.Config) (*Input, error) {
	res := &Input{}
	if c.Input.Layout.File != "" {
		file, err := os.ReadFile(c.Input.Layout.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load layout from file: %w", err)
		}
		if err := yaml.UnmarshalStrict(file, &res.Layout); err != nil {
			return nil, fmt.Errorf("failed to parse layout file %s: %w", c.Input.Layout.File, err)
		}
		log.Infof("layout loaded from %s", c.Input.Layout.File)
	} else {
		res.Layout = DefaultLayout()
	}
	if c.Signal.InitialDirection != nil {
		d := *c.Signal.InitialDirection
		res.Layout.InitialDirection = &d
	}
	return res, nil
}

// DefaultLayout 默认路口布局
// 功能：大学门前的四向路口，方向0（进校）不参与轮转，方向1初始为绿灯
func DefaultLayout() Layout {
	initial := int32(1)
	return Layout{
		ID:   1,
		Name: "MFU front gate",
		Directions: []direction.Direction{
			{ID: 0, Name: "Into campus"},
			{ID: 1, Name: "To Mae Sai"},
			{ID: 2, Name: "Down to Chiang Rai"},
			{ID: 3, Name: "Out of campus"},
		},
		Rotation: []int32{1, 2, 3},
		Lights: []trafficlight.SignalLight{
			{ID: 1, Direction: 0, Name: "MFU front gate (campus entrance)"},
			{ID: 2, Direction: 1, Name: "MFU front gate (to Mae Sai)"},
			{ID: 3, Direction: 2, Name: "MFU front gate (to Chiang Rai)"},
			{ID: 4, Direction: 3, Name: "MFU front gate (campus exit)"},
		},
		InitialDirection: &initial,
	}
}
