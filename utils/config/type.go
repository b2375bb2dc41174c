package config

// InputPath 指定输入数据来源的配置（文件系统）
// 功能：定义路口布局数据的输入路径
// 说明：File为空时使用内置的默认路口布局
type InputPath struct {
	File string `yaml:"file,omitempty"` // 文件路径
}

// Input 指定模拟器所有输入数据的配置项
type Input struct {
	Layout InputPath `yaml:"layout"` // 路口布局（方向、轮转顺序、信号灯）
}

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
// 说明：Total为0表示不限步数，直到外部取消
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步对应的墙钟时间（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
}

// Signal 信号灯配时配置
// 功能：定义绿灯、黄灯时长与初始绿灯方向
type Signal struct {
	GreenDuration    int32  `yaml:"green_duration,omitempty"`    // 绿灯时长（秒）
	YellowDuration   int32  `yaml:"yellow_duration,omitempty"`   // 黄灯时长（秒）
	InitialDirection *int32 `yaml:"initial_direction,omitempty"` // 初始绿灯方向，为空时使用布局中的设置
}

// Forecast 绿灯预测配置
type Forecast struct {
	Checkpoints     int32 `yaml:"checkpoints,omitempty"`      // 预测时间点数量
	IntervalMinutes int32 `yaml:"interval_minutes,omitempty"` // 相邻预测时间点的间隔（分钟）
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真系统的配置结构
// 说明：包含输入、控制、配时、预测等所有配置项
type Config struct {
	Input    Input    `yaml:"input"`              // 输入
	Control  Control  `yaml:"control"`            // 模拟过程控制
	Signal   Signal   `yaml:"signal,omitempty"`   // 信号配时
	Forecast Forecast `yaml:"forecast,omitempty"` // 预测
}
