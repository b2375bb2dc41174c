package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v2"
)

const (
	DefaultGreenDuration   int32   = 30 // 默认绿灯时长（秒）
	DefaultYellowDuration  int32   = 5  // 默认黄灯时长（秒）
	DefaultCheckpoints     int32   = 6  // 默认预测时间点数量
	DefaultIntervalMinutes int32   = 5  // 默认预测间隔（分钟）
	DefaultStepInterval    float64 = 1  // 默认每步墙钟时间（秒）
)

// Load 读取配置
// 功能：从配置文件路径或Base64编码的配置数据中读取配置
// 参数：path-配置文件路径，data-Base64编码的配置数据
// 返回：配置对象；两者都为空时返回零值配置（全部使用默认值）
func Load(path string, data string) (Config, error) {
	var c Config
	var file []byte
	var err error
	if path != "" {
		file, err = os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config file load err: %w", err)
		}
	} else if data != "" {
		file, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return c, fmt.Errorf("config data load err: %w", err)
		}
	} else {
		return c, nil
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		return c, fmt.Errorf("config file load err: %w", err)
	}
	return c, nil
}

// RuntimeConfig 运行时配置
// 功能：存储补全默认值后的配置信息
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置

	GreenDuration  int32   // 绿灯时长
	YellowDuration int32   // 黄灯时长
	Checkpoints    []int32 // 预测时间点（秒）
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，进行配置验证并补全默认值
// 参数：config-原始配置对象
// 返回：运行时配置指针；配时或预测参数非法时返回错误
func NewRuntimeConfig(config Config) (*RuntimeConfig, error) {
	rc := &RuntimeConfig{
		All:            config,
		C:              config.Control,
		GreenDuration:  orDefault(config.Signal.GreenDuration, DefaultGreenDuration),
		YellowDuration: orDefault(config.Signal.YellowDuration, DefaultYellowDuration),
	}
	if rc.C.Step.Interval == 0 {
		rc.C.Step.Interval = DefaultStepInterval
	}
	// 墙钟间隔换算为time.Duration后至少为1ns，否则time.Ticker无法创建
	if !(rc.C.Step.Interval > 0) || rc.StepDuration() < time.Nanosecond {
		return nil, NewConfigurationError("control.step", "interval must be at least 1ns (0 means default %vs), got %v", DefaultStepInterval, rc.C.Step.Interval)
	}
	if rc.C.Step.Total < 0 || rc.C.Step.Start < 0 {
		return nil, NewConfigurationError("control.step", "start and total must not be negative, got start=%d total=%d", rc.C.Step.Start, rc.C.Step.Total)
	}
	if rc.GreenDuration < 0 || rc.YellowDuration < 0 {
		return nil, NewConfigurationError("signal", "durations must not be negative (0 means default), got green=%d yellow=%d", rc.GreenDuration, rc.YellowDuration)
	}

	n := orDefault(config.Forecast.Checkpoints, DefaultCheckpoints)
	interval := orDefault(config.Forecast.IntervalMinutes, DefaultIntervalMinutes)
	if n < 0 || interval < 0 {
		return nil, NewConfigurationError("forecast", "checkpoints and interval_minutes must not be negative (0 means default), got %d and %d", n, interval)
	}
	rc.Checkpoints = lo.Times(int(n), func(i int) int32 {
		return int32(i+1) * interval * 60
	})
	return rc, nil
}

// StepDuration 每步的墙钟时间
func (rc *RuntimeConfig) StepDuration() time.Duration {
	return time.Duration(rc.C.Step.Interval * float64(time.Second))
}

func orDefault(v, d int32) int32 {
	if v == 0 {
		return d
	}
	return v
}
