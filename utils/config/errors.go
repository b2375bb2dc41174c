package config

import (
	"errors"
	"fmt"
)

// ConfigurationError 配置错误
// 功能：描述启动阶段发现的配置问题（方向轮转、信号灯表、配时等），属于启动致命错误
type ConfigurationError struct {
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

// NewConfigurationError 创建配置错误
func NewConfigurationError(component string, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Issue:     fmt.Sprintf(format, args...),
	}
}

// IsConfigurationError 判断错误链中是否包含ConfigurationError
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}
