package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/traffictimer/intersection-sim/task"
	"github.com/traffictimer/intersection-sim/utils/config"
)

var (
	// 模拟任务名
	job string
	// 配置文件路径
	configPath string
	// 配置文件Base64编码后的数据
	configData string

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel string

	log = logrus.WithField("module", "intersection")
)

// setupLogging 运行时才修改日志格式与级别
func setupLogging() error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.0000",
	})
	level, ok := logLevels[logLevel]
	if !ok {
		return fmt.Errorf("log.level must be one of trace debug info warn error critical off, got %q", logLevel)
	}
	logrus.SetLevel(level)
	return nil
}

// newTask 读取配置并创建仿真任务
// 说明：未指定配置时使用内置默认值与默认路口布局
func newTask() (*task.Context, error) {
	c, err := config.Load(configPath, configData)
	if err != nil {
		return nil, err
	}
	log.Debugf("%+v", c)
	return task.NewContext(job, c)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "intersection",
		Short: "Fixed-rotation traffic signal simulator for a single intersection",
		Long: `intersection simulates the signal cycle of one four-way intersection.
Exactly one direction is green or yellow at a time; the others are red and
share a countdown. The green light rotates through a fixed order of directions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&job, "job", "job0", "the name of the simulation task")
	pf.StringVar(&configPath, "config", "", "config file path")
	pf.StringVar(&configData, "config-data", "", "config file base64 encoded data")
	pf.StringVar(&logLevel, "log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")
	// log.heartbeat_interval, rand.seed_offset
	pf.AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(forecastCmd())
	rootCmd.AddCommand(lightCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
