package entity

import (
	"github.com/traffictimer/intersection-sim/clock"
	"github.com/traffictimer/intersection-sim/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	RuntimeConfig() *config.RuntimeConfig
	Junction() IJunction
}
