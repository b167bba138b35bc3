package parameter

import "time"

// Logging
const (
	LogDir     = "logs"
	LogFile    = "snake.log"
	MaxLogSize = 10 * 1024 * 1024
)

// ConfigFile is the default config path, relative to the working directory
const ConfigFile = "snake.toml"

// MonitorStopTimeout bounds the wait for the input monitor after the terminal is finalized
const MonitorStopTimeout = 200 * time.Millisecond
