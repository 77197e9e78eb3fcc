package config

import "fmt"

const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return fmt.Errorf("log level %d out of range [%d, %d]", c.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("log time format must not be empty")
	}
	return nil
}
