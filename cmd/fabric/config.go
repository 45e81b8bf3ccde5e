package main

import (
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/spf13/cobra"
)

// flagConfig is a schuko.Configuration backed by the flags of a command.
type flagConfig struct {
	cmd      *cobra.Command
	flags    map[string]string // configuration key -> flag name
	defaults map[string]string
}

var _ schuko.Configuration = &flagConfig{}

func newFlagConfig(cmd *cobra.Command) *flagConfig {
	conf := &flagConfig{
		cmd: cmd,
		flags: map[string]string{
			"tracelevel.root":   "trace",
			"tracelevel.fabric": "trace",
			"color":             "color",
			"format":            "format",
		},
	}
	conf.InitDefaults()
	return conf
}

// InitDefaults is part of interface schuko.Configuration.
func (c *flagConfig) InitDefaults() {
	c.defaults = map[string]string{
		"tracing.adapter": "go",
	}
}

// IsSet is part of interface schuko.Configuration.
func (c *flagConfig) IsSet(key string) bool {
	return c.GetString(key) != ""
}

// GetString is part of interface schuko.Configuration.
func (c *flagConfig) GetString(key string) string {
	if name, ok := c.flags[key]; ok {
		if f := c.cmd.Flags().Lookup(name); f != nil {
			return f.Value.String()
		}
	}
	return c.defaults[key]
}

// GetInt is part of interface schuko.Configuration.
func (c *flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c.GetString(key))
	return n
}

// GetBool is part of interface schuko.Configuration.
func (c *flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.GetString(key))
	return b
}

// IsInteractive is part of interface schuko.Configuration.
func (c *flagConfig) IsInteractive() bool {
	return false
}
