package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Events  bool
	Build   bool
	Anchors bool
	Encode  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Events = boolEnv("YAMLFMT_DEBUG_EVENTS")
	d.Build = boolEnv("YAMLFMT_DEBUG_BUILD")
	d.Anchors = boolEnv("YAMLFMT_DEBUG_ANCHORS")
	d.Encode = boolEnv("YAMLFMT_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Events reports whether sources log each event they produce.
func Events() bool {
	return d.Events
}
func Build() bool {
	return d.Build
}
func Anchors() bool {
	return d.Anchors
}
func Encode() bool {
	return d.Encode
}
