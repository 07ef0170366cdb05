package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Serialize bool
	Detect    bool
	Cache     bool
	Patch     bool
	Query     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DX_DEBUG_PARSE")
	d.Serialize = boolEnv("DX_DEBUG_SERIALIZE")
	d.Detect = boolEnv("DX_DEBUG_DETECT")
	d.Cache = boolEnv("DX_DEBUG_CACHE")
	d.Patch = boolEnv("DX_DEBUG_PATCH")
	d.Query = boolEnv("DX_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Serialize() bool {
	return d.Serialize
}
func Detect() bool {
	return d.Detect
}
func Cache() bool {
	return d.Cache
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
