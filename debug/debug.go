package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan   bool
	Derive bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("CPP2CAPNP_DEBUG_SCAN")
	d.Derive = boolEnv("CPP2CAPNP_DEBUG_DERIVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Derive() bool {
	return d.Derive
}
