package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Decode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("BLOCKYAML_DEBUG_ENCODE")
	d.Decode = boolEnv("BLOCKYAML_DEBUG_DECODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}

// SetEncode switches the encode trace and returns the previous setting.
func SetEncode(v bool) bool {
	prev := d.Encode
	d.Encode = v
	return prev
}

func Decode() bool {
	return d.Decode
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(d)
}
