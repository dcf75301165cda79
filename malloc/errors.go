package malloc

import "fmt"
import "errors"

// ErrorOutofMemory panic value when the heap extender refuses to grow.
var ErrorOutofMemory = errors.New("malloc.outofmemory")

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
