package webserve

import (
	"os"
	"syscall"
)

// terminationSignals are the signals treated as a request to stop
// serving. SIGINT covers Ctrl-C, SIGTERM a polite kill.
var terminationSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}
