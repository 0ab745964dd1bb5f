// Command apdcalc evaluates arbitrary-precision decimal expressions.
//
//	apdcalc div 1 3 --precision 20
//	apdcalc sqrt 2
//	apdcalc list
package main

import (
	"os"

	"github.com/golang/glog"

	"github.com/avdva/apdecimal/cmd/apdcalc/cli"
)

func main() {
	err := cli.Main().Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
