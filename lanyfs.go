package main

import (
	"github.com/allmad/lanyfs/go/check"
	"github.com/allmad/lanyfs/go/detect"
	"github.com/allmad/lanyfs/go/mkfs"
	"github.com/chzyer/flagly"
	"github.com/chzyer/flow"
	"github.com/chzyer/logex"
)

type Lanyfs struct {
	Mkfs   *mkfs.Config   `flagly:"handler"`
	Detect *detect.Config `flagly:"handler"`
	Check  *check.Config  `flagly:"handler"`
}

func main() {
	lanyfs := new(Lanyfs)
	f := flow.New()

	flagly.Run(lanyfs, f)

	if err := f.Wait(); err != nil {
		logex.Fatal(err)
	}
}
