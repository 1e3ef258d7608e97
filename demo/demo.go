package main

import (
	"github.com/ailidani/linear"
	"github.com/ailidani/linear/log"
)

func main() {
	config := linear.Init()
	log.Infof("demo started with config %v", config)

	m := linear.NewManager(config)
	if err := m.Run(); err != nil {
		log.Fatal(err)
	}
	log.Info("demonstration complete")
}
