package main

import (
	"os"

	log "github.com/treeforest/logger"
	"github.com/treeforest/rpn/internal/rpn/config"
	"github.com/treeforest/rpn/internal/rpn/diag"
	"github.com/treeforest/rpn/internal/rpn/stack"
	"github.com/treeforest/rpn/pkg/graceful"
)

func main() {
	conf, err := config.LoadFlag()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if conf.Debug {
		log.SetLevel(log.DEBUG)
	}
	interval, _ := conf.Interval()

	switch conf.Mode {
	case config.ModeTest:
		log.Info("Running test firmware...")
		cases, _ := conf.DiagCases()
		cases = append(diag.Builtin(), cases...)
		sum := diag.Run(cases, diag.NewReporter(os.Stdout, conf.Color, conf.Verbose))
		if !sum.OK() {
			log.Errorf("stack diagnostics failed: %v", sum.Failures)
		}
		graceful.IdleUntilInterrupt(interval, func() { log.Info("Idle...") }, func() {
			log.Info("test firmware stopped")
		})

	default:
		log.Info("Running production firmware...")
		operands := stack.New[stack.Entry](conf.Capacity)
		log.Debugf("operand stack ready, capacity %d", operands.Cap())
		graceful.IdleUntilInterrupt(interval, func() {}, func() {
			log.Infof("firmware stopped, %d operand(s) on the stack", operands.Len())
		})
	}
}
