package cli

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/varun-myprojects/basicLogger/aggregator"
	"github.com/varun-myprojects/basicLogger/internal/config"
	"github.com/varun-myprojects/basicLogger/sink"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Spawn concurrent producers through one aggregator",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func run(cfg *config.Config) error {
	var out sink.Sink
	if cfg.Output == "stdout" {
		out = sink.NewWriterSink(os.Stdout)
	} else {
		fs, err := sink.NewFileSink(cfg.Output)
		if err != nil {
			return err
		}
		defer fs.Close()
		out = fs
	}

	agg := aggregator.New(aggregator.Config{Sink: out})

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < cfg.Producers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := agg.Producer()
			for j := 0; j < cfg.Messages; j++ {
				p.Append(fmt.Sprintf("producer %d message %d:", i, j))
				for k := 0; k < cfg.Parts; k++ {
					p.Append(" ")
					p.Append(k)
				}
				p.Append("\n")
				p.Flush()
				if cfg.DelayMS > 0 {
					time.Sleep(time.Duration(cfg.DelayMS) * time.Millisecond)
				}
			}
		}(i)
	}
	wg.Wait()

	if err := agg.Close(); err != nil {
		return err
	}

	snap := agg.Stats()
	fmt.Fprintf(os.Stderr, "done in %v: %d entries appended, %d executed, %d writes, %d sink errors\n",
		time.Since(start).Round(time.Millisecond),
		snap.Appended, snap.Executed, snap.Flushes, snap.SinkErrors)
	return nil
}
