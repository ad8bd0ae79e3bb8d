package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/scdb"
	"github.com/sidechain-labs/scdb/sidechain"
	"github.com/sidechain-labs/scdb/telemetry"
)

var (
	replayFile string
	cfg        = DefaultConfig()
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayFile, "file", "f", "", "path to a JSON block replay file (required)")
	replayCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn, or error (validated only; the logger level follows SCDB_DEBUG)")
	replayCmd.Flags().BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "register prometheus metrics for the run")
	replayCmd.MarkFlagRequired("file")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a JSON block sequence through SCDB and print the resulting state",
	Run:   replayRun,
}

// replayBlock is one entry of the replay file: a height, a hex block
// hash, and the coinbase output scripts, each hex-encoded.
type replayBlock struct {
	Height    int32    `json:"height"`
	BlockHash string   `json:"block_hash"`
	Outputs   []string `json:"outputs"`
}

func replayRun(cmd *cobra.Command, args []string) {
	if err := ValidateConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	log, err := telemetry.New("INSPECT")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer log.Sync()

	raw, err := os.ReadFile(replayFile)
	if err != nil {
		log.Fatalw("read replay file", "error", err)
	}

	var blocks []replayBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		log.Fatalw("parse replay file", "error", err)
	}

	opts := []scdb.Option{scdb.WithLogger(log)}
	if cfg.MetricsEnabled {
		opts = append(opts, scdb.WithMetrics(scdb.NewMetrics(prometheus.NewRegistry())))
	}
	db := scdb.New(opts...)

	for _, b := range blocks {
		hashBytes, err := hex.DecodeString(b.BlockHash)
		if err != nil || len(hashBytes) != 32 {
			log.Fatalw("bad block_hash", "height", b.Height, "block_hash", b.BlockHash)
		}
		var blockHash hashing.Hash256
		copy(blockHash[:], hashBytes)

		outputs := make([]scdb.Output, 0, len(b.Outputs))
		for _, hexScript := range b.Outputs {
			scriptBytes, err := hex.DecodeString(hexScript)
			if err != nil {
				log.Fatalw("bad output script", "height", b.Height, "script", hexScript)
			}
			outputs = append(outputs, scdb.Output{Script: scriptBytes})
		}

		report, err := db.Update(b.Height, blockHash, outputs)
		if err != nil {
			log.Warnw("update rejected", "height", b.Height, "error", err)
			continue
		}
		for _, w := range report.Warnings {
			log.Infow("soft reject", "height", b.Height, "output", w.OutputIndex, "message", w.Message)
		}
	}

	fmt.Println(db.DebugString())
	fmt.Printf("root=%x\n", db.Root())
	fmt.Printf("last_seen_block=%x\n", db.LastSeenBlock())
	for _, p := range sidechain.Valid {
		fmt.Printf("%s: deposits=%d\n", p.Name, len(db.GetDeposits(p.ID)))
	}
}
