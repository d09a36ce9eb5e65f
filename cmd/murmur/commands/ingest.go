package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"murmur/internal/domain"
)

// ingest [file]: read JSON-lines events (stdin by default) into the
// store and report what survived replacement and eviction.
func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [file]",
		Short: "Load a stream of events into the local store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			seen, skipped := 0, 0
			byKind := map[uint16]int{}

			sc := bufio.NewScanner(in)
			sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
			for sc.Scan() {
				line := sc.Bytes()
				if len(line) == 0 {
					continue
				}
				var ev domain.Event
				if err := json.Unmarshal(line, &ev); err != nil {
					skipped++
					log.Warn("skipping malformed event", "err", err)
					continue
				}
				appCtx.Store.Insert(ev)
				seen++
				byKind[ev.Kind]++
			}
			if err := sc.Err(); err != nil {
				return err
			}

			log.Info("ingest finished",
				"events", seen,
				"skipped", skipped,
				"stored", appCtx.Store.Len(),
			)
			for kind, n := range byKind {
				fmt.Printf("kind %d: %d received, %d live\n",
					kind, n, len(appCtx.Store.GetByKind(kind)))
			}
			return nil
		},
	}
}
