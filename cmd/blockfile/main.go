// Command blockfile embeds files into CSV grids and extracts them again.
//
// each encoded file occupies one column: a <file=NAME> marker, base64
// chunks and a </file> terminator. the grid can travel through any medium
// that carries spreadsheet cells.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vogtb/go-block/packages/store"
)

type options struct {
	backend string
	root    string
	dbPath  string
}

func main() {
	log.SetFlags(0)
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "blockfile",
		Short: "Embed files in CSV grids and extract them again",
		Long: `Encode files into spreadsheet-style grids and decode them back.

Commands:
  encode  Embed one or more files, one column per file, and write CSV.
  decode  Read a CSV grid and write every embedded file to the store.
  ls      List the files in the store.

Stores:
  local   A directory tree (--root, or $BLOCKFILE_ROOT, default ".")
  sqlite  A SQLite database (--db, or $BLOCKFILE_DB)

Examples:
  blockfile encode report.pdf -o report.csv
  blockfile decode report.csv --root ./out
  blockfile --store sqlite --db files.db ls`,
		SilenceUsage: true,
	}
	cmd.SetOut(stdout)

	cmd.PersistentFlags().StringVar(&opts.backend, "store", "local", "Store backend: local or sqlite")
	cmd.PersistentFlags().StringVar(&opts.root, "root", envOr("BLOCKFILE_ROOT", "."), "Root directory of the local store")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", envOr("BLOCKFILE_DB", ""), "Database path of the sqlite store")

	cmd.AddCommand(newEncodeCommand(opts))
	cmd.AddCommand(newDecodeCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	return cmd
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// openStore returns the configured backend and a function releasing it
func (o *options) openStore() (store.Store, func(), error) {
	switch o.backend {
	case "local":
		return store.NewLocal(o.root), func() {}, nil
	case "sqlite":
		if o.dbPath == "" {
			return nil, nil, fmt.Errorf("--db is required for the sqlite store")
		}
		s, err := store.OpenSQLite(o.dbPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Printf("[blockfile] close %s: %v", o.dbPath, err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want local or sqlite)", o.backend)
	}
}
