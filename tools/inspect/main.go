package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	pb "tauthy/proto/tauthy/v1"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// "history:" for every user, "history:{user_id}:" for one
	prefix := flag.String("prefix", "history:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	if err := dump(db, *prefix, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// dump prints one row per history entry under prefix. Index keys (hid:, uid:) and
// user records are never shown.
func dump(db *badger.DB, prefix string, w io.Writer) error {
	if !strings.HasPrefix(prefix, "history:") {
		return fmt.Errorf("only history: keys can be inspected, got %q", prefix)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "User", "Created", "Label", "AI", "Human", "Lang", "Feedback", "Opinion", "Model"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())
			err := item.Value(func(v []byte) error {
				var e pb.HistoryEntry
				if err := proto.Unmarshal(v, &e); err != nil {
					// keep going, one bad value should not hide the rest
					fmt.Fprintf(w, "Error decoding key %s: %v\n", rawKey, err)
					return nil
				}
				opinion := "-"
				if e.Opinion != nil {
					opinion = fmt.Sprintf("%.0f/%.0f", e.Opinion.Ai, e.Opinion.Human)
				}
				feedback := e.Feedback
				if feedback == "" {
					feedback = "-"
				}
				table.Append([]string{
					rawKey,
					shorten(e.UserId),
					e.CreatedAt.AsTime().Format("2006-01-02 15:04:05"),
					e.Label,
					fmt.Sprintf("%.2f", percent(&e, "ai")),
					fmt.Sprintf("%.2f", percent(&e, "human")),
					e.Language,
					feedback,
					opinion,
					e.ModelVersion,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	table.Render()
	return nil
}

func percent(e *pb.HistoryEntry, label string) float64 {
	for _, score := range e.Details {
		if score.Label == label {
			return score.Percent
		}
	}
	return 0
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// a crash can leave a value log that read-only mode refuses to truncate
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
