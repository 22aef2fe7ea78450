package main

import (
	"flag"
	"fmt"
	"group-talk/repositories"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	dbPath := flag.String("db", "./data/shared", "Path to badger DB")
	// Secondary index keys are skipped unless asked for
	prefix := flag.String("prefix", "", "Prefix to scan (feed:, notification:, account:, session:)")
	withIndex := flag.Bool("index", false, "Also list secondary index keys")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Fields"})
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

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			kind := repositories.DocumentKind(key)
			if kind == repositories.KindIndex && !*withIndex {
				continue
			}

			err := item.Value(func(v []byte) error {
				if kind == repositories.KindIndex {
					table.Append([]string{key, kind, string(v)})
					return nil
				}
				fields, err := repositories.DocumentFields(v)
				if err != nil {
					// Keep listing the other keys
					fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
					return nil
				}
				table.Append([]string{key, kind, formatFields(fields)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// formatFields prints fields sorted by name; password hashes are masked.
func formatFields(fields map[string]any) string {
	names := lo.Keys(fields)
	sort.Strings(names)
	return strings.Join(lo.Map(names, func(name string, _ int) string {
		if name == "password_hash" {
			return name + "=***"
		}
		return fmt.Sprintf("%s=%v", name, fields[name])
	}), " ")
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
