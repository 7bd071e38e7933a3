package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pxtable/pxdb"
	"github.com/pxtable/pxdb/pkg/types"
)

func zapFields(meta types.Metadata) []zap.Field {
	return []zap.Field{
		zap.Uint32("records", meta.RecordCount),
		zap.Uint16("fields", meta.FieldCount),
		zap.String("codepage", meta.Codepage),
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path.db>",
		Short: "Print a table's field list, record count, and codepage",
		Args:  checkArgs,
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	doc, err := pxdb.Open(args[0], types.OpenOptions{Password: flagPassword, Encoding: flagEncoding})
	if err != nil {
		return err
	}
	defer doc.Close()

	meta := doc.Metadata()
	printVerbose("opened table", zapFields(meta)...)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(meta)
	}

	fmt.Printf("records:  %d\n", meta.RecordCount)
	fmt.Printf("codepage: %s\n", meta.Codepage)
	fmt.Printf("fields:\n")
	for _, f := range meta.Fields {
		fmt.Printf("  %-20s %-14s size=%d\n", f.Name, f.Type, f.Size)
	}
	if !flagQuiet {
		for _, w := range doc.Warnings() {
			fmt.Fprintf(os.Stderr, "warning: %s (field %d)\n", w.Kind, w.FieldIndex)
		}
	}
	return nil
}
