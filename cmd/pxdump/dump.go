package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pxtable/pxdb"
	"github.com/pxtable/pxdb/pkg/types"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <path.db>",
		Short: "Dump every record as a table or as JSON lines",
		Args:  checkArgs,
		RunE:  runDump,
	}
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	doc, err := pxdb.Open(args[0], types.OpenOptions{Password: flagPassword, Encoding: flagEncoding})
	if err != nil {
		return err
	}
	defer doc.Close()

	meta := doc.Metadata()
	it, err := doc.Records()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	n := 0
	for {
		rec, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		n++
		printVerbose("record decoded", zap.Int("index", n))

		if flagJSON {
			row := make(map[string]any, len(meta.Fields))
			for i, f := range meta.Fields {
				row[f.Name] = renderValue(rec.Value(i))
			}
			if err := enc.Encode(row); err != nil {
				return err
			}
			continue
		}

		for i, f := range meta.Fields {
			fmt.Printf("%s=%v ", f.Name, renderValue(rec.Value(i)))
		}
		fmt.Println()
	}

	if !flagQuiet {
		for _, w := range doc.Warnings() {
			fmt.Fprintf(os.Stderr, "warning: %s (field %d)\n", w.Kind, w.FieldIndex)
		}
	}
	return nil
}

func renderValue(v types.Value) any {
	switch v.Kind() {
	case types.KindNull:
		return nil
	case types.KindInt64, types.KindDate:
		return v.Int64()
	case types.KindFloat64:
		return v.Float64()
	case types.KindTimestamp, types.KindTimeOfDay:
		return v.Seconds()
	case types.KindBool:
		return v.Bool()
	case types.KindText:
		return v.Text()
	default:
		return fmt.Sprintf("%d bytes", len(v.Bytes()))
	}
}
