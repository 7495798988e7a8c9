package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vogtb/go-block/packages/block"
)

// writeCSV writes the dense value of b, one CSV record per row. empty
// cells are written as empty fields.
func writeCSV(w io.Writer, b *block.Block) error {
	cw := csv.NewWriter(w)
	for _, row := range b.Value() {
		record := make([]string, len(row))
		for i, v := range row {
			if v != nil {
				record[i] = fmt.Sprint(v)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// readCSV parses a CSV grid into a block. records may differ in length.
func readCSV(r io.Reader) (*block.Block, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return block.FromValue(records)
}

// sideBySide places single-column blocks next to each other
func sideBySide(columns []*block.Block) (*block.Block, error) {
	rows := 1
	for _, c := range columns {
		rows = max(rows, c.Rows())
	}
	out, err := block.New(rows, max(len(columns), 1))
	if err != nil {
		return nil, err
	}
	for col, c := range columns {
		for addr, v := range c.All() {
			if err := out.Set(addr.Row, col+1, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
