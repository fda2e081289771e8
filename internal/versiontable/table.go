package versiontable

import (
	"fmt"
	"strings"
)

const (
	tableHeaderRowConstant    = "| cloud-event-proxy | golang | rest-api | sdk-go  | note         |\n"
	tableSeparatorRowConstant = "| ----------------- | ------ | -------- | ------- | ------------ |\n"
	tableRowTemplateConstant  = "| %s | %s | %s | %s | %s |\n"
)

// Record is one rendered table row, immutable once appended.
type Record struct {
	RefName string
	Golang  string
	RestAPI string
	SDKGo   string
	Note    string
}

// renderTable produces the markdown table with one row per record in
// insertion order. Callers guarantee records is non-empty.
func renderTable(records []Record) string {
	var tableBuilder strings.Builder
	tableBuilder.WriteString(tableHeaderRowConstant)
	tableBuilder.WriteString(tableSeparatorRowConstant)

	for _, record := range records {
		fmt.Fprintf(&tableBuilder, tableRowTemplateConstant, record.RefName, record.Golang, record.RestAPI, record.SDKGo, record.Note)
	}

	return tableBuilder.String()
}
