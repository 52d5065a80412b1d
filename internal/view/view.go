// Package view holds the display building blocks shared by every document view:
// labelled fields and tables rendered to string cells.
package view

import (
	"strings"

	"charterdesk/internal/format"
)

// Field is one label/value row of a detail section.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// F builds a field. A blank value becomes the placeholder.
func F(label, value string) Field {
	if strings.TrimSpace(value) == "" {
		value = format.Placeholder
	}
	return Field{Label: label, Value: value}
}

type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// Column describes one table column and how a row renders into it.
type Column[R any] struct {
	Key      string
	Label    string
	Align    Align
	MinWidth int
	Render   func(R) string
}

// Header is the serialized part of a Column.
type Header struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Align    Align  `json:"align"`
	MinWidth int    `json:"min_width"`
}

// Table is a rendered table: headers plus one map of cells per row, keyed by column.
type Table struct {
	Columns []Header            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// Render applies every column to every row.
func Render[R any](columns []Column[R], rows []R) Table {
	t := Table{
		Columns: make([]Header, 0, len(columns)),
		Rows:    make([]map[string]string, 0, len(rows)),
	}
	for _, c := range columns {
		t.Columns = append(t.Columns, Header{Key: c.Key, Label: c.Label, Align: c.Align, MinWidth: c.MinWidth})
	}
	for _, row := range rows {
		cells := make(map[string]string, len(columns))
		for _, c := range columns {
			v := c.Render(row)
			if v == "" {
				v = format.Placeholder
			}
			cells[c.Key] = v
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Visible keeps the columns whose key is in keys, in the order of columns.
func Visible[R any](columns []Column[R], keys []string) []Column[R] {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	out := make([]Column[R], 0, len(keys))
	for _, c := range columns {
		if _, ok := want[c.Key]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Attachment is a downloadable file with the icon the client shows for it.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

const (
	IconImage    = "i-carbon:image"
	IconPDF      = "i-carbon:document-pdf"
	IconWord     = "i-carbon:document-word-processor"
	IconExcel    = "i-carbon:document-excel"
	IconDocument = "i-carbon:document"
)

// FileIcon picks an icon by the file name's extension. A name without a dot is
// treated as all extension.
func FileIcon(name string) string {
	switch strings.ToLower(name[strings.LastIndexByte(name, '.')+1:]) {
	case "jpg", "jpeg", "png", "gif", "bmp", "webp":
		return IconImage
	case "pdf":
		return IconPDF
	case "doc", "docx":
		return IconWord
	case "xls", "xlsx":
		return IconExcel
	}
	return IconDocument
}

// NewAttachment builds an attachment; a missing name shows the placeholder.
func NewAttachment(name, path, fileType string) Attachment {
	return Attachment{
		Name: format.Value(name),
		URL:  path,
		Type: fileType,
		Icon: FileIcon(name),
	}
}
