package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	name   string
	amount string
}

var columns = []Column[row]{
	{Key: "name", Label: "名称", Align: AlignLeft, MinWidth: 100, Render: func(r row) string { return r.name }},
	{Key: "amount", Label: "金额", Align: AlignRight, MinWidth: 80, Render: func(r row) string { return r.amount }},
}

func TestF(t *testing.T) {
	assert.Equal(t, Field{Label: "船名", Value: "远洋一号"}, F("船名", "远洋一号"))
	assert.Equal(t, "-", F("备注", "").Value)
	assert.Equal(t, "-", F("备注", "  ").Value)
}

func TestRender(t *testing.T) {
	table := Render(columns, []row{{name: "a", amount: "1.00"}, {name: ""}})

	require.Len(t, table.Columns, 2)
	assert.Equal(t, Header{Key: "amount", Label: "金额", Align: AlignRight, MinWidth: 80}, table.Columns[1])
	require.Len(t, table.Rows, 2)
	assert.Equal(t, map[string]string{"name": "a", "amount": "1.00"}, table.Rows[0])
	assert.Equal(t, map[string]string{"name": "-", "amount": "-"}, table.Rows[1])
}

func TestRenderEmpty(t *testing.T) {
	table := Render(columns, nil)
	assert.NotNil(t, table.Rows)
	assert.Empty(t, table.Rows)
	assert.Len(t, table.Columns, 2)
}

func TestVisible(t *testing.T) {
	t.Run("keeps column order", func(t *testing.T) {
		visible := Visible(columns, []string{"amount", "name"})
		require.Len(t, visible, 2)
		assert.Equal(t, "name", visible[0].Key)
		assert.Equal(t, "amount", visible[1].Key)
	})

	t.Run("ignores unknown keys", func(t *testing.T) {
		visible := Visible(columns, []string{"amount", "missing"})
		require.Len(t, visible, 1)
		assert.Equal(t, "amount", visible[0].Key)
	})
}

func TestFileIcon(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.JPG", IconImage},
		{"scan.webp", IconImage},
		{"charter.party.pdf", IconPDF},
		{"memo.docx", IconWord},
		{"fees.xls", IconExcel},
		{"notes.txt", IconDocument},
		{"pdf", IconPDF},
		{"", IconDocument},
		{"archive.", IconDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileIcon(tt.name))
		})
	}
}

func TestNewAttachment(t *testing.T) {
	a := NewAttachment("", "/files/9", "application/pdf")
	assert.Equal(t, "-", a.Name)
	assert.Equal(t, "/files/9", a.URL)
	assert.Equal(t, IconDocument, a.Icon)
}
