package cli

import (
	"strings"
	"testing"
)

func init() {
	// Use plain mode for deterministic test output
	SetDefault(&Config{Mode: ModePlain})
}

func TestNewTable(t *testing.T) {
	table := NewTable("COUNTRY", "CAPITAL", "ZONE")

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("len(headers) = %d, want 3", len(table.headers))
	}
	if len(table.widths) != 3 {
		t.Errorf("len(widths) = %d, want 3", len(table.widths))
	}
}

func TestTable_AddRow(t *testing.T) {
	table := NewTable("NAME", "VALUE")
	table.AddRow("foo", "bar")
	table.AddRow("longer_name", "x")

	if len(table.rows) != 2 {
		t.Errorf("len(rows) = %d, want 2", len(table.rows))
	}

	// Width should be updated
	if table.widths[0] < len("longer_name") {
		t.Errorf("width[0] = %d, should be >= %d", table.widths[0], len("longer_name"))
	}
}

func TestTable_AddRow_Padding(t *testing.T) {
	table := NewTable("A", "B", "C")
	table.AddRow("1", "2") // Missing third column

	if len(table.rows) != 1 {
		t.Fatal("row should be added")
	}
	if len(table.rows[0]) != 3 {
		t.Errorf("row should be padded to 3 columns, got %d", len(table.rows[0]))
	}
	if table.rows[0][2] != "" {
		t.Errorf("padded column should be empty string, got %q", table.rows[0][2])
	}
}

func TestTable_String(t *testing.T) {
	table := NewTable("COUNTRY", "CAPITAL", "ZONE")
	table.AddRow("Japan", "Tokyo", "Asia/Tokyo")
	table.AddRow("France", "Paris", "Europe/Paris")

	result := table.String()

	// Should contain headers
	if !strings.Contains(result, "COUNTRY") {
		t.Errorf("result should contain header: %q", result)
	}
	if !strings.Contains(result, "CAPITAL") {
		t.Errorf("result should contain header: %q", result)
	}
	if !strings.Contains(result, "ZONE") {
		t.Errorf("result should contain header: %q", result)
	}

	// Should contain data
	if !strings.Contains(result, "Japan") {
		t.Errorf("result should contain data: %q", result)
	}
	if !strings.Contains(result, "Asia/Tokyo") {
		t.Errorf("result should contain data: %q", result)
	}

	// Should contain separator
	if !strings.Contains(result, "─") {
		t.Errorf("result should contain separator: %q", result)
	}
}

func TestNewPlainTable(t *testing.T) {
	table := NewPlainTable()
	table.AddRow("UTC", "(+0)", "10", "11", "12")
	table.AddRow("Asia/Tokyo", "(+9)", "19", "20", "21")

	result := table.String()

	// No header or separator rows
	if strings.Contains(result, "─") {
		t.Errorf("headerless table should not contain a separator: %q", result)
	}

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2:\n%s", len(lines), result)
	}

	// Columns align: both rows put the second column at the same offset
	if strings.Index(lines[0], "(+0)") != strings.Index(lines[1], "(+9)") {
		t.Errorf("columns not aligned:\n%s", result)
	}
}

func TestTable_NoTrailingWhitespace(t *testing.T) {
	table := NewPlainTable()
	table.AddRow("US/Pacific", "(-8)")
	table.AddRow("UTC", "(+0)")

	for _, line := range strings.Split(table.String(), "\n") {
		if line != strings.TrimRight(line, " ") {
			t.Errorf("line has trailing whitespace: %q", line)
		}
	}
}

func TestTable_String_Empty(t *testing.T) {
	table := NewPlainTable()
	result := table.String()

	if result != "" {
		t.Errorf("empty table should return empty string, got %q", result)
	}
}

func TestTable_LongContent(t *testing.T) {
	table := NewTable("ZONE", "DESCRIPTION")
	table.AddRow("1", "This is a very long description that exceeds normal width")
	table.AddRow("2", "Short")

	result := table.String()

	// Should not panic and should contain all content
	if !strings.Contains(result, "very long description") {
		t.Errorf("result should contain long content: %q", result)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hello", 10, "hello     "},
		{"hello", 5, "hello"},
		{"hello", 3, "hello"}, // No truncation
		{"", 5, "     "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := padRight(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}
