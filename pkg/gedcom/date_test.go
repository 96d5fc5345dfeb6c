package gedcom

import "testing"

func TestDateDecomposition(t *testing.T) {
	tests := []struct {
		name  string
		value string
		day   string
		month string
		year  string
		str   string
	}{
		{
			name:  "DayMonthYear",
			value: "15 MAR 2023",
			day:   "15", month: "MAR", year: "2023",
			str: "15 MAR 2023",
		},
		{
			name:  "MonthYear",
			value: "MAR 2025",
			month: "MAR", year: "2025",
			str: "MAR 2025",
		},
		{
			name:  "YearOnly",
			value: "1900",
			year:  "1900",
			str:   "1900",
		},
		{
			name:  "ZeroPaddedDay",
			value: "01 JAN 1925",
			day:   "01", month: "JAN", year: "1925",
			str: "01 JAN 1925",
		},
		{
			name:  "UnrecognizedShape",
			value: "BET 1900 AND 1910",
			str:   "BET 1900 AND 1910",
		},
		{
			name: "Empty",
			str:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDate(&Element{Level: 2, Tag: "DATE", Value: tt.value})
			if d.Day != tt.day || d.Month != tt.month || d.Year != tt.year {
				t.Errorf("decomposed = (%q, %q, %q), want (%q, %q, %q)",
					d.Day, d.Month, d.Year, tt.day, tt.month, tt.year)
			}
			if got := d.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestDateData(t *testing.T) {
	d := newDate(&Element{Level: 2, Tag: "DATE", Value: "MAR 2025"})
	data := d.Data()

	if data["day"] != nil {
		t.Errorf("day = %v, want nil", data["day"])
	}
	if data["month"] != "MAR" {
		t.Errorf("month = %v, want MAR", data["month"])
	}
	if data["year"] != "2025" {
		t.Errorf("year = %v, want 2025", data["year"])
	}
}
