package portal

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "-"},
		{"0", "$ 0"},
		{"950", "$ 950"},
		{"1000", "$ 1.000"},
		{"45000.00", "$ 45.000"},
		{"1234567", "$ 1.234.567"},
		{"1234567.89", "$ 1.234.568"},
		{"-52000", "-$ 52.000"},
		{"  120000 ", "$ 120.000"},
		{"N/A", "N/A"},
		{"pendiente", "pendiente"},
	}

	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoneyPtr(t *testing.T) {
	if got := FormatMoneyPtr(nil); got != "-" {
		t.Errorf("FormatMoneyPtr(nil) = %q, want %q", got, "-")
	}
	value := "78000"
	if got := FormatMoneyPtr(&value); got != "$ 78.000" {
		t.Errorf("FormatMoneyPtr(78000) = %q, want %q", got, "$ 78.000")
	}
}
