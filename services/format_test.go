package services

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₹0.00"},
		{"small", 250, "₹250.00"},
		{"thousands", 18999.5, "₹18,999.50"},
		{"lakhs", 219990, "₹2,19,990.00"},
		{"crores", 12345678.9, "₹1,23,45,678.90"},
		{"negative", -1855, "-₹1,855.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.want {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero Rupees Only/-"},
		{"teens", 14, "Fourteen Rupees Only/-"},
		{"hundreds", 950, "Nine Hundred and Fifty Rupees Only/-"},
		{"scenario_total", 1855, "One Thousand Eight Hundred and Fifty Five Rupees Only/-"},
		{"lakhs", 913183, "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"},
		{"rounding", 1854.6, "One Thousand Eight Hundred and Fifty Five Rupees Only/-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmountToWords(tt.amount); got != tt.want {
				t.Errorf("AmountToWords(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
