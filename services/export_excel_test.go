package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateQuotationExcel(t *testing.T) {
	data := sampleExportData()

	out, err := GenerateQuotationExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel returned error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("generated workbook does not open: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != data.Title {
		t.Errorf("sheet name = %q, want %q", sheet, data.Title)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	var sawHeader, sawExempt, sawFinal bool
	for _, r := range rows {
		if len(r) > 0 && r[0] == "S.No" {
			sawHeader = true
		}
		for _, cell := range r {
			if cell == "Kordz-Cables and Accessories" {
				sawExempt = true
			}
			if cell == "Final Amount" {
				sawFinal = true
			}
		}
	}
	if !sawHeader {
		t.Error("items header row missing")
	}
	if !sawExempt {
		t.Error("exempt extra row missing")
	}
	if !sawFinal {
		t.Error("final amount row missing")
	}
}

func TestGenerateQuotationExcel_LongTitleTruncated(t *testing.T) {
	data := sampleExportData()
	data.Title = "An Extremely Long Quotation Title That Exceeds Sheet Limits"

	out, err := GenerateQuotationExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("generated workbook does not open: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(0); len(name) > 31 {
		t.Errorf("sheet name %q exceeds 31 chars", name)
	}
}
