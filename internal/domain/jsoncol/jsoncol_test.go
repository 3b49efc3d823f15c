package jsoncol

import "testing"

func TestStringList_ValueScan(t *testing.T) {
	in := StringList{"UK", "EU"}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != `["UK","EU"]` {
		t.Fatalf("Value = %v", v)
	}

	var out StringList
	if err := out.Scan([]byte(`["UK","EU"]`)); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if len(out) != 2 || !out.Contains("EU") || out.Contains("US") {
		t.Fatalf("unexpected list: %v", out)
	}
}

func TestStringList_NilAndEmpty(t *testing.T) {
	var nilList StringList
	v, _ := nilList.Value()
	if v != "[]" {
		t.Fatalf("nil list Value = %v, want []", v)
	}

	var out StringList
	if err := out.Scan(nil); err != nil || out != nil {
		t.Fatalf("Scan(nil) = %v, %v", out, err)
	}
	if err := out.Scan(""); err != nil {
		t.Fatalf("Scan empty string: %v", err)
	}
	if err := out.Scan(42); err == nil {
		t.Fatal("expected error for unsupported source")
	}
}
