package cartera

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractCOPRate(t *testing.T) {
	payload := `{"result":"success","base_code":"USD","rates":{"USD":1,"COP":4011.27,"EUR":0.92}}`
	var jobj any
	if err := json.Unmarshal([]byte(payload), &jobj); err != nil {
		t.Fatal(err)
	}

	rate, err := extractCOPRate(jobj)
	if err != nil {
		t.Fatalf("extractCOPRate() returned an unexpected error: %v", err)
	}
	if want := decimal.RequireFromString("4011.27"); !rate.Equal(want) {
		t.Errorf("extractCOPRate() = %s, want %s", rate, want)
	}
}

func TestExtractCOPRate_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"service error", `{"result":"error","error-type":"invalid-key"}`},
		{"missing COP", `{"result":"success","rates":{"USD":1}}`},
		{"non numeric", `{"result":"success","rates":{"COP":"4000"}}`},
		{"zero rate", `{"result":"success","rates":{"COP":0}}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var jobj any
			if err := json.Unmarshal([]byte(tc.payload), &jobj); err != nil {
				t.Fatal(err)
			}
			if _, err := extractCOPRate(jobj); err == nil {
				t.Errorf("extractCOPRate(%s) should have failed", tc.payload)
			}
		})
	}
}
