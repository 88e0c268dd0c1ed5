package validation

import (
	"encoding/json"
	"testing"
)

func TestValidateStructAndErrorsToJson(t *testing.T) {
	type Input struct {
		Content string `validate:"required"        json:"content"`
		Rating  int    `validate:"min=1,max=5"     json:"rating"`
	}

	tests := []struct {
		name        string
		in          Input
		wantErr     bool
		wantJsonMap map[string]string
	}{
		{
			name:    "success",
			in:      Input{Content: "great product", Rating: 4},
			wantErr: false,
		},
		{
			name:    "missing content",
			in:      Input{Content: "", Rating: 3},
			wantErr: true,
			wantJsonMap: map[string]string{
				"content": "required",
			},
		},
		{
			name:    "rating out of bounds",
			in:      Input{Content: "meh", Rating: 6},
			wantErr: true,
			wantJsonMap: map[string]string{
				"rating": "max",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			// convert and unmarshal for comparison
			js, jerr := ErrorsToJson(err)
			if jerr != nil {
				t.Fatalf("ErrorsToJson() error = %v", jerr)
			}
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			for field, tag := range tt.wantJsonMap {
				if got[field] != tag {
					t.Errorf("field %q: got %q, want %q", field, got[field], tag)
				}
			}
		})
	}
}

func TestReviewStatusValidation(t *testing.T) {
	type Input struct {
		Status string `validate:"required,review_status" json:"status"`
	}

	tests := []struct {
		name    string
		in      Input
		wantErr bool
	}{
		{name: "pending", in: Input{Status: "pending"}, wantErr: false},
		{name: "approved", in: Input{Status: "approved"}, wantErr: false},
		{name: "rejected", in: Input{Status: "rejected"}, wantErr: false},
		{name: "unknown", in: Input{Status: "archived"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			js, _ := ErrorsToJson(err)
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("json.Unmarshal err = %v", err)
			}
			if got["status"] != "review_status" {
				t.Errorf("field %q: got %q, want %q", "status", got["status"], "review_status")
			}
		})
	}
}
