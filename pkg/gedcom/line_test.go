package gedcom

import (
	"strings"
	"testing"

	"github.com/Kaper156/pygedcom/pkg/errors"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Line
		wantErr bool
	}{
		{
			name: "TopLevelWithXRef",
			raw:  "0 @I1@ INDI",
			want: Line{Level: 0, XRef: "@I1@", Tag: "INDI"},
		},
		{
			name: "TagWithValue",
			raw:  "1 NAME John /Doe/",
			want: Line{Level: 1, Tag: "NAME", Value: "John /Doe/"},
		},
		{
			name: "TagWithoutValue",
			raw:  "1 BIRT",
			want: Line{Level: 1, Tag: "BIRT"},
		},
		{
			name: "ReferenceValue",
			raw:  "1 HUSB @I1@",
			want: Line{Level: 1, Tag: "HUSB", Value: "@I1@"},
		},
		{
			name: "ValueTokensRejoined",
			raw:  "2 PLAC Paris,  France",
			want: Line{Level: 2, Tag: "PLAC", Value: "Paris, France"},
		},
		{
			name:    "NonNumericLevel",
			raw:     "x NAME John",
			wantErr: true,
		},
		{
			name:    "NegativeLevel",
			raw:     "-1 NAME John",
			wantErr: true,
		},
		{
			name:    "Empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "MissingTagAfterXRef",
			raw:     "0 @I1@",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLine(%q) expected error", tt.raw)
				}
				if !errors.Is(err, errors.ErrCodeInvalidLine) {
					t.Errorf("error code = %s, want INVALID_LINE", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantStatus string
		wantInMsg  string
	}{
		{
			name:       "Valid",
			data:       "0 HEAD\n1 SOUR test\n2 VERS 1.0\n0 TRLR",
			wantStatus: StatusOK,
		},
		{
			name:       "BlankLinesSkipped",
			data:       "0 HEAD\n\n1 SOUR test\n\n0 TRLR\n",
			wantStatus: StatusOK,
		},
		{
			name:       "LevelDropIsValid",
			data:       "0 HEAD\n1 SOUR test\n2 VERS 1.0\n1 CHAR UTF-8\n0 TRLR",
			wantStatus: StatusOK,
		},
		{
			name:       "LevelJump",
			data:       "0 HEAD\n2 VERS 1.0\n0 TRLR",
			wantStatus: StatusError,
			wantInMsg:  "line 2: 2 VERS 1.0",
		},
		{
			name:       "MalformedLine",
			data:       "0 HEAD\nbogus line\n0 TRLR",
			wantStatus: StatusError,
			wantInMsg:  "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Verify(tt.data)
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q (message: %s)", got.Status, tt.wantStatus, got.Message)
			}
			if tt.wantInMsg != "" && !strings.Contains(got.Message, tt.wantInMsg) {
				t.Errorf("message %q does not contain %q", got.Message, tt.wantInMsg)
			}
		})
	}
}
