package request

import (
	"encoding/json"
	"testing"
)

func TestNumericUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    float64
		wantErr bool
	}{
		{name: "json number", payload: `{"price": 110.5}`, want: 110.5},
		{name: "numeric string", payload: `{"price": "110.50"}`, want: 110.5},
		{name: "padded string", payload: `{"price": " 42 "}`, want: 42},
		{name: "empty string", payload: `{"price": ""}`, want: 0},
		{name: "null", payload: `{"price": null}`, want: 0},
		{name: "absent", payload: `{}`, want: 0},
		{name: "garbage string", payload: `{"price": "abc"}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body struct {
				Price Numeric `json:"price"`
			}
			err := json.Unmarshal([]byte(tc.payload), &body)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", body.Price)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body.Price.Float64() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, body.Price.Float64())
			}
		})
	}
}

func TestScheduleRequestResolveDate(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		d, err := ScheduleRequest{Date: "2026-09-02T14:30:00Z"}.ResolveDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Hour() != 14 || d.Minute() != 30 {
			t.Fatalf("unexpected time: %v", d)
		}
	})

	t.Run("bare date defaults to morning", func(t *testing.T) {
		d, err := ScheduleRequest{Date: "2026-09-02"}.ResolveDate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Hour() != 9 {
			t.Fatalf("expected 09:00, got %v", d)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := (ScheduleRequest{Date: "next tuesday"}).ResolveDate(); err == nil {
			t.Fatal("expected error")
		}
	})
}
