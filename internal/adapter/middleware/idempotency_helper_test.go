package middleware

import (
	"strconv"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"3b241101-e2bb-4255-8caf-4136c566a962", true},
		{"short", false},
		{"", false},
		{"ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ", false},
	}
	for _, tc := range cases {
		if got := validReqID(tc.id); got != tc.want {
			t.Errorf("validReqID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	got, err := parseRequestAt(strconv.FormatInt(now.Unix(), 10))
	if err != nil || !got.Equal(now) {
		t.Fatalf("epoch seconds: got %v, err %v", got, err)
	}

	gotMS, err := parseRequestAt(strconv.FormatInt(now.UnixMilli(), 10))
	if err != nil || !gotMS.Equal(now) {
		t.Fatalf("epoch ms: got %v, err %v", gotMS, err)
	}

	rfc, err := parseRequestAt(now.Format(time.RFC3339))
	if err != nil || !rfc.Equal(now) {
		t.Fatalf("rfc3339: got %v, err %v", rfc, err)
	}

	if _, err := parseRequestAt("2025-09-05T10:00:00"); err == nil {
		t.Fatal("naive timestamp without timezone must be rejected")
	}
	if _, err := parseRequestAt(""); err == nil {
		t.Fatal("empty must be rejected")
	}
}

func TestBuildKey(t *testing.T) {
	key := buildKey("POST", "/loans", "1", "abc")
	if key != "idemp:loan:post:/loans:1:abc" {
		t.Fatalf("key = %s", key)
	}
}
