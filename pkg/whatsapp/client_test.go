package whatsapp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already country prefixed", "5561999998888", "5561999998888"},
		{"area plus number gets country code", "61999998888", "5561999998888"},
		{"formatted input stripped", "(61) 99999-8888", "5561999998888"},
		{"landline length", "6133334444", "556133334444"},
		{"too short", "999-8888", ""},
		{"empty", "", ""},
		{"letters only", "not a phone", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSendTextUnconfiguredNoOps(t *testing.T) {
	c := NewClient("", "", "")
	res := c.SendText("61999998888", "hi")
	if res.OK {
		t.Error("unconfigured client reported success")
	}
	if res.Error == "" {
		t.Error("unconfigured client returned no error text")
	}
}

func TestSendTextRejectsBadNumberLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "lunchbox", "secret")
	res := c.SendText("123", "hi")
	if res.OK {
		t.Error("invalid number reported success")
	}
	if called {
		t.Error("outbound call made for invalid number")
	}
}

func TestSendText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody sendTextRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "lunchbox", "secret")
	res := c.SendText("(61) 99999-8888", "order text")

	if !res.OK {
		t.Fatalf("send failed: %s", res.Error)
	}
	if gotPath != "/message/sendText/lunchbox" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("apikey header = %q", gotKey)
	}
	if gotBody.Number != "5561999998888" || gotBody.Text != "order text" {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestSendTextServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "instance not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "lunchbox", "")
	res := c.SendText("61999998888", "hi")
	if res.OK {
		t.Error("HTTP 404 reported success")
	}
	if res.Error != "instance not found" {
		t.Errorf("error = %q", res.Error)
	}
}
