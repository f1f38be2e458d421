package main

import (
	"strings"
	"testing"
)

func TestSplitHostPort(t *testing.T) {
	host, port, err := splitHostPort("localhost", 8080)
	if err != nil {
		t.Fatal(err)
	}
	if host != "localhost" || port != "8080" {
		t.Fatalf("expected localhost 8080, got %s %s", host, port)
	}
	host, port, err = splitHostPort(":9000", 8080)
	if err != nil {
		t.Fatal(err)
	}
	if host != "" || port != "9000" {
		t.Fatalf("expected empty host and 9000, got %q %s", host, port)
	}
}

func TestPublicURLKeepsExplicitHost(t *testing.T) {
	url, err := publicURL("127.0.0.1:9000")
	if err != nil {
		t.Fatal(err)
	}
	if url != "http://127.0.0.1:9000/" {
		t.Fatalf("unexpected url %s", url)
	}
	url, err = publicURL("table.local")
	if err != nil {
		t.Fatal(err)
	}
	if url != "http://table.local:8080/" {
		t.Fatalf("unexpected url %s", url)
	}
}

func TestPublicURLFillsUnspecifiedHost(t *testing.T) {
	for _, addr := range []string{":9000", "0.0.0.0:9000"} {
		url, err := publicURL(addr)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(url, "http://") || !strings.HasSuffix(url, ":9000/") {
			t.Fatalf("unexpected url %s", url)
		}
		if strings.Contains(url, "0.0.0.0") || strings.Contains(url, "//:") {
			t.Fatalf("unspecified host leaked into %s", url)
		}
	}
}
