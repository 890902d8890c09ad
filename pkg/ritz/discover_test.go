package ritz

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const dayPickerFixture = `
<html><body>
<div class="swiper-wrapper">
  <div class="swiper-slide"><a href="/now-showing/all">All</a></div>
  <div class="swiper-slide"><a href="/now-showing/today">Today</a></div>
  <div class="swiper-slide"><a href="/now-showing/tomorrow">Tomorrow</a></div>
  <div class="swiper-slide"><a href="/now-showing/friday">Friday</a></div>
  <div class="swiper-slide"><a href="https://elsewhere.example/now-showing/saturday">Saturday</a></div>
</div>
<a href="/about">About</a>
</body></html>`

func TestDiscoverDayLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dayPickerFixture))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()

	labels, err := client.DiscoverDayLabels()
	if err != nil {
		t.Fatalf("DiscoverDayLabels failed: %v", err)
	}

	// "all" is filtered, absolute hrefs don't match the site-relative prefix.
	want := []string{"today", "tomorrow", "friday"}
	if len(labels) != len(want) {
		t.Fatalf("expected labels %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, expected %q", i, labels[i], want[i])
		}
	}
}

func TestDayLabelsFallsBackOnFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local) // Wednesday

	labels := client.dayLabels(today)
	want := FallbackDayLabels(today)

	if len(labels) != len(want) {
		t.Fatalf("expected fallback labels %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, expected %q", i, labels[i], want[i])
		}
	}
}

func TestDayLabelsFallsBackOnEmptyDiscovery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>nothing to see</body></html>"))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)

	labels := client.dayLabels(today)
	if len(labels) != 7 || labels[0] != "today" {
		t.Errorf("expected full fallback week, got %v", labels)
	}
}
