package sse

import (
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishSectionEvent(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishSectionEvent("updated", "crim-112")

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: section.updated") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"id":"crim-112"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishCorpusEvent_Throttled(t *testing.T) {
	b := NewBroker(500 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Two bursts in quick succession: only the first broadcasts.
	b.PublishCorpusEvent("crim")
	b.PublishCorpusEvent("crim")

	var got []string
	deadline := time.After(time.Second)
	for len(got) < 1 {
		select {
		case msg := <-ch:
			got = append(got, string(msg))
		case <-deadline:
			t.Fatal("timeout waiting for corpus event")
		}
	}
	if !strings.Contains(got[0], "event: corpus.updated") {
		t.Errorf("event = %q", got[0])
	}

	select {
	case msg := <-ch:
		t.Errorf("unexpected second event within throttle window: %q", msg)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPublishAfterClose(t *testing.T) {
	b := NewBroker(time.Second)
	b.Close()
	// Must not panic or block.
	b.PublishSectionEvent("updated", "x")
	b.PublishCorpusEvent("crim")
	if b.ClientCount() != 0 {
		t.Error("closed broker should report 0 clients")
	}
}
