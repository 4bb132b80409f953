package scene

import "testing"

func TestMemRegistry(t *testing.T) {
	reg := NewMemRegistry()
	stream := reg.Streamer()
	collect := reg.Collector()

	sink, err := stream("quad", "quad.mesh")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = sink.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}

	// Entries are invisible until their writer is closed.
	if artifacts := collect(nil); len(artifacts) != 0 {
		t.Fatalf("expected no artifacts before close; got %d", len(artifacts))
	}

	if err = sink.Close(); err != nil {
		t.Fatal(err)
	}
	artifacts := collect(nil)
	art, exists := artifacts["quad"]
	if !exists {
		t.Fatal("expected the closed entry to be collectable")
	}
	if art.Path != "quad.mesh" || string(art.Body) != "payload" {
		t.Fatalf("unexpected artifact: %+v", art)
	}

	// A second writer for the same id is a logic error.
	if _, err = stream("quad", "elsewhere.mesh"); err == nil {
		t.Fatal("expected an error for a duplicate mesh id")
	}

	// Writes after close are rejected.
	if _, err = sink.Write([]byte("more")); err == nil {
		t.Fatal("expected an error for a write after close")
	}
}

func TestMemRegistryProbe(t *testing.T) {
	reg := NewMemRegistry()
	probe := reg.Probe()

	if probe("quad", "quad.mesh") {
		t.Fatal("expected no match before anything was streamed")
	}

	sink, err := reg.Streamer()("quad", "quad.mesh")
	if err != nil {
		t.Fatal(err)
	}
	if probe("quad", "quad.mesh") {
		t.Fatal("expected no match while the writer is still open")
	}
	if err = sink.Close(); err != nil {
		t.Fatal(err)
	}

	if !probe("quad", "quad.mesh") {
		t.Fatal("expected a match for the completed entry")
	}
	if probe("quad", "elsewhere.mesh") {
		t.Fatal("expected no match for a conflicting destination")
	}
}
