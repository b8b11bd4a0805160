package pdoc

import "testing"

func TestIdFilenameRoundTrip(t *testing.T) {
	for _, raw := range []string{"Acme Co.", "beta-llc", "Client_42", "åre"} {
		id, err := NewId(raw)
		if err != nil {
			t.Fatalf("NewId(%q): %v", raw, err)
		}
		back, err := IdFromFilename(id.Filename())
		if err != nil {
			t.Fatalf("IdFromFilename(%q): %v", id.Filename(), err)
		}
		if back != id {
			t.Errorf("round trip of %q = %q, want %q", raw, back, id)
		}
	}
}

func TestNewIdRejectsUnsafe(t *testing.T) {
	for _, raw := range []string{"", ".", "..", "a/b", "a\\b", "nul\x00byte"} {
		if id, err := NewId(raw); err == nil {
			t.Errorf("NewId(%q) = %q, want error", raw, id)
		}
	}
}

func TestIdFromFilenameErrors(t *testing.T) {
	for _, name := range []string{"", "client", "client.yml", ".yaml", "notes.txt"} {
		if id, err := IdFromFilename(name); err == nil {
			t.Errorf("IdFromFilename(%q) = %q, want error", name, id)
		}
	}
}

func TestIdFromFilenameStripsDirectory(t *testing.T) {
	id, err := IdFromFilename("/data/clients/Acme Co..yaml")
	if err != nil {
		t.Fatal(err)
	}
	if want := Id("Acme Co."); id != want {
		t.Errorf("got %q, want %q", id, want)
	}
}
