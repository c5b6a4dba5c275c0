package dataset

import (
	"reflect"
	"strings"
	"testing"
)

// TestParseDirectoryIndex tests anchor extraction from a mirror-style listing.
func TestParseDirectoryIndex(t *testing.T) {
	t.Parallel()

	listing := `<html><head><title>Index of /assemblies</title></head><body>
	<h1>Index of /assemblies</h1>
	<pre>
	<a href="../">../</a>
	<a href="URDJ_2_Sarcandra_glabra/">URDJ_2_Sarcandra_glabra/</a>
	<a href="ROAP_Amborella_trichopoda/">ROAP_Amborella_trichopoda/</a>
	<a href="checksums.md5">checksums.md5</a>
	</pre>
	</body></html>`

	entries, err := ParseDirectoryIndex(strings.NewReader(listing))
	if err != nil {
		t.Fatalf("ParseDirectoryIndex returned error: %v", err)
	}

	want := []string{"..", "URDJ_2_Sarcandra_glabra", "ROAP_Amborella_trichopoda", "checksums.md5"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

// TestParseDirectoryIndexMalformed tests that sloppy real-world HTML still
// yields the links in document order.
func TestParseDirectoryIndexMalformed(t *testing.T) {
	t.Parallel()

	// No html/body tags, unclosed anchors: the parser must cope.
	listing := `<a href="first_dir/">first<a href="second_dir/">second`

	entries, err := ParseDirectoryIndex(strings.NewReader(listing))
	if err != nil {
		t.Fatalf("ParseDirectoryIndex returned error: %v", err)
	}

	want := []string{"first_dir", "second_dir"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

// TestParseDirectoryIndexEmpty tests a listing without anchors.
func TestParseDirectoryIndexEmpty(t *testing.T) {
	t.Parallel()

	entries, err := ParseDirectoryIndex(strings.NewReader("<html><body>empty</body></html>"))
	if err != nil {
		t.Fatalf("ParseDirectoryIndex returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
}
