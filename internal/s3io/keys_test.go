package s3io

import (
	"strings"
	"testing"
)

func TestNewUploadKey_Shape(t *testing.T) {
	key, filename := NewUploadKey("user-123")
	if !strings.HasPrefix(key, "uploads/user-123/") {
		t.Errorf("key = %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key = %q, want .jpg suffix", key)
	}
	if !strings.HasSuffix(key, filename) {
		t.Errorf("key %q does not end with filename %q", key, filename)
	}
}

func TestNewUploadKey_Unique(t *testing.T) {
	a, _ := NewUploadKey("u")
	b, _ := NewUploadKey("u")
	if a == b {
		t.Errorf("two keys collided: %q", a)
	}
}

func TestParseUploadKey(t *testing.T) {
	cases := []struct {
		key      string
		userID   string
		filename string
		ok       bool
	}{
		{"uploads/u1/img.jpg", "u1", "img.jpg", true},
		{"uploads/u1/", "", "", false},
		{"uploads//img.jpg", "", "", false},
		{"other/u1/img.jpg", "", "", false},
		{"uploads/u1/extra/img.jpg", "", "", false},
		{"", "", "", false},
	}
	for _, tc := range cases {
		userID, filename, ok := ParseUploadKey(tc.key)
		if ok != tc.ok || userID != tc.userID || filename != tc.filename {
			t.Errorf("ParseUploadKey(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.key, userID, filename, ok, tc.userID, tc.filename, tc.ok)
		}
	}
}

func TestParseUploadKey_RoundTrip(t *testing.T) {
	key, filename := NewUploadKey("user-123")
	userID, fn, ok := ParseUploadKey(key)
	if !ok || userID != "user-123" || fn != filename {
		t.Errorf("round trip failed: (%q, %q, %v)", userID, fn, ok)
	}
}
