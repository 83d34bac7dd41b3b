package s3io

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// ContentTypeJPEG is the only upload content type the portal accepts.
const ContentTypeJPEG = "image/jpeg"

const uploadPrefix = "uploads"

// NewUploadKey mints a fresh object key for a user's image upload and
// returns it with the bare filename. ULIDs keep a user's objects
// time-sortable in bucket listings.
func NewUploadKey(userID string) (key, filename string) {
	filename = ulid.Make().String() + ".jpg"
	return fmt.Sprintf("%s/%s/%s", uploadPrefix, userID, filename), filename
}

// ParseUploadKey extracts the userID and filename from an upload key.
func ParseUploadKey(key string) (userID, filename string, ok bool) {
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != uploadPrefix || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}
