package entity

// StoredUpload describes one accepted file after it has been written to the
// file store under its collision-resistant key.
type StoredUpload struct {
	// Key is the blob key the file was stored under, including the
	// pipeline's kind prefix.
	Key string `json:"key"`

	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	SizeBytes    int64  `json:"size_bytes"`
}
