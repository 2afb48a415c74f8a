package model

// UploadRequest is a single accepted upload. It lives for one request only.
type UploadRequest struct {
	// Filename is the sanitized name echoed back to the client.
	Filename string
	// OriginalFilename is the name as sent by the client.
	OriginalFilename string
	// Extension is lower-cased and has no leading dot (e.g. "png").
	Extension string
	// MIMEType is the declared content type of the part.
	MIMEType string
	Data     []byte
}

// Size returns the payload length in bytes.
func (r UploadRequest) Size() int64 {
	return int64(len(r.Data))
}
