// Package etag implements ETag / If-None-Match handling as RECOMMENDED by ORD
// for discovery document endpoints, according to RFC 7232.
package etag

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
)

// Middleware buffers every 200 response, tags it with a strong ETag derived
// from the body, and answers matching If-None-Match revalidations with 304.
// Non-200 responses are passed through untagged.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &bufferingWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status != http.StatusOK {
			rec.flush()
			return
		}

		sum := sha256.Sum256(rec.buf.Bytes())
		tag := fmt.Sprintf("%q", hex.EncodeToString(sum[:16]))
		w.Header().Set("ETag", tag)

		if ifNoneMatchContains(r.Header.Get("If-None-Match"), tag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		rec.flush()
	})
}

// ifNoneMatchContains matches the tag against the If-None-Match list per
// RFC 7232 section 3.2: comma separated candidates, "*" matching anything, and
// weak comparison ignoring a W/ prefix.
func ifNoneMatchContains(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == tag {
			return true
		}
	}
	return false
}

// bufferingWriter delays the write-out so the ETag can be computed first.
type bufferingWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (b *bufferingWriter) WriteHeader(code int) {
	b.status = code
}

func (b *bufferingWriter) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *bufferingWriter) flush() {
	b.ResponseWriter.WriteHeader(b.status)
	_, _ = b.ResponseWriter.Write(b.buf.Bytes())
}
