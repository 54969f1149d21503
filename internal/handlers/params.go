package handlers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/apperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
)

const maxImageBytes = 10 << 20

// pathID parses a positive integer path parameter. On failure the 400 has
// already been written.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", fmt.Sprintf("Invalid %s.", name))
		return 0, false
	}
	return uint(id), true
}

// queryInt reads an integer query parameter, falling back to def when it is
// absent.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_query", fmt.Sprintf("Invalid %s.", name))
		return 0, false
	}
	return v, true
}

// formFile returns the bytes of an optional multipart file part. A missing
// part yields nil.
func formFile(c *gin.Context, name string) ([]byte, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, nil
	}
	if fh.Size > maxImageBytes {
		return nil, apperr.Validation("file_too_large", "Image must be at most %d MB.", maxImageBytes>>20)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}
