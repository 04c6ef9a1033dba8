package safesearch

import (
	"errors"
	"fmt"
)

const ErrorDocsURL = "https://cloud.google.com/apis/design/errors"

var ErrInvalidImage = errors.New("invalid input image")

// AnnotationError is returned when the service reports an error inside an
// otherwise successful response.
type AnnotationError struct {
	Code    int32
	Message string
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("%s\nFor more info on error messages, check: %s", e.Message, ErrorDocsURL)
}
