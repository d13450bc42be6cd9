package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// VideoFormField is the multipart field carrying an uploaded video file
const VideoFormField = "file"

// CreateVideoFormBody builds a multipart body with a single video file and returns it with its content type
func CreateVideoFormBody(t *testing.T, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+VideoFormField+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// CreateVideoFileHeader parses a multipart body and returns the header of the uploaded video file
func CreateVideoFileHeader(t *testing.T, fileName, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, formContentType := CreateVideoFormBody(t, fileName, contentType, content)

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", formContentType)
	require.NoError(t, req.ParseMultipartForm(32<<20))

	fileHeaders := req.MultipartForm.File[VideoFormField]
	require.Len(t, fileHeaders, 1)

	return fileHeaders[0]
}
