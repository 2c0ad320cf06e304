package remote

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadImage(t *testing.T) {
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/images", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get(HeaderAPIKey))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "logo.png", header.Filename)
		require.Equal(t, "image/png", header.Header.Get("Content-Type"))

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "PNGDATA", string(data))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":3,"url":"https://cdn.example.com/logo.png"}`)
	})

	url, err := client.UploadImage(context.Background(), "/tmp/logo.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/logo.png", url)
}

func TestUploadImage_JSONError(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = io.WriteString(w, `{"error":"file too large"}`)
	})

	_, err := client.UploadImage(context.Background(), "big.jpg", strings.NewReader("x"))
	require.EqualError(t, err, "file too large")
}

func TestUploadImage_TextError(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, "unsupported media type\n")
	})

	_, err := client.UploadImage(context.Background(), "a.bmp", strings.NewReader("x"))
	require.EqualError(t, err, "unsupported media type")
}

func TestUploadImage_JSONWithoutErrorField(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"bad","code":7}`)
	})

	_, err := client.UploadImage(context.Background(), "a.png", strings.NewReader("x"))
	require.EqualError(t, err, "image upload failed")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}

func TestUploadImage_EmptyError(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.UploadImage(context.Background(), "a.gif", strings.NewReader("x"))
	require.EqualError(t, err, "image upload failed")
}

func TestUploadImage_MissingURL(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":3}`)
	})

	_, err := client.UploadImage(context.Background(), "a.png", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestUploadImage_MissingFilename(t *testing.T) {
	client := New(Config{})
	_, err := client.UploadImage(context.Background(), " ", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrMissingFilename)
}
