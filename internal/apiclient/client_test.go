package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/internal/note"
)

func TestSaveNote(t *testing.T) {
	var got note.Note
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"message": "saved", "id": got.ID})
	}))
	defer srv.Close()

	c := New(srv.URL)
	n := note.Note{ID: "n1", CanvasID: 3, TabID: 7, Text: "[] milk", X: 40, Y: 60}
	require.NoError(t, c.SaveNote(context.Background(), n))
	assert.Equal(t, n, got)
}

func TestListNotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/3", r.URL.Path)
		json.NewEncoder(w).Encode([]note.Note{
			{ID: "a", CanvasID: 3, Text: "one", X: 20, Y: 20},
			{ID: "b", CanvasID: 3, Text: "two", X: 40, Y: 40},
		})
	}))
	defer srv.Close()

	notes, err := New(srv.URL).ListNotes(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "one", notes[0].Text)
}

func TestErrorBodySurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "name is required"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateCanvas(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestDeleteTab(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tabs/5", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]int64{"notesDeleted": 4})
	}))
	defer srv.Close()

	n, err := New(srv.URL).DeleteTab(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestUploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload-image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, fh, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "shot.png", fh.Filename)
		json.NewEncoder(w).Encode(map[string]string{"imageUrl": "/uploads/abc.png"})
	}))
	defer srv.Close()

	url, err := New(srv.URL).UploadImage(context.Background(), "shot.png", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", url)
}

func TestShare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/share", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "scratch", body["name"])
		json.NewEncoder(w).Encode(map[string]string{"shareUrl": "https://shares.example/abc"})
	}))
	defer srv.Close()

	url, err := New(srv.URL).Share(context.Background(), 1, "scratch", "<html></html>")
	require.NoError(t, err)
	assert.Equal(t, "https://shares.example/abc", url)
}
