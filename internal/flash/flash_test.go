package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddThenDrain(t *testing.T) {
	store := NewStore("test-secret")

	// The write path sets a message.
	writeRec := httptest.NewRecorder()
	writeReq := httptest.NewRequest(http.MethodPost, "/add_product", nil)
	require.NoError(t, store.Add(writeRec, writeReq, "Product added successfully."))

	cookies := writeRec.Result().Cookies()
	require.NotEmpty(t, cookies, "adding a flash must set the session cookie")

	// The next read drains it.
	readRec := httptest.NewRecorder()
	readReq := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	for _, c := range cookies {
		readReq.AddCookie(c)
	}

	messages := store.Drain(readRec, readReq)
	assert.Equal(t, []string{"Product added successfully."}, messages)

	// A further read with the updated cookie sees nothing.
	nextRec := httptest.NewRecorder()
	nextReq := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	for _, c := range readRec.Result().Cookies() {
		nextReq.AddCookie(c)
	}

	assert.Empty(t, store.Drain(nextRec, nextReq))
}

func TestStore_DrainWithoutMessages(t *testing.T) {
	store := NewStore("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)

	assert.Empty(t, store.Drain(rec, req))
	assert.Empty(t, rec.Result().Cookies(), "an empty drain must not touch the session")
}

func TestStore_MultipleMessages(t *testing.T) {
	store := NewStore("test-secret")

	writeRec := httptest.NewRecorder()
	writeReq := httptest.NewRequest(http.MethodPost, "/add_product", nil)
	require.NoError(t, store.Add(writeRec, writeReq, "first"))

	// A second write on the same session appends.
	secondRec := httptest.NewRecorder()
	secondReq := httptest.NewRequest(http.MethodPost, "/add_client", nil)
	for _, c := range writeRec.Result().Cookies() {
		secondReq.AddCookie(c)
	}
	require.NoError(t, store.Add(secondRec, secondReq, "second"))

	readRec := httptest.NewRecorder()
	readReq := httptest.NewRequest(http.MethodGet, "/clients", nil)
	for _, c := range secondRec.Result().Cookies() {
		readReq.AddCookie(c)
	}

	assert.Equal(t, []string{"first", "second"}, store.Drain(readRec, readReq))
}
