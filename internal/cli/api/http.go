package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	fsrepo "TodoKeeper/internal/cli/repo/fs"
)

func doJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPost, url, payload, token)
}

// PutJSON sends a JSON PUT request with the auth cookie.
func PutJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPut, url, payload, token)
}

// GetJSON sends a GET request with the auth cookie.
func GetJSON(url string, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodGet, url, nil, token)
}

// Delete sends a DELETE request with the auth cookie.
func Delete(url string, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodDelete, url, nil, token)
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет её
// в файловое хранилище по указанному пути.
func PersistAuthFromResponse(resp *http.Response, tokenPath string) error {
	store := fsrepo.AuthFSStore{TokenPath: tokenPath}
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}
