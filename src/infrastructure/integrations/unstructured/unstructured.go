// Package unstructured extracts plain text from PDF and DOCX files using the
// Unstructured partition API.
package unstructured

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"claimsight/src/log"
)

type UnstructuredService struct {
	baseURL    string
	httpClient *http.Client
}

type UnstructuredElement struct {
	Type      string   `json:"type"`
	Text      string   `json:"text"`
	ElementID string   `json:"element_id"`
	Metadata  Metadata `json:"metadata"`
}

type Metadata struct {
	Filename    string      `json:"filename,omitempty"`
	Filetype    string      `json:"filetype,omitempty"`
	PageNumber  int         `json:"page_number,omitempty"`
	Coordinates Coordinates `json:"coordinates,omitempty"`
	TableHTML   string      `json:"table_html,omitempty"`
}

type Coordinates struct {
	Points [][]float64 `json:"points"`
	System string      `json:"system"`
}

func NewUnstructuredService(baseURL string, c *http.Client) *UnstructuredService {
	if c == nil {
		c = http.DefaultClient
	}
	return &UnstructuredService{
		baseURL:    baseURL,
		httpClient: c,
	}
}

// ExtractText partitions a document and joins the element texts into one
// plain text body. The partition API handles both PDF and DOCX input.
func (s *UnstructuredService) ExtractText(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	elements, err := s.Partition(ctx, filename, data)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(elements))
	for _, element := range elements {
		if element.Text != "" {
			texts = append(texts, element.Text)
		}
	}

	return strings.Join(texts, "\n\n"), nil
}

// Partition sends a document to the partition endpoint and returns its
// elements chunked by title.
func (s *UnstructuredService) Partition(ctx context.Context, filename string, content []byte) ([]UnstructuredElement, error) {
	var requestBody bytes.Buffer
	multipartWriter := multipart.NewWriter(&requestBody)

	fileWriter, err := multipartWriter.CreateFormFile("files", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %v", err)
	}

	if _, err = io.Copy(fileWriter, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to write file content: %v", err)
	}

	fields := map[string]string{
		"chunking_strategy":     "by_title",
		"max_characters":        "5000",
		"combine_under_n_chars": "3500",
		"output_format":         "application/json",
	}
	for name, value := range fields {
		if err := multipartWriter.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %v", name, err)
		}
	}

	multipartWriter.Close()

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/general/v0/general", &requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", multipartWriter.FormDataContentType())

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error(fmt.Errorf("partition service error"), "failed to partition document",
			"status", resp.Status, "body", string(body))
		return nil, fmt.Errorf("conversion service error: %s", resp.Status)
	}

	var elements []UnstructuredElement
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, fmt.Errorf("failed to parse response: %v", err)
	}

	return elements, nil
}
