package models

type AnalyzeResponse struct {
	ID       string         `json:"id"`
	Result   AnalysisResult `json:"result"`
	Raw      string         `json:"raw"`
	Warnings []string       `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Hint  string `json:"hint,omitempty"`
	Field string `json:"field,omitempty"`
}

// UploadResponse describes the text extracted from one uploaded file.
type UploadResponse struct {
	Field      string `json:"field"`
	Filename   string `json:"filename"`
	Text       string `json:"text"`
	Characters int    `json:"characters"`
}
