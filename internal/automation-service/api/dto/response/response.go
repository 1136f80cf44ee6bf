package response

type Response struct {
	Message string `json:"message"`
}

type ImportResponse struct {
	ImportedCount int      `json:"imported_count"`
	Imported      []string `json:"imported,omitempty"`
	Message       string   `json:"message,omitempty"`
}
