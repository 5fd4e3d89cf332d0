package types

// CombineResult holds the outcome of a combine attempt
type CombineResult struct {
	OutputPath string `json:"output_path"`
	FileCount  int    `json:"file_count"`
	Bytes      int    `json:"bytes"`
	Error      error  `json:"error,omitempty"`
}
