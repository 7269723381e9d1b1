package types

// Object represents a single binary object submitted for analysis
type Object struct {
	// Name is the base file name of the object
	Name string `json:"name"`
	// Bytes is the raw content of the object
	Bytes []byte `json:"-"`
	// DeclaredMime is the MIME type reported by an upstream identification step
	DeclaredMime string `json:"declared_mime,omitempty"`
	// ComponentHints lists software components identified in the object by a
	// separate identification analysis (free-text descriptions)
	ComponentHints []string `json:"component_hints,omitempty"`
}

// Result represents a unified result type for all operations
type Result struct {
	// Basic information
	Version   string `json:"version"`
	Name      string `json:"name"`
	Source    string `json:"source"`
	Success   bool   `json:"success"`
	Error     error  `json:"error"`
	Timestamp int64  `json:"timestamp"`

	// Kernel configuration verdict (from extractor)
	IsKernelConfig bool   `json:"is_kernel_config"`
	KernelConfig   string `json:"kernel_config,omitempty"`

	// Summary labels and tags for downstream indexing
	Summary []string `json:"summary"`
	Tags    []string `json:"tags,omitempty"`

	// Filtered hardening report (from checksec); empty when the audit
	// failed or was skipped
	Checksec map[string]map[string]interface{} `json:"checksec,omitempty"`

	// Formatted output
	OutputFormatted string `json:"output_formatted,omitempty"`

	// Additional data
	Extra map[string]interface{} `json:"extra,omitempty"`
}
