package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> preset value) and explicit false.
type GenerateRequest struct {
	Preset    string `json:"preset,omitempty"`
	Length    int    `json:"length,omitempty"`
	Lowercase *bool  `json:"lowercase,omitempty"`
	Uppercase *bool  `json:"uppercase,omitempty"`
	Numbers   *bool  `json:"numbers,omitempty"`
	Symbols   *bool  `json:"symbols,omitempty"`
}

// GenerateResponse represents a generated password.
type GenerateResponse struct {
	Password string            `json:"password"`
	Length   int               `json:"length"`
	Derived  map[string]string `json:"derived,omitempty"`
}

// TransformResponse holds a password next to each of its standard transforms.
type TransformResponse struct {
	Original string `json:"original"`
	Hashed   string `json:"hashed"`
	Salted   string `json:"salted"`
	Reversed string `json:"reversed"`
}
