package domain

// Content block types.
const (
	ContentTypeText = "text"
)

// Argument types understood by InputField.
const (
	ArgTypeString = "string"
)

// InputField describes one accepted argument of a tool.
type InputField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// ToolDescriptor defines metadata about a tool exposed to callers.
// This is used for discovery (tools/list) and for generating transport schemas.
type ToolDescriptor struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	InputSchema []InputField `json:"inputSchema"`
}

// RequiredFields returns the names of the required arguments, in declaration order.
func (d ToolDescriptor) RequiredFields() []string {
	var names []string
	for _, f := range d.InputSchema {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Call is a decoded request from a transport: a tool name and its raw arguments.
type Call struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ContentBlock is one typed chunk of a tool response.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the normalized response envelope returned for every Call.
type Result struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// TextResult builds a successful single-block result.
func TextResult(text string) Result {
	return Result{Content: []ContentBlock{{Type: ContentTypeText, Text: text}}}
}

// ErrorResult builds an error-flagged single-block result.
func ErrorResult(message string) Result {
	return Result{
		Content: []ContentBlock{{Type: ContentTypeText, Text: message}},
		IsError: true,
	}
}

// Text concatenates the text blocks of the result.
func (r Result) Text() string {
	var out string
	for _, c := range r.Content {
		if c.Type == ContentTypeText {
			out += c.Text
		}
	}
	return out
}
