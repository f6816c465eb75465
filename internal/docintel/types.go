package docintel

// AnalyzeResult is the decoded result of one document analysis operation:
// zero-or-one typed documents, page/line geometry, and the full recognized
// text.
type AnalyzeResult struct {
	APIVersion string      `json:"apiVersion,omitempty"`
	ModelID    string      `json:"modelId,omitempty"`
	Content    string      `json:"content"`
	Documents  []Document  `json:"documents,omitempty"`
	Pages      []Page      `json:"pages,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs,omitempty"`
}

// Document is one recognized document instance: a bag of typed fields keyed
// by the model's field names.
type Document struct {
	DocType    string           `json:"docType,omitempty"`
	Confidence float64          `json:"confidence,omitempty"`
	Fields     map[string]Field `json:"fields,omitempty"`
}

// Page holds the detected text lines of a single page in reading order.
type Page struct {
	PageNumber int     `json:"pageNumber"`
	Angle      float64 `json:"angle,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Lines      []Line  `json:"lines,omitempty"`
}

// Line is a detected text line with its bounding polygon as alternating
// x/y coordinates.
type Line struct {
	Content string    `json:"content"`
	Polygon []float64 `json:"polygon,omitempty"`
}

// Paragraph is an optional paragraph-level text grouping.
type Paragraph struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content"`
}

// operation is the long-running operation envelope returned while polling.
type operation struct {
	Status        string          `json:"status"`
	AnalyzeResult *AnalyzeResult  `json:"analyzeResult,omitempty"`
	Error         *OperationError `json:"error,omitempty"`
}

// OperationError is the service-reported failure of an analysis operation.
type OperationError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
