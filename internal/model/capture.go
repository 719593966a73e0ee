package model

// Capture is the input to classification and the immutable payload of a
// memory. It is a closed sum over the five capture kinds; each variant
// carries only the fields that apply to it.
type Capture interface {
	// Kind returns the capture type.
	Kind() Type
	// Body returns the raw captured payload.
	Body() string
	// Origin returns the provenance tag (e.g. "quick-capture", "sample").
	Origin() string

	isCapture()
}

// URLCapture is a saved web link.
type URLCapture struct {
	Content string
	Source  string
	URL     string
}

func (URLCapture) Kind() Type       { return TypeURL }
func (c URLCapture) Body() string   { return c.Content }
func (c URLCapture) Origin() string { return c.Source }
func (URLCapture) isCapture()       {}

// TextCapture is a plain note.
type TextCapture struct {
	Content string
	Source  string
}

func (TextCapture) Kind() Type       { return TypeText }
func (c TextCapture) Body() string   { return c.Content }
func (c TextCapture) Origin() string { return c.Source }
func (TextCapture) isCapture()       {}

// ImageCapture is a captured image with an optional description as content.
type ImageCapture struct {
	Content  string
	Source   string
	FileURL  string
	FileName string
}

func (ImageCapture) Kind() Type       { return TypeImage }
func (c ImageCapture) Body() string   { return c.Content }
func (c ImageCapture) Origin() string { return c.Source }
func (ImageCapture) isCapture()       {}

// AudioCapture is a voice recording with an optional transcript as content.
type AudioCapture struct {
	Content  string
	Source   string
	FileURL  string
	FileName string
}

func (AudioCapture) Kind() Type       { return TypeAudio }
func (c AudioCapture) Body() string   { return c.Content }
func (c AudioCapture) Origin() string { return c.Source }
func (AudioCapture) isCapture()       {}

// FileCapture is an attached document.
type FileCapture struct {
	Content  string
	Source   string
	FileURL  string
	FileName string
}

func (FileCapture) Kind() Type       { return TypeFile }
func (c FileCapture) Body() string   { return c.Content }
func (c FileCapture) Origin() string { return c.Source }
func (FileCapture) isCapture()       {}
