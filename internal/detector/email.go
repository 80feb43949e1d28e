package detector

var emailRegex = compile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// EmailDetector matches ASCII email addresses of the form
// local-part@domain.tld.
type EmailDetector struct{}

// Name implements Detector.
func (EmailDetector) Name() string { return "email" }

// Category implements Detector.
func (EmailDetector) Category() Category { return CategoryEmail }

// Detect implements Detector.
func (EmailDetector) Detect(text string) []Span {
	return findAll(emailRegex, text, CategoryEmail, 0.95)
}
