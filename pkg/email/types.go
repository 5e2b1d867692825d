package email

// Message is one outbound email. TextBody is required; when HTMLBody is also
// set the message goes out as multipart/alternative.
type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
