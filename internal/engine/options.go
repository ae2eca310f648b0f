package engine

// Option configures a Session during creation.
type Option func(*Session)

// WithContent sets the initial content of the session.
func WithContent(content string) Option {
	return func(s *Session) {
		s.initContent = content
	}
}

// WithVerify enables a full consistency check after every command.
// A failed check panics with a *cursor.InconsistencyError.
func WithVerify() Option {
	return func(s *Session) {
		s.verify = true
	}
}
