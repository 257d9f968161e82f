package replykit

import (
	"encoding/json"
	"net/http"
)

// Sender is the transmission seam of the underlying server
// the reply builder hands it the terminal triple exactly once
type Sender interface {
	Send(status int, headers map[string]string, body any) error
}

// SenderFunc adapts a function to Sender
type SenderFunc func(status int, headers map[string]string, body any) error

// Send implements Sender
func (f SenderFunc) Send(status int, headers map[string]string, body any) error {
	return f(status, headers, body)
}

// httpSender writes the triple to a stdlib ResponseWriter
type httpSender struct{ w http.ResponseWriter }

// HTTP returns a Sender over a ResponseWriter
// strings and byte slices go out raw, everything else as JSON
func HTTP(w http.ResponseWriter) Sender { return httpSender{w: w} }

func (s httpSender) Send(status int, headers map[string]string, body any) error {
	for name, value := range headers {
		s.w.Header().Set(name, value)
	}
	switch b := body.(type) {
	case nil:
		s.w.WriteHeader(status)
		return nil
	case string:
		s.setContentType("text/plain; charset=utf-8")
		s.w.WriteHeader(status)
		_, err := s.w.Write([]byte(b))
		return err
	case []byte:
		s.setContentType("application/octet-stream")
		s.w.WriteHeader(status)
		_, err := s.w.Write(b)
		return err
	default:
		s.setContentType("application/json; charset=utf-8")
		s.w.WriteHeader(status)
		return json.NewEncoder(s.w).Encode(body)
	}
}

// setContentType fills content type only when a header has not set one
func (s httpSender) setContentType(ct string) {
	if s.w.Header().Get("Content-Type") == "" {
		s.w.Header().Set("Content-Type", ct)
	}
}
