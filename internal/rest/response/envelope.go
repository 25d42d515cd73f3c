package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the body of every API response
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Fail is for errors the client caused.
func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

// Error is for server-side failures; the cause is never exposed.
func Error() Envelope {
	return Envelope{Status: StatusError, Message: "an error occurred on our server"}
}
