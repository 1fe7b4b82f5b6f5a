package response

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"

	ServerErrorMessage = "terjadi kegagalan pada server kami"
)

// Envelope wraps every JSON body the API returns.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// Fail reports a client error with a message safe to show to users.
func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

func ServerError() Envelope {
	return Envelope{Status: StatusError, Message: ServerErrorMessage}
}
