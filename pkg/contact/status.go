package contact

// Status 提交状态：IDLE → SENDING → SUCCESS | ERROR
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSuccess
	StatusError
)

// String 返回状态名
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusSending:
		return "SENDING"
	case StatusSuccess:
		return "SUCCESS"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Message 面向用户的状态提示
func (s Status) Message() string {
	switch s {
	case StatusSending:
		return "SENDING..."
	case StatusSuccess:
		return "MESSAGE SENT. THANK YOU."
	case StatusError:
		return "SOMETHING WENT WRONG. PLEASE TRY AGAIN."
	default:
		return ""
	}
}
