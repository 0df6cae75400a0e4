package models

// NoticeKind distinguishes success and failure notices
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient, user-visible notification (a toast).
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message,omitempty"`
}

// SuccessNotice builds a success notice
func SuccessNotice(title, message string) Notice {
	return Notice{Kind: NoticeSuccess, Title: title, Message: message}
}

// ErrorNotice builds a failure notice
func ErrorNotice(title, message string) Notice {
	return Notice{Kind: NoticeError, Title: title, Message: message}
}
