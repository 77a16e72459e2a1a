package response

const (
	CodeSuccess    = 0
	CodeBusiness   = 1
	CodeUnexpected = -1
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func New(code int, msg string, data any) *Response {
	return &Response{
		Code: code,
		Msg:  msg,
		Data: data,
	}
}

func Success(data any) *Response {
	return New(CodeSuccess, "success", data)
}

func BusinessError(msg string, data ...any) *Response {
	var d any
	if len(data) != 0 {
		d = data[0]
	}
	return New(CodeBusiness, msg, d)
}

func UnexpectedError() *Response {
	return New(CodeUnexpected, "internal server error", nil)
}

func (r *Response) With(code int) *Response {
	r.Code = code
	return r
}
