package utils

import "net/http"

var messageError map[int]string

func LoadMessageError() {
	messageError = make(map[int]string)
	messageError[http.StatusOK] = "Successfully"
	messageError[http.StatusInternalServerError] = "Internal server error"
	messageError[http.StatusBadRequest] = "Something when wrong with your request"
	messageError[http.StatusUnauthorized] = "Unauthorized, Permission denied"
	messageError[http.StatusNotFound] = "Record not found, Please check your input"
	messageError[http.StatusGatewayTimeout] = "Gateway time out"
}

func MessageError() map[int]string {
	if messageError == nil {
		LoadMessageError()
	}
	return messageError
}

// Input errors of the reporting endpoints
const (
	ERR_INVALID_DATE  = "Ngày không hợp lệ, định dạng YYYY-MM-DD"
	ERR_INVALID_MONTH = "Tháng phải nằm trong khoảng 1 - 12"
	ERR_INVALID_YEAR  = "Năm không hợp lệ"
)
