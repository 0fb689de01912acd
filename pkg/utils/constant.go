package utils

import "github.com/lib/pq"

// Order status
const (
	ORDER_STATUS_PENDING   = "PENDING"
	ORDER_STATUS_PAID      = "PAID"
	ORDER_STATUS_APPROVED  = "APPROVED"
	ORDER_STATUS_SHIPPING  = "SHIPPING"
	ORDER_STATUS_COMPLETED = "COMPLETED"
	ORDER_STATUS_REJECTED  = "REJECTED"
	ORDER_STATUS_CANCELLED = "CANCELLED"
)

// RecognizedOrderStatuses are the statuses counted as revenue. Every aggregate
// query filters on this value, do not build the list anywhere else.
var RecognizedOrderStatuses = pq.StringArray{
	ORDER_STATUS_PAID,
	ORDER_STATUS_APPROVED,
	ORDER_STATUS_SHIPPING,
	ORDER_STATUS_COMPLETED,
}

const (
	DATE_FORMAT            = "2006-01-02"
	REPORT_DATE_FORMAT     = "02/01/2006"
	TIME_FORMAT_FOR_EXPORT = "2006-01-02 15:04:05"
)

const (
	MIN_REPORT_YEAR = 2000
	MAX_REPORT_YEAR = 2100
)

// Gateway headers
const (
	HEADER_USER_ID    = "x-user-id"
	HEADER_USER_NAME  = "x-user-name"
	HEADER_USER_ROLES = "x-user-roles"
)

const (
	DEFAULT_EXPORTER_NAME = "Quản trị viên"
	DEFAULT_EXPORTER_ROLE = "admin"
)

// Export
const (
	XLSX_CONTENT_TYPE       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	REVENUE_REPORT_FILENAME = "Bao_Cao_Doanh_Thu_T%d_%d.xlsx"
	ORDER_LISTING_FILENAME  = "tat_ca_don_hang.xlsx"
	EMPTY_PLACEHOLDER       = "—"
	CURRENCY_SYMBOL         = "₫"
)
