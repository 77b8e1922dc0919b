package pager

// PageSize is the number of rows shown per page.
const PageSize = 8

// List keys with their own column headers.
const (
	KeyUsers        = "users"
	KeyMineAssigned = "mine_assigned"
	KeyMinePending  = "mine_pending"
	KeyToday        = "today"
	KeyMineRange    = "mine_range"
)

// Row is one table line: date, item, third column, status.
type Row [4]string

// Cursor is the per-user paging state. It is replaced as a whole on every
// change.
type Cursor struct {
	ListKey string
	Title   string
	Rows    []Row
	Index   int
}

// Page is one rendered page of a cursor.
type Page struct {
	ListKey string
	Title   string
	Headers Row
	Rows    []Row
	Index   int
	Total   int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Index > 0 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Index < p.Total-1 }

var headersByKey = map[string]Row{
	KeyUsers:        {"อัปเดต", "ผู้ใช้ (บทบาท)", "สถานะ", "-"},
	KeyMineAssigned: {"วันที่", "รายการ (#ID)", "ผู้รับ", "สถานะ"},
	KeyMinePending:  {"วันที่", "รายการ (#ID)", "กำหนดส่ง", "สถานะ"},
	KeyToday:        {"วันที่", "รายการ (#ID)", "กำหนดส่ง", "สถานะ"},
	KeyMineRange:    {"วันที่", "รายการ (#ID)", "กำหนดส่ง", "สถานะ"},
}

var defaultHeaders = Row{"วันที่", "รายการ", "กำหนดส่ง", "สถานะ"}

// Headers returns the column headers for listKey.
func Headers(listKey string) Row {
	if h, ok := headersByKey[listKey]; ok {
		return h
	}
	return defaultHeaders
}
