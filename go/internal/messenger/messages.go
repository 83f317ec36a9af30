package messenger

import "fmt"

// Messages shared by the CRUD endpoints
const (
	MsgFound = "조회 성공"
)

func FoundAll(n int) string {
	return fmt.Sprintf("전체 조회 성공: %d개", n)
}

func Saved(id int64) string {
	return fmt.Sprintf("저장 성공: %d", id)
}

func SavedAll(n int) string {
	return fmt.Sprintf("일괄 저장 성공: %d개", n)
}

func Updated(id int64) string {
	return fmt.Sprintf("수정 성공: %d", id)
}

func Deleted(id int64) string {
	return fmt.Sprintf("삭제 성공: %d", id)
}
