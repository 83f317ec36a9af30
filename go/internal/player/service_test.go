package player

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labzang/soccer/go/internal/messenger"
	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/store/memory"
)

func do(t *testing.T, h http.Handler, method, path, body string) (int, messenger.Messenger, json.RawMessage) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(body)))

	var raw struct {
		messenger.Messenger
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw), rr.Body.String())
	return rr.Code, raw.Messenger, raw.Data
}

func TestPlayerEndpoints(t *testing.T) {
	h := NewService(NewApp(memory.NewPlayerStore(), nil, nil)).Routes()

	status, msg, _ := do(t, h, http.MethodPost, "/", `{"player_uk":"2000001","player_name":"김태호","team_uk":"K01"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "저장 성공: 1", msg.Message)

	_, msg, _ = do(t, h, http.MethodPost, "/saveAll", `[{"player_name":"정상남"},{"player_name":"김경태"}]`)
	assert.Equal(t, "일괄 저장 성공: 2개", msg.Message)

	_, msg, data := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, "전체 조회 성공: 3개", msg.Message)
	var list []models.Player
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[2].ID)

	_, msg, data = do(t, h, http.MethodPut, "/", `{"id":2,"nickname":"정"}`)
	assert.Equal(t, "수정 성공: 2", msg.Message)
	var p models.Player
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, "정상남", *p.PlayerName)
	assert.Equal(t, "정", *p.Nickname)

	_, msg, _ = do(t, h, http.MethodDelete, "/", `{"id":2}`)
	assert.Equal(t, "삭제 성공: 2", msg.Message)

	status, msg, _ = do(t, h, http.MethodPost, "/findById", `{"id":2}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, messenger.CodeNotFound, msg.Code)
	assert.Equal(t, "선수를 찾을 수 없습니다.", msg.Message)
}

func TestPlayerEndpointsRejectBadInput(t *testing.T) {
	h := NewService(NewApp(memory.NewPlayerStore(), nil, nil)).Routes()

	status, msg, _ := do(t, h, http.MethodDelete, "/", `{"player_name":"no id"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, messenger.CodeBadRequest, msg.Code)

	status, _, _ = do(t, h, http.MethodPost, "/saveAll", `{"player_name":"not a list"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}
