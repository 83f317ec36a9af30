package messenger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	Write(rr, Success("조회 성공", map[string]int{"id": 7}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":200,"message":"조회 성공","data":{"id":7}}`, rr.Body.String())
}

func TestWriteNotFoundKeepsTransportOK(t *testing.T) {
	rr := httptest.NewRecorder()
	Write(rr, NotFound("선수를 찾을 수 없습니다."))

	assert.Equal(t, http.StatusOK, rr.Code)

	var got Messenger
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, CodeNotFound, got.Code)
	assert.Nil(t, got.Data)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Error("boom").HTTPStatus())
	assert.Equal(t, http.StatusOK, Success("ok", nil).HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, BadGateway("upstream").HTTPStatus())
	assert.Equal(t, http.StatusOK, NotFound("missing").HTTPStatus())
}
