package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	testKey  = "3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88"
	testIP   = "192.0.2.1" // httptest.NewRequest RemoteAddr
	testPath = "/newsletter"
)

// helper: new Echo with the middleware and a simple route
func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(Idempotency(rdb, ttl, nil))
	e.POST(testPath, handler)
	e.GET(testPath, handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// counting handler to exercise respRecorder capture & saveFinal
func countingHandler(calls *int32, code int) echo.HandlerFunc {
	return func(c echo.Context) error {
		n := atomic.AddInt32(calls, 1)
		return c.JSON(code, map[string]any{"call": n})
	}
}

func Test_BypassOnGET(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 30*time.Second, countingHandler(&calls, http.StatusOK))
	rec := doReq(t, e, http.MethodGet, testPath, nil, map[string]string{HeaderIdempotencyKey: testKey})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(mr.Keys()) != 0 {
		t.Fatalf("GET must not touch redis, keys=%v", mr.Keys())
	}
}

func Test_NoHeader_PassesThrough(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 30*time.Second, countingHandler(&calls, http.StatusCreated))

	for i := 0; i < 2; i++ {
		rec := doReq(t, e, http.MethodPost, testPath, mkJSONBody(t, map[string]int{"x": 1}), nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("want 201, got %d", rec.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("handler calls = %d, want 2", calls)
	}
	if len(mr.Keys()) != 0 {
		t.Fatalf("no key should be stored, keys=%v", mr.Keys())
	}
}

func Test_InvalidKey(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 30*time.Second, countingHandler(&calls, http.StatusCreated))

	for _, k := range []string{"short", "has spaces in it", "semi;colon;key"} {
		rec := doReq(t, e, http.MethodPost, testPath, mkJSONBody(t, map[string]int{"x": 1}), map[string]string{HeaderIdempotencyKey: k})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("key %q => want 400, got %d", k, rec.Code)
		}
	}
	if calls != 0 {
		t.Fatalf("handler must not run, calls=%d", calls)
	}
}

func Test_HappyPath_Then_Replay(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls, http.StatusCreated))
	h := map[string]string{HeaderIdempotencyKey: testKey}

	rec1 := doReq(t, e, http.MethodPost, testPath, mkJSONBody(t, map[string]any{"email": "a@b.co"}), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first request => want 201, got %d, body: %s", rec1.Code, rec1.Body.String())
	}

	rec2 := doReq(t, e, http.MethodPost, testPath, mkJSONBody(t, map[string]any{"email": "a@b.co"}), h)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay => want 201, got %d, body: %s", rec2.Code, rec2.Body.String())
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("replay body mismatch: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
	if ttl := mr.TTL(buildKey(http.MethodPost, testPath, testIP, testKey)); ttl != 2*time.Minute {
		t.Fatalf("stored ttl = %v", ttl)
	}
}

func Test_ServerErrorIsNotRemembered(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, time.Minute, countingHandler(&calls, http.StatusInternalServerError))
	h := map[string]string{HeaderIdempotencyKey: testKey}

	doReq(t, e, http.MethodPost, testPath, mkJSONBody(t, map[string]int{"x": 1}), h)
	doReq(t, e, http.MethodPost, testPath, mkJSONBody(t, map[string]int{"x": 1}), h)
	if calls != 2 {
		t.Fatalf("a failed request must be retryable, calls=%d", calls)
	}
	if mr.Exists(buildKey(http.MethodPost, testPath, testIP, testKey)) {
		t.Fatal("key should have been released")
	}
}

func Test_Conflict_When_InProgress(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls, http.StatusCreated))

	body := []byte(`{"x":1}`)
	key := buildKey(http.MethodPost, testPath, testIP, testKey)
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash(body), CreatedAt: time.Now().UTC()}
	if ok, err := provisionalSet(context.Background(), rdb, key, entry); err != nil || !ok {
		t.Fatalf("seed provisional failed, ok=%v err=%v", ok, err)
	}

	rec := doReq(t, e, http.MethodPost, testPath, bytes.NewReader(body), map[string]string{HeaderIdempotencyKey: testKey})
	if rec.Code != http.StatusConflict {
		t.Fatalf("in-progress => want 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func Test_Conflict_When_SameKey_DifferentBody(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var calls int32
	e := setupEcho(rdb, 2*time.Minute, countingHandler(&calls, http.StatusCreated))

	key := buildKey(http.MethodPost, testPath, testIP, testKey)
	final := idempEntry{
		Code:       http.StatusCreated,
		Body:       []byte(`{"ok":true}`),
		BodySHA256: bodyHash([]byte(`{"x":1}`)),
		CreatedAt:  time.Now().UTC(),
	}
	if err := saveFinal(context.Background(), rdb, key, final, 5*time.Minute); err != nil {
		t.Fatalf("seed final failed: %v", err)
	}

	rec := doReq(t, e, http.MethodPost, testPath, bytes.NewReader([]byte(`{"x":2}`)), map[string]string{HeaderIdempotencyKey: testKey})
	if rec.Code != http.StatusConflict {
		t.Fatalf("different body same key => want 409, got %d", rec.Code)
	}
}

func Test_StoreUnavailable_Returns503(t *testing.T) {
	// closed address → SetNX error
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	var calls int32
	e := setupEcho(rdb, time.Minute, countingHandler(&calls, http.StatusCreated))

	rec := doReq(t, e, http.MethodPost, testPath, bytes.NewReader([]byte(`{}`)), map[string]string{HeaderIdempotencyKey: testKey})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("store unavailable => want 503, got %d", rec.Code)
	}
}
