package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"dms/internal/config"
	"dms/internal/domain/document"
	"dms/internal/domain/download"
	"dms/internal/domain/upload"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

type testApp struct {
	router  *gin.Engine
	db      *gorm.DB
	cookies []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	cfg := &config.Config{
		DatabaseURL:    ":memory:",
		SessionSecret:  "test-secret",
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 16 << 20,
	}

	router, err := New(cfg, db)
	require.NoError(t, err)

	return &testApp{router: router, db: db}
}

func (a *testApp) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	for _, c := range a.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		a.cookies = cookies
	}
	return w
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(t, req)
}

func (a *testApp) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	return a.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
}

func TestApp_EndToEnd(t *testing.T) {
	a := newTestApp(t)

	// anonymous requests are redirected to the login form
	w := a.do(t, httptest.NewRequest("GET", "/master/documents", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// the seeded admin can log in
	w = a.login(t, "admin", "admin123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/menu", w.Header().Get("Location"))

	// create alice
	w = a.postForm(t, "/master/users", url.Values{
		"username":   {"alice"},
		"password":   {"pw123"},
		"department": {"Eng"},
		"name":       {"Alice"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	// alice can log in with the right password only
	a.cookies = nil
	w = a.login(t, "alice", "wrong")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = a.login(t, "alice", "pw123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/menu", w.Header().Get("Location"))

	// one of the two submitted lines is fully blank and must be dropped
	w = a.postForm(t, "/master/documents", url.Values{
		"document_number":    {"DOC-1"},
		"revision_number":    {"REV-A"},
		"status":             {"ACTIVE"},
		"quantity[]":         {"5", ""},
		"material_number[]":  {"M1", ""},
		"material_name[]":    {"Bolt", ""},
		"vendor[]":           {"VendorX", ""},
		"price[]":            {"1.50", ""},
	})
	require.Equal(t, http.StatusFound, w.Code)

	var lines []document.Line
	require.NoError(t, a.db.Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, "DOC-1", lines[0].DocumentNumber)
	assert.Equal(t, "Bolt", lines[0].MaterialName)

	// upload a file for the revision
	fileContent := []byte("%PDF-1.4 spec body")
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("document_number", "DOC-1"))
	require.NoError(t, mw.WriteField("revision_number", "REV-A"))
	fw, err := mw.CreateFormFile("file", "spec.pdf")
	require.NoError(t, err)
	_, err = fw.Write(fileContent)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w = a.do(t, req)
	require.Equal(t, http.StatusFound, w.Code)

	var recs []upload.Record
	require.NoError(t, a.db.Find(&recs).Error)
	require.Len(t, recs, 1)
	assert.Equal(t, "spec.pdf", recs[0].Filename)
	assert.Equal(t, "alice", recs[0].UploadedBy)

	// downloading streams the original bytes and appends one ledger row
	w = a.do(t, httptest.NewRequest("GET", "/download_file/"+strconv.FormatInt(recs[0].ID, 10), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, fileContent, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "spec.pdf")

	var events []download.Event
	require.NoError(t, a.db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, recs[0].ID, events[0].UploadID)
	assert.Equal(t, "alice", events[0].DownloadedBy)

	// an unknown upload id redirects and writes nothing
	w = a.do(t, httptest.NewRequest("GET", "/download_file/99999", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/download", w.Header().Get("Location"))

	var count int64
	require.NoError(t, a.db.Model(&download.Event{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// the report page renders all three sections
	w = a.do(t, httptest.NewRequest("GET", "/view_report?material_name=Bolt", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bolt")
	assert.Contains(t, w.Body.String(), "spec.pdf")

	// logging out closes the door again
	w = a.do(t, httptest.NewRequest("GET", "/logout", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	w = a.do(t, httptest.NewRequest("GET", "/menu", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestApp_SuggestEndpointIsPublic(t *testing.T) {
	a := newTestApp(t)

	// seed a couple of lines as admin
	a.login(t, "admin", "admin123")
	a.postForm(t, "/master/documents", url.Values{
		"document_number":   {"DOC-7"},
		"revision_number":   {"REV-C"},
		"quantity[]":        {"1"},
		"material_number[]": {"M7"},
		"material_name[]":   {"Gear"},
		"vendor[]":          {"V"},
		"price[]":           {"9.99"},
	})

	// no cookie at all
	a.cookies = nil
	w := a.do(t, httptest.NewRequest("GET", "/api/search_documents?term=DOC-7", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var suggestions []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestions))
	require.Len(t, suggestions, 1)
	assert.Equal(t, "DOC-7", suggestions[0]["document_number"])
	assert.Equal(t, "REV-C", suggestions[0]["revision_number"])

	// unmatched terms still answer with an empty array
	w = a.do(t, httptest.NewRequest("GET", "/api/search_documents?term=zzz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestApp_IndexRedirects(t *testing.T) {
	a := newTestApp(t)

	w := a.do(t, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	a.login(t, "admin", "admin123")
	w = a.do(t, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/menu", w.Header().Get("Location"))
}
