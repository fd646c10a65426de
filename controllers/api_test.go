package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	gorillasessions "github.com/gorilla/sessions"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"staybook-backend/controllers"
	"staybook-backend/models"
	"staybook-backend/routes"
	"staybook-backend/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Amenity{},
		&models.HotelAmenity{},
		&models.HotelImage{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	r := routes.SetupRouter(
		zerolog.Nop(),
		controllers.NewHotelController(services.NewCatalogService(db)),
		controllers.NewUserController(services.NewUserService(db)),
		controllers.NewBookingController(services.NewBookingService(db)),
		controllers.NewReviewController(services.NewReviewService(db)),
		"test-secret",
	)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response object: %v (%s)", err, w.Body.String())
	}
	return out
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	var out []any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response array: %v (%s)", err, w.Body.String())
	}
	return out
}

const registerBody = `{
	"email": "ayse@example.com",
	"password": "sturdy-pass1!",
	"first_name": "Ayse",
	"last_name": "Yilmaz",
	"country": "Turkey",
	"city": "Istanbul"
}`

func TestCurrentUser_NoSession(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/current_user", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeObject(t, w)
	if user, ok := body["user"]; !ok || user != nil {
		t.Fatalf("expected null user, got %v", body)
	}
}

func TestRegister_SessionRoundTrip(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	body := decodeObject(t, w)
	if body["message"] != "registration successful" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	user, ok := body["user"].(map[string]any)
	if !ok || user["email"] != "ayse@example.com" || user["username"] != "ayse@example.com" {
		t.Fatalf("unexpected user payload %v", body["user"])
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie on register")
	}

	w2 := doJSON(t, r, http.MethodGet, "/api/auth/current_user", "", cookies)
	body2 := decodeObject(t, w2)
	user2, ok := body2["user"].(map[string]any)
	if !ok || user2["email"] != "ayse@example.com" {
		t.Fatalf("expected session user, got %v", body2)
	}
}

func TestRegister_ValidationAndConflict(t *testing.T) {
	r, _ := newRouter(t)

	shortPass := strings.Replace(registerBody, "sturdy-pass1!", "short1", 1)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", shortPass, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := decodeObject(t, w)["error"]; msg != "password must be at least 8 characters" {
		t.Fatalf("unexpected error %v", msg)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody, nil); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", w.Code)
	}
	if msg := decodeObject(t, w)["error"]; msg != "this email is already in use" {
		t.Fatalf("unexpected error %v", msg)
	}
}

func doMultipartRegister(t *testing.T, r *gin.Engine, fields map[string]string, withPhoto bool) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			t.Fatalf("write field %q: %v", key, err)
		}
	}
	if withPhoto {
		fw, err := mw.CreateFormFile("photo", "me.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("not-really-a-jpeg")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerFields() map[string]string {
	return map[string]string{
		"email":      "ayse@example.com",
		"password":   "sturdy-pass1!",
		"first_name": "Ayse",
		"last_name":  "Yilmaz",
		"country":    "Turkey",
		"city":       "Istanbul",
	}
}

func TestRegister_WithPhoto(t *testing.T) {
	t.Chdir(t.TempDir())
	r, db := newRouter(t)

	w := doMultipartRegister(t, r, registerFields(), true)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var user models.User
	if err := db.Where("email = ?", "ayse@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if !strings.HasPrefix(user.Photo, "user_photos/") {
		t.Fatalf("expected stored photo path, got %q", user.Photo)
	}
	if _, err := os.Stat("uploads/" + user.Photo); err != nil {
		t.Fatalf("photo file missing: %v", err)
	}
}

func TestRegister_RejectedUploadLeavesNoFile(t *testing.T) {
	t.Chdir(t.TempDir())
	r, _ := newRouter(t)

	fields := registerFields()
	fields["password"] = "short1"
	w := doMultipartRegister(t, r, fields, true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}

	if _, err := os.Stat("uploads"); !os.IsNotExist(err) {
		t.Fatalf("rejected registration must not write files, stat err: %v", err)
	}
}

// saveFailStore refuses to persist sessions so the failure branch of
// session establishment is reachable in tests. Get and New hand out sessions
// bound to this store, otherwise Save would dispatch to the embedded store.
type saveFailStore struct {
	sessions.Store
}

func (s saveFailStore) Get(r *http.Request, name string) (*gorillasessions.Session, error) {
	return gorillasessions.GetRegistry(r).Get(s, name)
}

func (s saveFailStore) New(r *http.Request, name string) (*gorillasessions.Session, error) {
	session := gorillasessions.NewSession(s, name)
	session.IsNew = true
	return session, nil
}

func (s saveFailStore) Save(*http.Request, http.ResponseWriter, *gorillasessions.Session) error {
	return errors.New("cookie write refused")
}

func TestSessionSaveFailure_Returns500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	uc := controllers.NewUserController(services.NewUserService(db))

	r := gin.New()
	r.Use(sessions.Sessions("staybook_session", saveFailStore{cookie.NewStore([]byte("test-secret"))}))
	r.POST("/api/auth/register", uc.Register)
	r.POST("/api/auth/login", uc.Login)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("register: expected 500, got %d (%s)", w.Code, w.Body.String())
	}
	if msg := decodeObject(t, w)["error"]; msg != "internal server error" {
		t.Fatalf("register: unexpected error %v", msg)
	}

	// The user row exists by now; login hits the same failing save.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"ayse@example.com","password":"sturdy-pass1!"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("login: expected 500, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestLogin_PasswordPath(t *testing.T) {
	r, _ := newRouter(t)
	doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody, nil)

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login",
			`{"email":"ayse@example.com","password":"sturdy-pass1!"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if decodeObject(t, w)["message"] != "login successful" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"ayse@example.com"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials share one message", func(t *testing.T) {
		wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/login",
			`{"email":"ayse@example.com","password":"wrong-pass1!"}`, nil)
		unknown := doJSON(t, r, http.MethodPost, "/api/auth/login",
			`{"email":"nobody@example.com","password":"sturdy-pass1!"}`, nil)

		if wrongPass.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknown.Code)
		}
		if wrongPass.Body.String() != unknown.Body.String() {
			t.Fatalf("401 bodies differ: %s vs %s", wrongPass.Body.String(), unknown.Body.String())
		}
	})
}

func TestLogin_GooglePath(t *testing.T) {
	r, _ := newRouter(t)
	body := `{"google_data":{"email":"mehmet@example.com","name":"Mehmet Demir"}}`

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	first := decodeObject(t, w)
	if first["message"] != "google login successful" {
		t.Fatalf("unexpected message %v", first["message"])
	}
	firstUser := first["user"].(map[string]any)

	w2 := doJSON(t, r, http.MethodPost, "/api/auth/login", body, nil)
	secondUser := decodeObject(t, w2)["user"].(map[string]any)
	if firstUser["id"] != secondUser["id"] {
		t.Fatalf("google login created a duplicate user: %v then %v", firstUser["id"], secondUser["id"])
	}

	wMissing := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"google_data":{"name":"No Email"}}`, nil)
	if wMissing.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing google email, got %d", wMissing.Code)
	}
}

func TestLogout_DestroysSession(t *testing.T) {
	r, _ := newRouter(t)

	reg := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody, nil)
	cookies := reg.Result().Cookies()

	out := doJSON(t, r, http.MethodPost, "/api/auth/logout", "", cookies)
	if out.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", out.Code)
	}
	if decodeObject(t, out)["message"] != "logged out successfully" {
		t.Fatalf("unexpected body %s", out.Body.String())
	}

	after := doJSON(t, r, http.MethodGet, "/api/auth/current_user", "", out.Result().Cookies())
	if body := decodeObject(t, after); body["user"] != nil {
		t.Fatalf("expected null user after logout, got %v", body)
	}
}

func seedCatalog(t *testing.T, db *gorm.DB) models.Hotel {
	t.Helper()

	lat := decimal.RequireFromString("41.043900")
	lng := decimal.RequireFromString("29.008600")
	hotel := models.Hotel{
		Name:        "Grand Bosphorus Hotel",
		Description: "Waterfront hotel.",
		Country:     "Turkey",
		City:        "Istanbul",
		Address:     "Ciragan Cad. 32",
		Latitude:    &lat,
		Longitude:   &lng,
		BasePrice:   decimal.RequireFromString("180.00"),
		Points:      95,
		Rating:      9.1,
		IsAvailable: true,
	}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}

	amenity := models.Amenity{Name: "Pool", Icon: "pool"}
	if err := db.Create(&amenity).Error; err != nil {
		t.Fatalf("seed amenity: %v", err)
	}
	if err := db.Create(&models.HotelAmenity{HotelID: hotel.ID, AmenityID: amenity.ID}).Error; err != nil {
		t.Fatalf("seed link: %v", err)
	}
	if err := db.Create(&models.HotelImage{HotelID: hotel.ID, Image: "hotel_images/1.jpg", IsMain: true}).Error; err != nil {
		t.Fatalf("seed image: %v", err)
	}
	return hotel
}

func TestWeekendHotels_Payload(t *testing.T) {
	r, db := newRouter(t)
	seedCatalog(t, db)

	noCoords := models.Hotel{Name: "Antalya Beach Resort", City: "Antalya", Country: "Turkey",
		BasePrice: decimal.RequireFromString("95.50"), Points: 72, Rating: 8.2, IsAvailable: true}
	if err := db.Create(&noCoords).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/hotels/weekend", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	hotels := decodeArray(t, w)
	if len(hotels) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(hotels))
	}

	top := hotels[0].(map[string]any)
	if top["name"] != "Grand Bosphorus Hotel" {
		t.Fatalf("expected points ordering, got %v first", top["name"])
	}
	if _, ok := top["latitude"].(string); !ok {
		t.Fatalf("latitude should serialize as a string, got %T", top["latitude"])
	}
	if price, ok := top["member_price_display"].(float64); !ok || price != 162.0 {
		t.Fatalf("expected member price 162, got %v", top["member_price_display"])
	}
	amenities := top["amenities"].([]any)
	if len(amenities) != 1 {
		t.Fatalf("expected one amenity, got %v", amenities)
	}
	am := amenities[0].(map[string]any)
	if am["name"] != "Pool" || len(am) != 2 {
		t.Fatalf("amenities should carry id and name only, got %v", am)
	}

	second := hotels[1].(map[string]any)
	if second["latitude"] != nil {
		t.Fatalf("absent coordinate should serialize as null, got %v", second["latitude"])
	}
}

func TestSearchHotels_Endpoint(t *testing.T) {
	r, db := newRouter(t)
	seedCatalog(t, db)

	w := doJSON(t, r, http.MethodGet, "/api/hotels/search?destination=istanbul&guests=2", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if hotels := decodeArray(t, w); len(hotels) != 1 {
		t.Fatalf("expected 1 match, got %d", len(hotels))
	}

	w2 := doJSON(t, r, http.MethodGet, "/api/hotels/search?destination=Reykjavik", "", nil)
	if hotels := decodeArray(t, w2); len(hotels) != 0 {
		t.Fatalf("expected no matches, got %d", len(hotels))
	}
}

func TestHotelDetail_Endpoint(t *testing.T) {
	r, db := newRouter(t)
	hotel := seedCatalog(t, db)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/hotels/%d", hotel.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	detail := decodeObject(t, w)
	if detail["address"] != "Ciragan Cad. 32" {
		t.Fatalf("expected address in detail, got %v", detail["address"])
	}
	images := detail["images"].([]any)
	if len(images) != 1 || images[0].(map[string]any)["is_main"] != true {
		t.Fatalf("expected main image in detail, got %v", images)
	}

	w404 := doJSON(t, r, http.MethodGet, "/api/hotels/9999", "", nil)
	if w404.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w404.Code)
	}
	if msg := decodeObject(t, w404)["error"]; msg != "hotel not found" {
		t.Fatalf("unexpected error %v", msg)
	}
}

func TestBookingAndReviewStubs(t *testing.T) {
	r, _ := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/create", `{"hotel_id":1}`, nil)
	if w.Code != http.StatusCreated || decodeObject(t, w)["message"] != "booking created" {
		t.Fatalf("booking create stub: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/bookings/user", "", nil)
	if w.Code != http.StatusOK || len(decodeArray(t, w)) != 0 {
		t.Fatalf("bookings list stub: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/reviews/hotel/1", "", nil)
	if w.Code != http.StatusOK || len(decodeArray(t, w)) != 0 {
		t.Fatalf("reviews list stub: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/reviews/create", `{"hotel_id":1}`, nil)
	if w.Code != http.StatusCreated || decodeObject(t, w)["message"] != "review created" {
		t.Fatalf("review create stub: %d %s", w.Code, w.Body.String())
	}
}
