package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"physioheal/models"
)

type fakeBookingRepo struct {
	records   []models.BookingRecord
	createErr error
	getAllErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, input models.BookingInput) (*models.BookingRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	record := models.BookingRecord{
		ID:                 uuid.New().String(),
		PersonalDetails:    input.PersonalDetails,
		BodyParts:          input.BodyParts,
		SelectedConditions: input.SelectedConditions,
		PainDetails:        input.PainDetails,
		Status:             models.StatusPending,
		CreatedAt:          time.Now(),
	}
	f.records = append([]models.BookingRecord{record}, f.records...)
	return &record, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.BookingRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeBookingRepo) GetAll(_ context.Context) ([]models.BookingRecord, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.records, nil
}

type fakeQueue struct {
	enqueued []models.BookingRecord
	err      error
}

func (f *fakeQueue) EnqueueBookingEmail(record models.BookingRecord) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, record)
	return nil
}

func newTestRouter(repo *fakeBookingRepo, queue *fakeQueue) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(repo, queue, nil, zap.NewNop())
	r := gin.New()
	r.POST("/api/bookings", h.CreateBookingHandler)
	r.GET("/api/bookings", h.ListBookingsHandler)
	return r
}

func validInputJSON(t *testing.T) []byte {
	t.Helper()
	input := models.BookingInput{
		PersonalDetails: models.PersonalDetails{
			FirstName: "Jane", LastName: "Doe", Age: "34", Gender: "female",
			Phone: "5551234567", Email: "jane@x.com", Address: "1 Main St",
		},
		BodyParts: []models.BodyPartEntry{
			{PartID: "knee", PainLevel: 7, Side: models.SideLeft, Selected: true},
		},
		SelectedConditions: map[string][]string{"knee": {"Ligament injury"}},
		PainDetails:        models.PainDetails{Description: "Sharp pain", Duration: "weeks"},
	}
	b, err := json.Marshal(input)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCreateBookingHandler_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	queue := &fakeQueue{}
	router := newTestRouter(repo, queue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(validInputJSON(t)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var record models.BookingRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if record.ID == "" {
		t.Error("response missing generated id")
	}
	if record.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", record.Status)
	}
	if record.CreatedAt.IsZero() {
		t.Error("response missing createdAt")
	}
	if len(queue.enqueued) != 1 || queue.enqueued[0].ID != record.ID {
		t.Errorf("notification not enqueued for %s", record.ID)
	}
}

func TestCreateBookingHandler_MalformedJSON(t *testing.T) {
	router := newTestRouter(&fakeBookingRepo{}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte("{not json")))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateBookingHandler_ValidationSurfacesAs500(t *testing.T) {
	router := newTestRouter(&fakeBookingRepo{}, &fakeQueue{})

	// Schema-level failure: missing personal details.
	body, _ := json.Marshal(models.BookingInput{
		PainDetails: models.PainDetails{Description: "x", Duration: "days"},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message != "Error creating booking" || resp.Error == "" {
		t.Errorf("error body = %+v", resp)
	}
}

func TestCreateBookingHandler_PersistenceError(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("connection reset")}
	router := newTestRouter(repo, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(validInputJSON(t)))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestCreateBookingHandler_QueueFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	queue := &fakeQueue{err: errors.New("redis down")}
	router := newTestRouter(repo, queue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(validInputJSON(t)))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201 despite queue failure", w.Code)
	}
}

func TestListBookingsHandler(t *testing.T) {
	repo := &fakeBookingRepo{}
	router := newTestRouter(repo, &fakeQueue{})

	// Seed two bookings; the repo returns newest first.
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(validInputJSON(t)))
		router.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed booking %d: status %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var records []models.BookingRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].CreatedAt.Before(records[1].CreatedAt) {
		t.Error("records not sorted newest first")
	}
}

func TestListBookingsHandler_Empty(t *testing.T) {
	router := newTestRouter(&fakeBookingRepo{}, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("empty list body = %q, want []", body)
	}
}

func TestListBookingsHandler_FetchError(t *testing.T) {
	repo := &fakeBookingRepo{getAllErr: errors.New("cursor timeout")}
	router := newTestRouter(repo, &fakeQueue{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
