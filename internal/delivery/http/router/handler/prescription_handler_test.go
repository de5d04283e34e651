package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"afyalink/internal/domain/entity"
	usecasemocks "afyalink/internal/mocks/usecase"
	"afyalink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadRequest(t *testing.T, fields map[string]string, fileField, fileName string, fileBody []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileBody)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/prescriptions", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestPrescriptionHandler_Upload(t *testing.T) {
	userID := uuid.New()
	imageBody := []byte("fake image bytes")

	uc := usecasemocks.NewMockPrescriptionUsecase(t)
	uc.EXPECT().
		Upload(mock.Anything, userID, mock.MatchedBy(func(input usecase.UploadPrescriptionInput) bool {
			body, err := io.ReadAll(input.File)

			return err == nil &&
				input.PatientName == "John Mwangi" &&
				input.FileName == "rx.jpg" &&
				bytes.Equal(body, imageBody)
		})).
		Return(&entity.Prescription{ID: "rx-1", UserID: userID, Status: entity.PrescriptionStatusPending}, nil)

	handler := NewPrescriptionHandler(uc, slog.Default())

	req := newUploadRequest(t, map[string]string{
		"patient_name": "John Mwangi",
		"email":        "john@example.com",
		"notes":        "for malaria",
	}, "image", "rx.jpg", imageBody)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, handler.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestPrescriptionHandler_Upload_MissingImage(t *testing.T) {
	uc := usecasemocks.NewMockPrescriptionUsecase(t)
	handler := NewPrescriptionHandler(uc, slog.Default())

	req := newUploadRequest(t, map[string]string{"patient_name": "John Mwangi"}, "", "", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set("userID", uuid.New())

	require.NoError(t, handler.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Upload")
}

func TestPrescriptionHandler_ListByStatus_UnknownStatus(t *testing.T) {
	uc := usecasemocks.NewMockPrescriptionUsecase(t)
	handler := NewPrescriptionHandler(uc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/admin/prescriptions?status=filed", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.ListByStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "ListByStatus")
}

func TestPrescriptionHandler_ListByStatus_DefaultsToPending(t *testing.T) {
	uc := usecasemocks.NewMockPrescriptionUsecase(t)
	uc.EXPECT().
		ListByStatus(mock.Anything, entity.PrescriptionStatusPending).
		Return([]*entity.Prescription{{ID: "rx-1"}}, nil)

	handler := NewPrescriptionHandler(uc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/admin/prescriptions", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, handler.ListByStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
