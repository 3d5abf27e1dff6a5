package createRegistration

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"festRegistration/internal/http-server/handlers/registration/createRegistration/mocks"
	"festRegistration/internal/lib/logger/handlers/slogdiscard"
	"festRegistration/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validJSON = `{"name":"Asha Verma","email":"asha@example.com","phone":"9876543210","college":"Truba Institute","events":["Dance Competition","Chess"]}`

func withTotal(total int, submitted bool) interface{} {
	return mock.MatchedBy(func(reg models.Registration) bool {
		return reg.TotalAmount == total && reg.Submitted == submitted
	})
}

func TestCreateRegistrationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		contentType    string
		requestBody    string
		mockSetup      func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver)
		expectedStatus int
		checkBody      func(t *testing.T, resp RegistrationResponse)
	}{
		{
			name:        "Success",
			contentType: "application/json",
			requestBody: validJSON,
			mockSetup: func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {
				sub.On("Submit", mock.Anything, withTotal(150, false)).Return(nil).Once()
				saver.On("SaveRegistration", withTotal(150, true)).Return(int64(1), nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, 150, resp.TotalAmount)
				require.NotNil(t, resp.Handoff)
				assert.Equal(t, "150", resp.Handoff.AmountLabel())
				assert.Equal(t, "asha@example.com", resp.Handoff.Email)
				assert.Equal(t, successMessage, resp.Handoff.Message)

				u, err := url.Parse(resp.Redirect)
				require.NoError(t, err)
				assert.Equal(t, PaymentPath, u.Path)
				assert.Equal(t, "150", u.Query().Get("amount"))
				assert.Equal(t, "asha@example.com", u.Query().Get("email"))
			},
		},
		{
			name:        "Form encoded",
			contentType: "application/x-www-form-urlencoded",
			requestBody: url.Values{
				"name":    {"Asha Verma"},
				"email":   {"asha@example.com"},
				"phone":   {"9876543210"},
				"college": {"Truba Institute"},
				"events":  {"Tech Quiz", "Kabaddi", "Tech Quiz"},
			}.Encode(),
			mockSetup: func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {
				sub.On("Submit", mock.Anything, mock.MatchedBy(func(reg models.Registration) bool {
					return reg.TotalAmount == 180 && len(reg.Events) == 2
				})).Return(nil).Once()
				saver.On("SaveRegistration", withTotal(180, true)).Return(int64(1), nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, 180, resp.TotalAmount)
			},
		},
		{
			name:           "Invalid JSON",
			contentType:    "application/json",
			requestBody:    `invalid json`,
			mockSetup:      func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, "failed to decode request", resp.Error)
			},
		},
		{
			name:           "All fields missing",
			contentType:    "application/json",
			requestBody:    `{}`,
			mockSetup:      func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, map[string]string{
					"name":    "Name is required",
					"email":   "Email is required",
					"phone":   "Phone number is required",
					"college": "College name is required",
					"events":  "Please select at least one event",
				}, resp.Fields)
			},
		},
		{
			name:           "No events selected",
			contentType:    "application/json",
			requestBody:    `{"name":"Asha Verma","email":"asha@example.com","phone":"9876543210","college":"Truba Institute","events":[]}`,
			mockSetup:      func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, map[string]string{"events": "Please select at least one event"}, resp.Fields)
			},
		},
		{
			name:           "Whitespace only name",
			contentType:    "application/json",
			requestBody:    strings.Replace(validJSON, `"Asha Verma"`, `"   "`, 1),
			mockSetup:      func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, "Name is required", resp.Fields["name"])
			},
		},
		{
			name:           "Invalid email and phone",
			contentType:    "application/json",
			requestBody:    `{"name":"Asha Verma","email":"asha@example","phone":"98765","college":"Truba Institute","events":["Chess"]}`,
			mockSetup:      func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, "Invalid email address", resp.Fields["email"])
				assert.Equal(t, "Invalid phone number", resp.Fields["phone"])
			},
		},
		{
			name:           "Unknown event",
			contentType:    "application/json",
			requestBody:    `{"name":"Asha Verma","email":"asha@example.com","phone":"9876543210","college":"Truba Institute","events":["Juggling"]}`,
			mockSetup:      func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, "Unknown event selected", resp.Fields["events"])
			},
		},
		{
			name:        "Submission failed",
			contentType: "application/json",
			requestBody: validJSON,
			mockSetup: func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {
				sub.On("Submit", mock.Anything, mock.Anything).Return(errors.New("network unreachable")).Once()
				saver.On("SaveRegistration", withTotal(150, false)).Return(int64(1), nil).Once()
			},
			expectedStatus: http.StatusBadGateway,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, failureMessage, resp.Error)
				assert.Nil(t, resp.Handoff)
			},
		},
		{
			name:        "Journal failure is not surfaced",
			contentType: "application/json",
			requestBody: validJSON,
			mockSetup: func(sub *mocks.RegistrationSubmitter, saver *mocks.RegistrationSaver) {
				sub.On("Submit", mock.Anything, mock.Anything).Return(nil).Once()
				saver.On("SaveRegistration", mock.Anything).Return(int64(0), errors.New("database error")).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, resp RegistrationResponse) {
				assert.Equal(t, "OK", resp.Status)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sub := mocks.NewRegistrationSubmitter(t)
			saver := mocks.NewRegistrationSaver(t)
			tc.mockSetup(sub, saver)

			handler := New(logger, sub, saver, 0)

			req := httptest.NewRequest(http.MethodPost, "/api/registrations", bytes.NewBufferString(tc.requestBody))
			req.Header.Set("Content-Type", tc.contentType)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			var resp RegistrationResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			tc.checkBody(t, resp)
		})
	}
}

func TestNoSubmissionOnValidationError(t *testing.T) {
	t.Parallel()

	sub := mocks.NewRegistrationSubmitter(t)
	saver := mocks.NewRegistrationSaver(t)
	handler := New(slogdiscard.NewDiscardLogger(), sub, saver, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/registrations",
		bytes.NewBufferString(`{"name":"Asha Verma","email":"asha@example.com","phone":"9876543210","college":"Truba Institute"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Please select at least one event")
	sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	saver.AssertNotCalled(t, "SaveRegistration", mock.Anything)
}

func TestRedirectDelay(t *testing.T) {
	t.Parallel()

	sub := mocks.NewRegistrationSubmitter(t)
	saver := mocks.NewRegistrationSaver(t)
	sub.On("Submit", mock.Anything, mock.Anything).Return(nil).Once()
	saver.On("SaveRegistration", mock.Anything).Return(int64(1), nil).Once()

	delay := 30 * time.Millisecond
	handler := New(slogdiscard.NewDiscardLogger(), sub, saver, delay)

	req := httptest.NewRequest(http.MethodPost, "/api/registrations", bytes.NewBufferString(validJSON))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	start := time.Now()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}
