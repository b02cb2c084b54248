package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"laporan_zakat/internal/adapter/http/handlers/mocks"
	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newChatRouter(h *ChatHandler, s *entities.Session) *gin.Engine {
	r := gin.New()
	chat := r.Group("/v1/chat", withSession(s))
	chat.GET("/messages", h.GetMessages)
	chat.POST("/messages", h.SendMessage)
	chat.POST("/attachments", h.SubmitAttachment)
	chat.GET("/state", h.GetState)
	return r
}

func TestChatHandler_SendMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := testSession(entities.RoleStandard)

	t.Run("missing text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newChatRouter(NewChatHandler(mocks.NewMockIConversationUseCase(ctrl)), s)

		w := doJSON(r, http.MethodPost, "/v1/chat/messages", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	errCases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"busy", usecase.ErrSessionBusy, http.StatusConflict, "SESSION_BUSY"},
		{"attachment expected", usecase.ErrAttachmentExpected, http.StatusConflict, "ATTACHMENT_EXPECTED"},
		{"empty", usecase.ErrEmptyUtterance, http.StatusBadRequest, "EMPTY_MESSAGE"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIConversationUseCase(ctrl)
			uc.EXPECT().SendMessage(gomock.Any(), "tok-1", "halo").Return(usecase.TurnResult{}, tc.err)
			r := newChatRouter(NewChatHandler(uc), s)

			w := doJSON(r, http.MethodPost, "/v1/chat/messages", `{"text":" halo "}`)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(tc.body)) {
				t.Fatalf("expected %s in body, got %s", tc.body, w.Body.String())
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversationUseCase(ctrl)
		uc.EXPECT().SendMessage(gomock.Any(), "tok-1", "tambah laporan").Return(usecase.TurnResult{
			Messages: []entities.Message{
				{ID: "1", Author: entities.AuthorUser, Text: "tambah laporan"},
				{ID: "2", Author: entities.AuthorSystem, Text: "Baik, siapa nama muzakki (pemberi zakat)?"},
			},
			State: usecase.StateSnapshot{Intent: entities.IntentCollectingZakat, NextQuestionKey: entities.FieldDonorName, CollectedFields: map[string]any{}},
		}, nil)
		r := newChatRouter(NewChatHandler(uc), s)

		w := doJSON(r, http.MethodPost, "/v1/chat/messages", `{"text":"tambah laporan"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Messages []map[string]any `json:"messages"`
			State    map[string]any   `json:"state"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.Messages) != 2 || body.State["intent"] != "collecting_zakat" || body.State["next_question_key"] != "donorName" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestChatHandler_SubmitAttachment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := testSession(entities.RoleStandard)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newChatRouter(NewChatHandler(mocks.NewMockIConversationUseCase(ctrl)), s)

		body, ct := multipartBody(t, "other", "b.png", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/attachments", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not awaiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversationUseCase(ctrl)
		uc.EXPECT().SubmitAttachment(gomock.Any(), "tok-1", gomock.Any()).Return(usecase.TurnResult{}, usecase.ErrNotAwaitingAttachment)
		r := newChatRouter(NewChatHandler(uc), s)

		body, ct := multipartBody(t, "file", "b.png", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/attachments", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success passes name size and body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversationUseCase(ctrl)
		uc.EXPECT().SubmitAttachment(gomock.Any(), "tok-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, up usecase.AttachmentUpload) (usecase.TurnResult, error) {
				if up.Name != "b.png" || up.Size != 4 {
					t.Fatalf("unexpected upload %+v", up)
				}
				b, _ := io.ReadAll(up.Body)
				if string(b) != "data" {
					t.Fatalf("unexpected body %q", b)
				}
				return usecase.TurnResult{State: usecase.StateSnapshot{Intent: entities.IntentConfirmingAdd}}, nil
			},
		)
		r := newChatRouter(NewChatHandler(uc), s)

		body, ct := multipartBody(t, "file", "b.png", []byte("data"))
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/attachments", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestChatHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := testSession(entities.RoleStandard)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConversationUseCase(ctrl)
	r := newChatRouter(NewChatHandler(uc), s)

	uc.EXPECT().Transcript("tok-1").Return([]entities.Message{{ID: "1", Author: entities.AuthorSystem, Text: "Assalamualaikum"}}, nil)
	w := doJSON(r, http.MethodGet, "/v1/chat/messages", "")
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("Assalamualaikum")) {
		t.Fatalf("unexpected transcript response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().State("tok-1").Return(usecase.StateSnapshot{}, usecase.ErrSessionNotFound)
	w = doJSON(r, http.MethodGet, "/v1/chat/state", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
