package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"laporan_zakat/internal/adapter/persistence/memory"
	"laporan_zakat/internal/domain/entities"
	mock_interfaces "laporan_zakat/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatFixture struct {
	router  *ConversationUseCase
	auth    *AuthUseCase
	reports *memory.ReportMemoryRepository
	oracle  *mock_interfaces.MockIIntentOracle
	storage *mock_interfaces.MockIAttachmentStorage
}

func newChatFixture(t *testing.T, withStorage bool) *chatFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	reports := memory.NewReportMemoryRepository()
	operators := memory.NewOperatorMemoryRepository()
	sessions := memory.NewSessionMemoryRepository()
	require.NoError(t, Seed(context.Background(), reports, operators))

	f := &chatFixture{
		reports: reports,
		oracle:  mock_interfaces.NewMockIIntentOracle(ctrl),
	}
	var engine *DialogueEngine
	if withStorage {
		f.storage = mock_interfaces.NewMockIAttachmentStorage(ctrl)
		engine = NewDialogueEngine(NewRecordStore(reports, operators, nil), f.storage, 0, nil)
	} else {
		engine = NewDialogueEngine(NewRecordStore(reports, operators, nil), nil, 0, nil)
	}
	f.router = NewConversationUseCase(sessions, f.oracle, engine, nil)
	f.auth = NewAuthUseCase(operators, sessions, nil)
	return f
}

func (f *chatFixture) login(t *testing.T, code, secret string) *entities.Session {
	t.Helper()
	s, err := f.auth.Login(context.Background(), code, secret)
	require.NoError(t, err)
	return s
}

func (f *chatFixture) say(t *testing.T, s *entities.Session, text string) TurnResult {
	t.Helper()
	res, err := f.router.SendMessage(context.Background(), s.ID, text)
	require.NoError(t, err)
	require.NotEmpty(t, res.Messages)
	assert.Equal(t, entities.AuthorUser, res.Messages[0].Author)
	assert.Equal(t, text, res.Messages[0].Text)
	return res
}

func lastText(res TurnResult) string {
	return res.Messages[len(res.Messages)-1].Text
}

func (f *chatFixture) reportCount(t *testing.T) int {
	t.Helper()
	all, err := f.reports.List(context.Background())
	require.NoError(t, err)
	return len(all)
}

func TestConversationUseCase_ReportFlowEndToEnd(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")
	ctx := context.Background()

	res := f.say(t, s, "tambah laporan zakat")
	assert.Equal(t, entities.IntentCollectingZakat, res.State.Intent)
	assert.Equal(t, entities.FieldDonorName, res.State.NextQuestionKey)
	assert.Contains(t, res.Messages[1].Text, "Tentu, saya akan bantu")

	res = f.say(t, s, "Budi")
	assert.Equal(t, entities.FieldDonationType, res.State.NextQuestionKey)

	res = f.say(t, s, "fitrah")
	assert.Equal(t, entities.FieldAmount, res.State.NextQuestionKey)
	assert.Equal(t, entities.DonationTypeFitrah, res.State.CollectedFields["donationType"])

	res = f.say(t, s, "Rp 45.000")
	assert.Equal(t, entities.FieldAttachment, res.State.NextQuestionKey)
	assert.True(t, res.State.AwaitingAttachment)
	assert.Equal(t, int64(45000), res.State.CollectedFields["amount"])

	before := s.Transcript.Len()
	_, err := f.router.SendMessage(ctx, s.ID, "ini buktinya")
	assert.ErrorIs(t, err, ErrAttachmentExpected)
	assert.Equal(t, before, s.Transcript.Len())

	res, err = f.router.SubmitAttachment(ctx, s.ID, AttachmentUpload{Name: "b.png", Size: 1024})
	require.NoError(t, err)
	assert.Equal(t, entities.IntentConfirmingAdd, res.State.Intent)
	assert.False(t, res.State.AwaitingAttachment)
	summary := lastText(res)
	assert.Contains(t, summary, "Budi")
	assert.Contains(t, summary, "Rp 45.000")
	assert.Contains(t, summary, "R001 (otomatis)")
	assert.Contains(t, summary, "(ya/tidak)")

	res = f.say(t, s, "ya")
	assert.Equal(t, entities.IntentIdle, res.State.Intent)
	assert.Empty(t, res.State.CollectedFields)

	var structured *entities.Message
	for i := range res.Messages {
		if res.Messages[i].IsStructured {
			structured = &res.Messages[i]
		}
	}
	require.NotNil(t, structured)
	var created entities.DonationReport
	require.NoError(t, json.Unmarshal([]byte(structured.Text), &created))
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, int64(45000), created.Amount)
	assert.Equal(t, "R001", created.OperatorCode)
	assert.Equal(t, entities.DonationTypeFitrah, created.DonationType)
	assert.Equal(t, "b.png", created.Attachment)
	assert.Contains(t, lastText(res), "Jazakumullah Khairan Katsiran")

	stored, err := f.reports.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Budi", stored.DonorName)
}

func TestConversationUseCase_InvalidAnswersReprompt(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")

	f.say(t, s, "catat laporan")
	f.say(t, s, "Budi")

	res := f.say(t, s, "Zonk")
	assert.Equal(t, entities.FieldDonationType, res.State.NextQuestionKey)
	assert.Contains(t, lastText(res), "jenis zakat tidak valid")
	assert.NotContains(t, res.State.CollectedFields, "donationType")

	f.say(t, s, "Mal")
	res = f.say(t, s, "abc")
	assert.Equal(t, entities.FieldAmount, res.State.NextQuestionKey)
	assert.Equal(t, "Maaf, jumlah harus dalam bentuk angka. Silakan coba lagi.", lastText(res))
	assert.NotContains(t, res.State.CollectedFields, "amount")
}

func TestConversationUseCase_OversizedAttachmentKeepsWaiting(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")
	ctx := context.Background()

	for _, text := range []string{"tambah laporan", "Budi", "Infak", "10000"} {
		f.say(t, s, text)
	}

	res, err := f.router.SubmitAttachment(ctx, s.ID, AttachmentUpload{Name: "big.png", Size: 4 << 20})
	require.NoError(t, err)
	assert.True(t, res.State.AwaitingAttachment)
	assert.Equal(t, entities.FieldAttachment, res.State.NextQuestionKey)
	assert.Contains(t, lastText(res), "terlalu besar")
	assert.NotContains(t, res.State.CollectedFields, "attachment")

	res, err = f.router.SubmitAttachment(ctx, s.ID, AttachmentUpload{Name: "ok.png", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, entities.IntentConfirmingAdd, res.State.Intent)
}

func TestConversationUseCase_AttachmentOutsideCollection(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")

	_, err := f.router.SubmitAttachment(context.Background(), s.ID, AttachmentUpload{Name: "b.png", Size: 10})
	assert.ErrorIs(t, err, ErrNotAwaitingAttachment)
	assert.Equal(t, 1, s.Transcript.Len())
}

func TestConversationUseCase_AttachmentIsUploaded(t *testing.T) {
	f := newChatFixture(t, true)
	s := f.login(t, "R001", "relawan001")
	for _, text := range []string{"tambah laporan", "Budi", "Wakaf", "500000"} {
		f.say(t, s, text)
	}

	f.storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
		func(_ context.Context, key string, data io.Reader, _ string) (string, error) {
			if !strings.HasPrefix(key, "attachments/") || !strings.HasSuffix(key, "/b.png") {
				t.Fatalf("unexpected key %q", key)
			}
			b, _ := io.ReadAll(data)
			if string(b) != "png" {
				t.Fatalf("unexpected body %q", b)
			}
			return "s3://bucket/" + key, nil
		},
	)
	res, err := f.router.SubmitAttachment(context.Background(), s.ID, AttachmentUpload{
		Name: "b.png", Size: 3, ContentType: "image/png", Body: strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "b.png", res.State.CollectedFields["attachment"])

	f.storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))
	s2 := f.login(t, "R002", "relawan002")
	for _, text := range []string{"tambah laporan", "Budi", "Wakaf", "500000"} {
		f.say(t, s2, text)
	}
	res, err = f.router.SubmitAttachment(context.Background(), s2.ID, AttachmentUpload{
		Name: "c.png", Size: 3, Body: strings.NewReader("png"),
	})
	require.NoError(t, err)
	assert.True(t, res.State.AwaitingAttachment)
	assert.True(t, strings.HasPrefix(lastText(res), "Error: "))
}

func TestConversationUseCase_CancelAddLeavesStoreUnchanged(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")
	for _, text := range []string{"tambah laporan", "Budi", "Fidyah", "30000"} {
		f.say(t, s, text)
	}
	_, err := f.router.SubmitAttachment(context.Background(), s.ID, AttachmentUpload{Name: "b.png", Size: 1})
	require.NoError(t, err)

	res := f.say(t, s, "tidak")
	assert.Equal(t, entities.IntentIdle, res.State.Intent)
	assert.Equal(t, "Baik, penambahan laporan dibatalkan.", lastText(res))
	assert.Equal(t, 2, f.reportCount(t))
}

func TestConversationUseCase_OracleSeedsReportFlow(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")

	f.oracle.EXPECT().Query(gomock.Any(), "Budi bayar fitrah 45 ribu").Return(entities.OracleResponse{
		FunctionCalls: []entities.FunctionCall{{Name: OpCreateReport, Args: map[string]any{
			"donorName":    "Budi",
			"donationType": "fitrah",
			"amount":       45000.0,
			"attachment":   "dari-oracle.png",
		}}},
	}, nil)

	res := f.say(t, s, "Budi bayar fitrah 45 ribu")
	assert.Equal(t, entities.IntentCollectingZakat, res.State.Intent)
	assert.Equal(t, entities.FieldAttachment, res.State.NextQuestionKey)
	assert.True(t, res.State.AwaitingAttachment)
	assert.Equal(t, map[string]any{
		"donorName":    "Budi",
		"donationType": entities.DonationTypeFitrah,
		"amount":       int64(45000),
	}, res.State.CollectedFields)
}

func TestConversationUseCase_OracleCannotReassignStandardOperatorCode(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")
	ctx := context.Background()

	f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{
		FunctionCalls: []entities.FunctionCall{{Name: OpCreateReport, Args: map[string]any{
			"operatorCode": "R002",
			"donorName":    "Budi",
			"donationType": "Mal",
			"amount":       100000.0,
		}}},
	}, nil)

	res := f.say(t, s, "catatkan zakat mal Budi 100 ribu atas nama R002")
	assert.NotContains(t, res.State.CollectedFields, "operatorCode")
	assert.Equal(t, entities.FieldAttachment, res.State.NextQuestionKey)

	res, err := f.router.SubmitAttachment(ctx, s.ID, AttachmentUpload{Name: "b.png", Size: 10})
	require.NoError(t, err)
	assert.Contains(t, lastText(res), "Kode Relawan: R001 (otomatis)")
	assert.NotContains(t, lastText(res), "R002")

	f.say(t, s, "ya")
	stored, err := f.reports.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "R001", stored.OperatorCode)
}

func TestConversationUseCase_AdminReportFlow(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "ADM-111-AAA", "admin123")
	ctx := context.Background()

	res := f.say(t, s, "tambah laporan")
	assert.Equal(t, entities.IntentCollectingZakat, res.State.Intent)
	assert.Equal(t, entities.FieldOperatorCode, res.State.NextQuestionKey)
	assert.Equal(t, "Silakan masukkan kode relawan yang mencatat laporan ini.", lastText(res))

	res = f.say(t, s, "R777")
	assert.Equal(t, entities.FieldDonorName, res.State.NextQuestionKey)
	assert.Equal(t, "R777", res.State.CollectedFields["operatorCode"])

	for _, text := range []string{"Hamba Allah", "kemanusiaan", "250000"} {
		f.say(t, s, text)
	}
	res, err := f.router.SubmitAttachment(ctx, s.ID, AttachmentUpload{Name: "tf.jpg", Size: 2048})
	require.NoError(t, err)
	assert.Equal(t, entities.IntentConfirmingAdd, res.State.Intent)
	summary := lastText(res)
	assert.Contains(t, summary, "Kode Relawan: R777\n")
	assert.NotContains(t, summary, "(otomatis)")
	assert.Contains(t, summary, "Rp 250.000")

	f.say(t, s, "ya")
	stored, err := f.reports.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "R777", stored.OperatorCode)
	assert.Equal(t, "Hamba Allah", stored.DonorName)
	assert.Equal(t, entities.DonationTypeKemanusiaan, stored.DonationType)
	assert.Equal(t, int64(250000), stored.Amount)
	assert.Equal(t, "tf.jpg", stored.Attachment)
}

func TestConversationUseCase_AttachmentBoundInPrompts(t *testing.T) {
	reports := memory.NewReportMemoryRepository()
	operators := memory.NewOperatorMemoryRepository()
	sessions := memory.NewSessionMemoryRepository()
	require.NoError(t, Seed(context.Background(), reports, operators))
	engine := NewDialogueEngine(NewRecordStore(reports, operators, nil), nil, 1<<20, nil)
	f := &chatFixture{
		router:  NewConversationUseCase(sessions, nil, engine, nil),
		auth:    NewAuthUseCase(operators, sessions, nil),
		reports: reports,
	}
	s := f.login(t, "R001", "relawan001")

	var res TurnResult
	for _, text := range []string{"tambah laporan", "Budi", "Infak", "10000"} {
		res = f.say(t, s, text)
	}
	assert.Contains(t, lastText(res), "(maksimal 1 MB)")

	res, err := f.router.SubmitAttachment(context.Background(), s.ID, AttachmentUpload{Name: "b.png", Size: 2 << 20})
	require.NoError(t, err)
	assert.Contains(t, lastText(res), "terlalu besar (maksimal 1 MB)")
	assert.True(t, res.State.AwaitingAttachment)
}

func TestConversationUseCase_OracleStartsOperatorFlow(t *testing.T) {
	addUser := entities.OracleResponse{FunctionCalls: []entities.FunctionCall{{Name: OpCreateOperator, Args: map[string]any{}}}}

	t.Run("admin", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "ADM-111-AAA", "admin123")
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(addUser, nil)

		res := f.say(t, s, "saya ingin mendaftarkan orang baru")
		assert.Equal(t, entities.IntentCollectingUser, res.State.Intent)
		assert.Equal(t, entities.FieldOperatorCode, res.State.NextQuestionKey)
	})

	t.Run("standard operator", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "R001", "relawan001")
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(addUser, nil)

		res := f.say(t, s, "saya ingin mendaftarkan orang baru")
		assert.Equal(t, entities.IntentIdle, res.State.Intent)
		assert.Equal(t, "Operasi database gagal: Hanya admin yang dapat menambahkan relawan.", lastText(res))
	})
}

func TestConversationUseCase_DeleteConfirmation(t *testing.T) {
	t.Run("missing id leaves store unchanged", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "ADM-111-AAA", "admin123")

		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{
			FunctionCalls: []entities.FunctionCall{{Name: OpDeleteReport, Args: map[string]any{"id": 99.0}}},
		}, nil)

		res := f.say(t, s, "hapus laporan 99")
		assert.Equal(t, entities.IntentConfirmingDelete, res.State.Intent)
		require.NotNil(t, res.State.PendingOperation)
		assert.Equal(t, OpDeleteReport, res.State.PendingOperation.Name)
		assert.Contains(t, lastText(res), "ID 99")

		res = f.say(t, s, "ya")
		assert.Equal(t, entities.IntentIdle, res.State.Intent)
		assert.Nil(t, res.State.PendingOperation)
		assert.Equal(t, "Operasi database gagal: Laporan zakat dengan ID 99 tidak ditemukan.", lastText(res))
		assert.Equal(t, 2, f.reportCount(t))
	})

	t.Run("confirmed delete", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "ADM-111-AAA", "admin123")

		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{
			FunctionCalls: []entities.FunctionCall{{Name: OpDeleteReport, Args: map[string]any{"id": 1.0}}},
		}, nil)

		f.say(t, s, "hapus laporan 1")
		res := f.say(t, s, " YA ")
		assert.Equal(t, " YA ", res.Messages[0].Text)
		assert.Equal(t, "Berhasil menghapus laporan zakat dengan ID 1.", lastText(res))
		assert.Equal(t, 1, f.reportCount(t))
	})

	t.Run("anything but ya cancels", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "ADM-111-AAA", "admin123")

		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{
			FunctionCalls: []entities.FunctionCall{{Name: OpDeleteReport, Args: map[string]any{"id": 1.0}}},
		}, nil)

		f.say(t, s, "hapus laporan 1")
		res := f.say(t, s, "yakin")
		assert.Equal(t, "Baik, operasi penghapusan dibatalkan.", lastText(res))
		assert.Equal(t, entities.IntentIdle, res.State.Intent)
		assert.Equal(t, 2, f.reportCount(t))
	})

	t.Run("standard operator cannot delete others", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "R001", "relawan001")

		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{
			FunctionCalls: []entities.FunctionCall{{Name: OpDeleteReport, Args: map[string]any{"id": 2.0}}},
		}, nil)

		f.say(t, s, "hapus laporan 2")
		res := f.say(t, s, "ya")
		assert.True(t, strings.HasPrefix(lastText(res), "Operasi database gagal: Anda tidak memiliki akses"))
		assert.Equal(t, 2, f.reportCount(t))
	})
}

func TestConversationUseCase_ListingByRole(t *testing.T) {
	list := entities.OracleResponse{FunctionCalls: []entities.FunctionCall{{Name: OpListReports}}}

	t.Run("admin sees every report", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "ADM-111-AAA", "admin123")
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(list, nil)

		res := f.say(t, s, "tampilkan semua laporan")
		msg := res.Messages[len(res.Messages)-1]
		require.True(t, msg.IsStructured)
		var got []entities.DonationReport
		require.NoError(t, json.Unmarshal([]byte(msg.Text), &got))
		assert.Len(t, got, 2)
	})

	t.Run("standard sees own reports", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "R001", "relawan001")
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(list, nil)

		res := f.say(t, s, "tampilkan semua laporan")
		var got []entities.DonationReport
		require.NoError(t, json.Unmarshal([]byte(lastText(res)), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "R001", got[0].OperatorCode)
	})

	t.Run("empty list gets plain text", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "ADM-111-AAA", "admin123")
		for _, id := range []int64{1, 2} {
			_, err := f.reports.Delete(context.Background(), id)
			require.NoError(t, err)
		}
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(list, nil)

		res := f.say(t, s, "tampilkan semua laporan")
		assert.Equal(t, "Tidak ada data zakat yang ditemukan.", lastText(res))
		assert.False(t, res.Messages[len(res.Messages)-1].IsStructured)
	})
}

func TestConversationUseCase_OracleOutcomes(t *testing.T) {
	t.Run("answer text is appended", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "R001", "relawan001")
		f.oracle.EXPECT().Query(gomock.Any(), "apa itu zakat fitrah?").Return(entities.OracleResponse{AnswerText: "Zakat fitrah adalah..."}, nil)

		res := f.say(t, s, "apa itu zakat fitrah?")
		assert.Len(t, res.Messages, 2)
		assert.Equal(t, "Zakat fitrah adalah...", lastText(res))
		assert.Equal(t, entities.IntentIdle, res.State.Intent)
	})

	t.Run("empty answer falls back", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "R001", "relawan001")
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{}, nil)

		res := f.say(t, s, "halo")
		assert.Equal(t, cannotProcessText, lastText(res))
	})

	t.Run("failure yields error message", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "R001", "relawan001")
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{}, ErrOracleFailure)

		res := f.say(t, s, "halo")
		assert.True(t, strings.HasPrefix(lastText(res), "Error: "))
		assert.Equal(t, entities.IntentIdle, res.State.Intent)
	})

	t.Run("unknown function", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "R001", "relawan001")
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{
			FunctionCalls: []entities.FunctionCall{{Name: "export_pdf"}},
		}, nil)

		res := f.say(t, s, "export pdf")
		assert.Equal(t, "Maaf, saya tidak tahu cara melakukan tindakan: export_pdf.", lastText(res))
	})

	t.Run("update runs without confirmation", func(t *testing.T) {
		f := newChatFixture(t, false)
		s := f.login(t, "R001", "relawan001")
		f.oracle.EXPECT().Query(gomock.Any(), gomock.Any()).Return(entities.OracleResponse{
			FunctionCalls: []entities.FunctionCall{{Name: OpUpdateReport, Args: map[string]any{"id": 1.0, "amount": 50000.0}}},
		}, nil)

		res := f.say(t, s, "ubah jumlah laporan 1 jadi 50000")
		assert.True(t, res.Messages[len(res.Messages)-1].IsStructured)
		got, err := f.reports.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), got.Amount)
	})
}

func TestConversationUseCase_OperatorFlow(t *testing.T) {
	f := newChatFixture(t, false)
	admin := f.login(t, "ADM-111-AAA", "admin123")

	res := f.say(t, admin, "tambah relawan baru")
	assert.Equal(t, entities.IntentCollectingUser, res.State.Intent)
	assert.Equal(t, entities.FieldOperatorCode, res.State.NextQuestionKey)

	res = f.say(t, admin, "R003")
	res = f.say(t, admin, "rahasia")
	assert.Equal(t, secretMask, res.State.CollectedFields["secret"])
	f.say(t, admin, "Relawan Tiga")
	f.say(t, admin, "LAZ Cabang")
	res = f.say(t, admin, "Relawan baru")
	assert.Equal(t, entities.IntentConfirmingAddUser, res.State.Intent)
	assert.Contains(t, lastText(res), secretMask)
	assert.NotContains(t, lastText(res), "rahasia")

	res = f.say(t, admin, "ya")
	assert.Equal(t, entities.IntentIdle, res.State.Intent)
	assert.NotContains(t, lastText(res), "rahasia")

	_, err := f.auth.Login(context.Background(), "R003", "rahasia")
	assert.NoError(t, err)
}

func TestConversationUseCase_StandardOperatorKeywordGoesToOracle(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")
	f.oracle.EXPECT().Query(gomock.Any(), "tambah relawan").Return(entities.OracleResponse{AnswerText: "Maaf."}, nil)

	res := f.say(t, s, "tambah relawan")
	assert.Equal(t, entities.IntentIdle, res.State.Intent)
}

func TestConversationUseCase_TurnGuards(t *testing.T) {
	f := newChatFixture(t, false)
	s := f.login(t, "R001", "relawan001")
	ctx := context.Background()

	_, err := f.router.SendMessage(ctx, "nope", "halo")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.router.SendMessage(ctx, s.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyUtterance)

	s.Acquire()
	_, err = f.router.SendMessage(ctx, s.ID, "tambah laporan")
	s.Release()
	assert.ErrorIs(t, err, ErrSessionBusy)
	assert.Equal(t, 1, s.Transcript.Len())

	f.say(t, s, "tambah laporan")
	state, err := f.router.State(s.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.IntentCollectingZakat, state.Intent)

	msgs, err := f.router.Transcript(s.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 4)
}
