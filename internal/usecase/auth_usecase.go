package usecase

import (
	"context"
	"strings"
	"time"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// IAuthUseCase is the Session/Identity boundary: it authenticates operators
// and opens chat sessions bound to the resulting identity.

type IAuthUseCase interface {
	Authenticate(ctx context.Context, operatorCode, secret string) (*entities.Identity, error)
	Login(ctx context.Context, operatorCode, secret string) (*entities.Session, error)
	Logout(sessionID string)
	Session(sessionID string) (*entities.Session, error)
}

type AuthUseCase struct {
	operators interfaces.IOperatorRepository
	sessions  interfaces.ISessionRepository
	logger    *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(operators interfaces.IOperatorRepository, sessions interfaces.ISessionRepository, logger *zap.Logger) *AuthUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUseCase{operators: operators, sessions: sessions, logger: logger.Named("auth")}
}

// Authenticate returns the identity for valid credentials and nil otherwise.
// The secret never appears in the returned identity.
func (u *AuthUseCase) Authenticate(ctx context.Context, operatorCode, secret string) (*entities.Identity, error) {
	operatorCode = strings.TrimSpace(operatorCode)
	if operatorCode == "" || secret == "" {
		return nil, nil
	}
	op, err := u.operators.GetByCode(ctx, operatorCode)
	if err != nil {
		return nil, err
	}
	if op.OperatorCode == "" || !CompareSecret(op.Secret, secret) {
		u.logger.Info("authentication rejected", zap.String("operator_code", operatorCode))
		return nil, nil
	}
	id := op.Identity()
	return &id, nil
}

func (u *AuthUseCase) Login(ctx context.Context, operatorCode, secret string) (*entities.Session, error) {
	identity, err := u.Authenticate(ctx, operatorCode, secret)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, ErrInvalidCredentials
	}

	s := entities.NewSession(uuid.NewString(), *identity, time.Now().UTC())
	s.Transcript.Append(systemMessage(greeting(*identity), false))
	u.sessions.Save(s)
	u.logger.Info("session opened", zap.String("operator_code", identity.OperatorCode), zap.String("role", string(identity.Role)))
	return s, nil
}

func (u *AuthUseCase) Logout(sessionID string) {
	u.sessions.Delete(sessionID)
}

func (u *AuthUseCase) Session(sessionID string) (*entities.Session, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// HashSecret hashes an operator secret for storage.
func HashSecret(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CompareSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

func greeting(identity entities.Identity) string {
	text := "Assalamualaikum, " + identity.Name + "! Saya Bot Laporan Zakat. Saya bisa membantu Anda mencatat dan mengelola data zakat. " +
		"Anda juga bisa bertanya kepada saya seputar Fikih Zakat.\n\nContoh perintah:\n" +
		"- 'Tampilkan semua laporan zakat'\n- 'Tambah laporan zakat'\n- 'Siapa saja yang berhak menerima zakat?'"
	if identity.IsAdmin() {
		text += "\n- 'Tambah relawan baru'"
	}
	return text
}
